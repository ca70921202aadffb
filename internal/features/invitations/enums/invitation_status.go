package invitations_enums

type InvitationStatus string

// Accepted and rejected are terminal. Cancellation by the inviter
// lands in rejected as well; re-inviting requires a fresh invitation.
const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
)

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusRejected:
		return true
	default:
		return false
	}
}
