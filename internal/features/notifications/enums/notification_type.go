package notifications_enums

type NotificationType string

const (
	NotificationTypeInvitation   NotificationType = "invitation"
	NotificationTypeTaskAssigned NotificationType = "task_assigned"
	NotificationTypeRoleChange   NotificationType = "role_change"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInvitation, NotificationTypeTaskAssigned, NotificationTypeRoleChange:
		return true
	default:
		return false
	}
}
