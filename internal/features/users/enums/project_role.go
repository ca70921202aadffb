package users_enums

type ProjectRole string

const (
	ProjectRoleTeamLead   ProjectRole = "team_lead"
	ProjectRoleTeamMember ProjectRole = "team_member"
)

// IsValid validates the ProjectRole
func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleTeamLead, ProjectRoleTeamMember:
		return true
	default:
		return false
	}
}
