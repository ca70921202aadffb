package projects_services

import (
	"taskhive/internal/apperrors"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_enums "taskhive/internal/features/users/enums"

	"github.com/google/uuid"
)

// AccessOperation names a capability whose rules live in accessRules.
// Every role-gated action in the application goes through Authorize so
// the role requirements stay in one table instead of being re-derived
// at each call site.
type AccessOperation string

const (
	OpUpdateProject  AccessOperation = "project.update"
	OpDeleteProject  AccessOperation = "project.delete"
	OpSendInvitation AccessOperation = "invitation.send"
	OpAssignTeamLead AccessOperation = "member.assign_lead"
	OpRemoveMember   AccessOperation = "member.remove"
	OpViewMembers    AccessOperation = "member.view"
	OpCreateTask     AccessOperation = "task.create"
	OpUpdateTask     AccessOperation = "task.update"
	OpDeleteTask     AccessOperation = "task.delete"
	OpViewTasks      AccessOperation = "task.view"
	OpViewAuditLogs  AccessOperation = "audit.view"
	OpViewProject    AccessOperation = "project.view"
)

type accessRule struct {
	requiresLead bool
	message      string
}

var accessRules = map[AccessOperation]accessRule{
	OpUpdateProject:  {true, "only team leads can update project details"},
	OpDeleteProject:  {true, "only team leads can delete projects"},
	OpSendInvitation: {true, "only team leads can send invitations"},
	OpAssignTeamLead: {true, "only team leads can assign team leads"},
	OpRemoveMember:   {true, "only team leads can remove members"},
	OpCreateTask:     {true, "only team leads can create tasks"},
	OpUpdateTask:     {true, "only team leads can update tasks"},
	OpDeleteTask:     {true, "only team leads can delete tasks"},
	OpViewMembers:    {false, "you are not a member of this project"},
	OpViewTasks:      {false, "you are not a member of this project"},
	OpViewAuditLogs:  {false, "you are not a member of this project"},
	OpViewProject:    {false, "you are not a member of this project"},
}

type AccessService struct {
	membershipRepository *projects_repositories.MembershipRepository
}

// Authorize checks whether the user may perform the operation on the project.
// Non-members are always rejected. Returns a FORBIDDEN error with the
// operation's message on rejection.
func (s *AccessService) Authorize(
	userID uuid.UUID,
	projectID uuid.UUID,
	operation AccessOperation,
) error {
	rule, exists := accessRules[operation]
	if !exists {
		return apperrors.Forbidden("operation not permitted")
	}

	role, err := s.membershipRepository.GetUserProjectRole(userID, projectID)
	if err != nil {
		return err
	}

	if role == nil {
		return apperrors.Forbidden(rule.message)
	}

	if rule.requiresLead && *role != users_enums.ProjectRoleTeamLead {
		return apperrors.Forbidden(rule.message)
	}

	return nil
}

func (s *AccessService) IsMember(userID uuid.UUID, projectID uuid.UUID) (bool, error) {
	role, err := s.membershipRepository.GetUserProjectRole(userID, projectID)
	if err != nil {
		return false, err
	}

	return role != nil, nil
}

func (s *AccessService) IsTeamLead(userID uuid.UUID, projectID uuid.UUID) (bool, error) {
	role, err := s.membershipRepository.GetUserProjectRole(userID, projectID)
	if err != nil {
		return false, err
	}

	return role != nil && *role == users_enums.ProjectRoleTeamLead, nil
}

// GetRole returns the user's role in the project, or nil for non-members.
func (s *AccessService) GetRole(
	userID uuid.UUID,
	projectID uuid.UUID,
) (*users_enums.ProjectRole, error) {
	return s.membershipRepository.GetUserProjectRole(userID, projectID)
}
