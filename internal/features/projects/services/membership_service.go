package projects_services

import (
	"fmt"
	"log/slog"

	"taskhive/internal/apperrors"
	"taskhive/internal/features/audit_logs"
	notifications_services "taskhive/internal/features/notifications/services"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_enums "taskhive/internal/features/users/enums"
	users_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
	accessService        *AccessService
	projectService       *ProjectService
	notificationService  *notifications_services.NotificationService
	auditLogService      *audit_logs.AuditLogService
	logger               *slog.Logger
}

// GetMembers lists the roster of a project the user belongs to,
// team leads first.
func (s *MembershipService) GetMembers(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.GetMembersResponseDTO, error) {
	if _, err := s.projectService.GetProjectWithCache(projectID); err != nil {
		return nil, err
	}

	if err := s.accessService.Authorize(user.ID, projectID, OpViewMembers); err != nil {
		return nil, err
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, err
	}

	response := &projects_dto.GetMembersResponseDTO{
		Members: make([]projects_dto.ProjectMemberResponseDTO, 0, len(members)),
	}

	for _, member := range members {
		response.Members = append(response.Members, projects_dto.ProjectMemberResponseDTO{
			UserID:   member.UserID,
			Username: member.Username,
			Email:    member.Email,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		})
	}

	return response, nil
}

// AssignTeamLead promotes an existing member to team lead. The caller's
// own lead role is untouched, a project can have several leads.
func (s *MembershipService) AssignTeamLead(
	projectID uuid.UUID,
	targetUserID uuid.UUID,
	user *users_models.User,
) error {
	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return err
	}

	if err := s.accessService.Authorize(user.ID, projectID, OpAssignTeamLead); err != nil {
		return err
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndProject(targetUserID, projectID)
	if err != nil {
		return err
	}
	if membership == nil {
		return apperrors.NotFound("user is not a member of this project")
	}

	if membership.Role == users_enums.ProjectRoleTeamLead {
		return apperrors.Conflict("user is already a team lead")
	}

	rowsAffected, err := s.membershipRepository.UpdateMemberRole(
		projectID,
		targetUserID,
		users_enums.ProjectRoleTeamLead,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("user is not a member of this project")
	}

	s.notificationService.NotifyRoleChange(
		targetUserID,
		projectID,
		project.Name,
		users_enums.ProjectRoleTeamLead,
	)
	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member %s promoted to team lead", targetUserID),
		&user.ID,
		&projectID,
	)

	return nil
}

// RemoveMember removes another member from the project. Leaving is a
// separate operation with its own rules.
func (s *MembershipService) RemoveMember(
	projectID uuid.UUID,
	targetUserID uuid.UUID,
	user *users_models.User,
) error {
	if _, err := s.projectService.GetProjectWithCache(projectID); err != nil {
		return err
	}

	if err := s.accessService.Authorize(user.ID, projectID, OpRemoveMember); err != nil {
		return err
	}

	if targetUserID == user.ID {
		return apperrors.Validation("use leave to remove yourself from the project")
	}

	rowsAffected, err := s.membershipRepository.RemoveMember(projectID, targetUserID)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("user is not a member of this project")
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member %s removed from project", targetUserID),
		&user.ID,
		&projectID,
	)

	return nil
}

// LeaveProject removes the caller's own membership. Team leads cannot
// leave, they must delete the project or hand off the lead role first.
func (s *MembershipService) LeaveProject(projectID uuid.UUID, user *users_models.User) error {
	if _, err := s.projectService.GetProjectWithCache(projectID); err != nil {
		return err
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndProject(user.ID, projectID)
	if err != nil {
		return err
	}
	if membership == nil {
		return apperrors.NotFound("you are not a member of this project")
	}

	if membership.Role == users_enums.ProjectRoleTeamLead {
		return apperrors.Forbidden("team leads cannot leave their projects")
	}

	if _, err := s.membershipRepository.RemoveMember(projectID, user.ID); err != nil {
		return err
	}

	s.logger.Info("member left project",
		slog.String("project_id", projectID.String()),
		slog.String("user_id", user.ID.String()))

	return nil
}
