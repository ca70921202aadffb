package invitations_services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"taskhive/internal/apperrors"
	"taskhive/internal/features/audit_logs"
	invitations_dto "taskhive/internal/features/invitations/dto"
	invitations_models "taskhive/internal/features/invitations/models"
	invitations_repositories "taskhive/internal/features/invitations/repositories"
	notifications_services "taskhive/internal/features/notifications/services"
	projects_services "taskhive/internal/features/projects/services"
	users_models "taskhive/internal/features/users/models"
	users_services "taskhive/internal/features/users/services"
	"taskhive/internal/util/rate_limit"

	"github.com/google/uuid"
)

// Invitation sending is throttled per inviter to keep one lead from
// flooding other users' inboxes.
const (
	invitationRPSLimit   = 1
	invitationBurstLimit = 10
)

type InvitationService struct {
	invitationRepository *invitations_repositories.InvitationRepository
	projectService       *projects_services.ProjectService
	accessService        *projects_services.AccessService
	userService          *users_services.UserService
	notificationService  *notifications_services.NotificationService
	auditLogService      *audit_logs.AuditLogService
	rateLimiter          *rate_limit.RateLimiter
	logger               *slog.Logger
}

// SendInvitation invites a user into the project by email. Team leads only.
func (s *InvitationService) SendInvitation(
	projectID uuid.UUID,
	request *invitations_dto.SendInvitationRequestDTO,
	user *users_models.User,
) (*invitations_dto.InvitationResponseDTO, error) {
	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.accessService.Authorize(user.ID, projectID, projects_services.OpSendInvitation); err != nil {
		return nil, err
	}

	rateLimitResult, err := s.rateLimiter.CheckRateLimit(
		user.ID,
		invitationRPSLimit,
		invitationBurstLimit,
	)
	if err != nil {
		// Valkey being down should not block invitations
		s.logger.Warn("invitation rate limit check failed", "error", err)
	} else if !rateLimitResult.Allowed {
		return nil, apperrors.Validation("too many invitations sent, slow down")
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	invitee, err := s.userService.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if invitee == nil {
		return nil, apperrors.NotFound("user with this email not found")
	}

	if invitee.ID == user.ID {
		return nil, apperrors.Validation("you cannot invite yourself")
	}

	isMember, err := s.accessService.IsMember(invitee.ID, projectID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, apperrors.Conflict("user is already a member of this project")
	}

	hasPending, err := s.invitationRepository.HasPendingInvitation(projectID, invitee.ID)
	if err != nil {
		return nil, err
	}
	if hasPending {
		return nil, apperrors.Conflict("an invitation is already pending for this user")
	}

	invitation := &invitations_models.Invitation{
		ID:        uuid.New(),
		ProjectID: projectID,
		InviterID: user.ID,
		InviteeID: invitee.ID,
		Message:   strings.TrimSpace(request.Message),
	}

	if err := s.invitationRepository.Create(invitation); err != nil {
		return nil, err
	}

	s.notificationService.NotifyInvitationCreated(
		invitee.ID,
		projectID,
		invitation.ID,
		project.Name,
		user.Username,
	)
	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invitation sent to %s", invitee.Email),
		&user.ID,
		&projectID,
	)

	return &invitations_dto.InvitationResponseDTO{
		ID:              invitation.ID,
		ProjectID:       projectID,
		ProjectName:     project.Name,
		InviterID:       user.ID,
		InviterUsername: user.Username,
		InviteeID:       invitee.ID,
		InviteeUsername: invitee.Username,
		InviteeEmail:    invitee.Email,
		Message:         invitation.Message,
		Status:          invitation.Status,
		CreatedAt:       invitation.CreatedAt,
	}, nil
}

// ListMyInvitations returns the user's invitations, newest first.
// Direction "sent" lists invitations the user issued, anything else
// lists invitations addressed to them.
func (s *InvitationService) ListMyInvitations(
	user *users_models.User,
	direction string,
	pendingOnly bool,
) (*invitations_dto.ListInvitationsResponseDTO, error) {
	var invitations []invitations_models.InvitationWithDetails
	var err error

	if direction == "sent" {
		invitations, err = s.invitationRepository.GetByInviter(user.ID)
	} else {
		invitations, err = s.invitationRepository.GetByInvitee(user.ID, pendingOnly)
	}
	if err != nil {
		return nil, err
	}

	return buildListResponse(invitations), nil
}

// ListProjectInvitations returns every invitation of the project.
// Team leads only.
func (s *InvitationService) ListProjectInvitations(
	projectID uuid.UUID,
	user *users_models.User,
) (*invitations_dto.ListInvitationsResponseDTO, error) {
	if _, err := s.projectService.GetProjectWithCache(projectID); err != nil {
		return nil, err
	}

	if err := s.accessService.Authorize(user.ID, projectID, projects_services.OpSendInvitation); err != nil {
		return nil, err
	}

	invitations, err := s.invitationRepository.GetByProject(projectID)
	if err != nil {
		return nil, err
	}

	return buildListResponse(invitations), nil
}

// AcceptInvitation turns a pending invitation into a team_member
// membership. Only the invitee can accept, and only while pending.
func (s *InvitationService) AcceptInvitation(
	invitationID uuid.UUID,
	user *users_models.User,
) error {
	invitation, err := s.invitationRepository.Accept(invitationID, user.ID)
	if err != nil {
		return collapseNotPending(err)
	}

	s.auditLogService.WriteAuditLog("Invitation accepted", &user.ID, &invitation.ProjectID)

	return nil
}

// RejectInvitation declines a pending invitation addressed to the user.
func (s *InvitationService) RejectInvitation(
	invitationID uuid.UUID,
	user *users_models.User,
) error {
	if err := s.invitationRepository.Reject(invitationID, user.ID); err != nil {
		return collapseNotPending(err)
	}

	return nil
}

// CancelInvitation withdraws a pending invitation. Only the original
// inviter may cancel, enforced by the same conditional update shape as
// reject so the failure causes stay indistinguishable.
func (s *InvitationService) CancelInvitation(
	invitationID uuid.UUID,
	user *users_models.User,
) error {
	if err := s.invitationRepository.Cancel(invitationID, user.ID); err != nil {
		return collapseNotPending(err)
	}

	s.auditLogService.WriteAuditLog("Invitation cancelled", &user.ID, nil)

	return nil
}

// collapseNotPending maps the repository's not-pending sentinel to a 404
// without leaking whether the invitation exists at all.
func collapseNotPending(err error) error {
	if errors.Is(err, invitations_repositories.ErrInvitationNotPending) {
		return apperrors.NotFound(err.Error())
	}

	return err
}

func buildListResponse(
	invitations []invitations_models.InvitationWithDetails,
) *invitations_dto.ListInvitationsResponseDTO {
	response := &invitations_dto.ListInvitationsResponseDTO{
		Invitations: make([]invitations_dto.InvitationResponseDTO, 0, len(invitations)),
	}

	for _, invitation := range invitations {
		response.Invitations = append(response.Invitations, invitations_dto.InvitationResponseDTO{
			ID:              invitation.ID,
			ProjectID:       invitation.ProjectID,
			ProjectName:     invitation.ProjectName,
			InviterID:       invitation.InviterID,
			InviterUsername: invitation.InviterUsername,
			InviteeID:       invitation.InviteeID,
			InviteeUsername: invitation.InviteeUsername,
			InviteeEmail:    invitation.InviteeEmail,
			Message:         invitation.Message,
			Status:          invitation.Status,
			CreatedAt:       invitation.CreatedAt,
			RespondedAt:     invitation.RespondedAt,
		})
	}

	return response
}
