package audit_logs

import (
	"log/slog"
	"time"

	"taskhive/internal/apperrors"
	user_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

// MembershipChecker gates project-scoped audit log reads. Set by the
// projects feature at startup; the indirection avoids an import cycle.
type MembershipChecker interface {
	IsMember(userID uuid.UUID, projectID uuid.UUID) (bool, error)
}

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	membershipChecker  MembershipChecker
	logger             *slog.Logger
}

func (s *AuditLogService) SetMembershipChecker(checker MembershipChecker) {
	s.membershipChecker = checker
}

// WriteAuditLog records an action. Failures are logged and swallowed,
// audit writes never fail the primary operation.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	projectID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:    userID,
		ProjectID: projectID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := s.auditLogRepository.Create(auditLog)
	if err != nil {
		s.logger.Error("failed to create audit log", "error", err)
		return
	}
}

// GetMyAuditLogs returns the caller's own audit trail.
func (s *AuditLogService) GetMyAuditLogs(
	user *user_models.User,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	limit, offset := clampPagination(request)

	auditLogs, err := s.auditLogRepository.GetByUser(user.ID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     int64(len(auditLogs)),
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// GetProjectAuditLogs returns a project's audit trail. Project members only.
func (s *AuditLogService) GetProjectAuditLogs(
	projectID uuid.UUID,
	user *user_models.User,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if s.membershipChecker == nil {
		return nil, apperrors.Forbidden("you are not a member of this project")
	}

	isMember, err := s.membershipChecker.IsMember(user.ID, projectID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.Forbidden("you are not a member of this project")
	}

	limit, offset := clampPagination(request)

	auditLogs, err := s.auditLogRepository.GetByProject(projectID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     int64(len(auditLogs)),
		Limit:     limit,
		Offset:    offset,
	}, nil
}

func clampPagination(request *GetAuditLogsRequest) (int, int) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	return limit, max(request.Offset, 0)
}
