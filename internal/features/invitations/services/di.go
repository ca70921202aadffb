package invitations_services

import (
	"taskhive/internal/features/audit_logs"
	invitations_repositories "taskhive/internal/features/invitations/repositories"
	notifications_services "taskhive/internal/features/notifications/services"
	projects_services "taskhive/internal/features/projects/services"
	users_services "taskhive/internal/features/users/services"
	"taskhive/internal/util/logger"
	"taskhive/internal/util/rate_limit"
)

var invitationRepository = &invitations_repositories.InvitationRepository{}

var invitationService = &InvitationService{
	invitationRepository,
	projects_services.GetProjectService(),
	projects_services.GetAccessService(),
	users_services.GetUserService(),
	notifications_services.GetNotificationService(),
	audit_logs.GetAuditLogService(),
	rate_limit.NewRateLimiter(),
	logger.GetLogger(),
}

func GetInvitationService() *InvitationService {
	return invitationService
}
