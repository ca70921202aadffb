package projects_services

import (
	"taskhive/internal/cache"
	"taskhive/internal/features/audit_logs"
	notifications_services "taskhive/internal/features/notifications/services"
	projects_models "taskhive/internal/features/projects/models"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_services "taskhive/internal/features/users/services"
	cache_utils "taskhive/internal/util/cache"
	"taskhive/internal/util/logger"

	"golang.org/x/sync/singleflight"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var accessService = &AccessService{
	membershipRepository,
}

var projectService = &ProjectService{
	projectRepository,
	membershipRepository,
	accessService,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	logger.GetLogger(),
	cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "th_project:"),
	singleflight.Group{},
}

var membershipService = &MembershipService{
	membershipRepository,
	accessService,
	projectService,
	notifications_services.GetNotificationService(),
	audit_logs.GetAuditLogService(),
	logger.GetLogger(),
}

func init() {
	audit_logs.GetAuditLogService().SetMembershipChecker(accessService)
}

func GetAccessService() *AccessService {
	return accessService
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
