package tasks_services

import (
	"taskhive/internal/features/audit_logs"
	notifications_services "taskhive/internal/features/notifications/services"
	projects_services "taskhive/internal/features/projects/services"
	tasks_repositories "taskhive/internal/features/tasks/repositories"
	"taskhive/internal/util/logger"
)

var taskRepository = &tasks_repositories.TaskRepository{}

var taskService = &TaskService{
	taskRepository,
	projects_services.GetProjectService(),
	projects_services.GetAccessService(),
	notifications_services.GetNotificationService(),
	audit_logs.GetAuditLogService(),
	logger.GetLogger(),
}

func GetTaskService() *TaskService {
	return taskService
}
