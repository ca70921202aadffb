package migrations

import (
	audit_logs "taskhive/internal/features/audit_logs"
	invitations_models "taskhive/internal/features/invitations/models"
	notifications_models "taskhive/internal/features/notifications/models"
	projects_models "taskhive/internal/features/projects/models"
	tasks_models "taskhive/internal/features/tasks/models"
	users_models "taskhive/internal/features/users/models"
	"taskhive/internal/storage"
)

// Run creates missing tables and constraints. Referential integrity
// (cascading deletes from projects to members, tasks, invitations and
// notification references) lives in the schema, not in application code.
func Run() error {
	return storage.GetDb().AutoMigrate(
		&users_models.User{},
		&users_models.SecretKey{},
		&projects_models.Project{},
		&projects_models.ProjectMember{},
		&invitations_models.Invitation{},
		&tasks_models.Task{},
		&notifications_models.Notification{},
		&audit_logs.AuditLog{},
	)
}
