package tasks_models

import (
	"time"

	projects_models "taskhive/internal/features/projects/models"
	tasks_enums "taskhive/internal/features/tasks/enums"
	users_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

// Task keeps status and is_completed redundantly; the completion
// toggle derives both in one place (see tasks service) so they never
// disagree on that path.
type Task struct {
	ID          uuid.UUID              `json:"id"          gorm:"column:id;primaryKey"`
	ProjectID   uuid.UUID              `json:"projectId"   gorm:"column:project_id;not null;index"`
	CreatedBy   uuid.UUID              `json:"createdBy"   gorm:"column:created_by;not null"`
	AssignedTo  uuid.UUID              `json:"assignedTo"  gorm:"column:assigned_to;not null;index"`
	Title       string                 `json:"title"       gorm:"column:title;not null"`
	Description string                 `json:"description" gorm:"column:description"`
	Status      tasks_enums.TaskStatus `json:"status"      gorm:"column:status;not null"`
	IsCompleted bool                   `json:"isCompleted" gorm:"column:is_completed;not null;default:false"`
	CompletedAt *time.Time             `json:"completedAt" gorm:"column:completed_at"`
	CreatedAt   time.Time              `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time              `json:"updatedAt"   gorm:"column:updated_at"`

	// Relationships
	Project  projects_models.Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Creator  users_models.User       `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Assignee users_models.User       `json:"-" gorm:"foreignKey:AssignedTo;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}

// TaskWithDetails is a read model for task listings joined with the
// project and both users.
type TaskWithDetails struct {
	ID                 uuid.UUID              `gorm:"column:id"`
	ProjectID          uuid.UUID              `gorm:"column:project_id"`
	ProjectName        string                 `gorm:"column:project_name"`
	CreatedBy          uuid.UUID              `gorm:"column:created_by"`
	CreatedByUsername  string                 `gorm:"column:created_by_username"`
	AssignedTo         uuid.UUID              `gorm:"column:assigned_to"`
	AssignedToUsername string                 `gorm:"column:assigned_to_username"`
	Title              string                 `gorm:"column:title"`
	Description        string                 `gorm:"column:description"`
	Status             tasks_enums.TaskStatus `gorm:"column:status"`
	IsCompleted        bool                   `gorm:"column:is_completed"`
	CompletedAt        *time.Time             `gorm:"column:completed_at"`
	CreatedAt          time.Time              `gorm:"column:created_at"`
	UpdatedAt          time.Time              `gorm:"column:updated_at"`
}
