package tasks_dto

import (
	"time"

	tasks_enums "taskhive/internal/features/tasks/enums"

	"github.com/google/uuid"
)

type CreateTaskRequestDTO struct {
	Title       string    `json:"title" binding:"required,min=1,max=200"`
	Description string    `json:"description" binding:"max=2000"`
	AssignedTo  uuid.UUID `json:"assignedTo" binding:"required"`
}

// UpdateTaskRequestDTO carries a partial update. Nil fields are left untouched.
type UpdateTaskRequestDTO struct {
	Title       *string                 `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string                 `json:"description" binding:"omitempty,max=2000"`
	Status      *tasks_enums.TaskStatus `json:"status"`
	AssignedTo  *uuid.UUID              `json:"assignedTo"`
}

type SetCompletionRequestDTO struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

type TaskResponseDTO struct {
	ID                 uuid.UUID              `json:"id"`
	ProjectID          uuid.UUID              `json:"projectId"`
	ProjectName        string                 `json:"projectName,omitempty"`
	Title              string                 `json:"title"`
	Description        string                 `json:"description"`
	Status             tasks_enums.TaskStatus `json:"status"`
	IsCompleted        bool                   `json:"isCompleted"`
	CreatedBy          uuid.UUID              `json:"createdBy"`
	CreatedByUsername  string                 `json:"createdByUsername,omitempty"`
	AssignedTo         uuid.UUID              `json:"assignedTo"`
	AssignedToUsername string                 `json:"assignedToUsername,omitempty"`
	CompletedAt        *time.Time             `json:"completedAt,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

type ListTasksResponseDTO struct {
	Tasks []TaskResponseDTO `json:"tasks"`
}
