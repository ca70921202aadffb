package projects_dto

import (
	"time"

	users_enums "taskhive/internal/features/users/enums"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateProjectRequestDTO carries a partial update. Nil fields are left untouched.
type UpdateProjectRequestDTO struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type AssignTeamLeadRequestDTO struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

type ProjectResponseDTO struct {
	ID                uuid.UUID                `json:"id"`
	Name              string                   `json:"name"`
	Description       string                   `json:"description"`
	CreatedBy         uuid.UUID                `json:"createdBy"`
	CreatedByUsername string                   `json:"createdByUsername,omitempty"`
	UserRole          *users_enums.ProjectRole `json:"userRole,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

type GetProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

type ProjectMemberResponseDTO struct {
	UserID   uuid.UUID               `json:"userId"`
	Username string                  `json:"username"`
	Email    string                  `json:"email"`
	Role     users_enums.ProjectRole `json:"role"`
	JoinedAt time.Time               `json:"joinedAt"`
}

type GetProjectResponseDTO struct {
	Project ProjectResponseDTO         `json:"project"`
	Members []ProjectMemberResponseDTO `json:"members"`
}

type GetMembersResponseDTO struct {
	Members []ProjectMemberResponseDTO `json:"members"`
}
