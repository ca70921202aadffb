package projects_models

import (
	"time"

	users_enums "taskhive/internal/features/users/enums"
	users_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey"`
	Name        string    `json:"name"        gorm:"column:name;not null"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedBy   uuid.UUID `json:"createdBy"   gorm:"column:created_by;not null;index"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt"   gorm:"column:updated_at"`

	// Relationships
	Creator users_models.User `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Used for caching non-existent projects
	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectWithRole is a read model for project listings joined with the
// requesting user's membership row.
type ProjectWithRole struct {
	ID                uuid.UUID               `gorm:"column:id"`
	Name              string                  `gorm:"column:name"`
	Description       string                  `gorm:"column:description"`
	CreatedBy         uuid.UUID               `gorm:"column:created_by"`
	CreatedByUsername string                  `gorm:"column:created_by_username"`
	UserRole          users_enums.ProjectRole `gorm:"column:user_role"`
	CreatedAt         time.Time               `gorm:"column:created_at"`
	UpdatedAt         time.Time               `gorm:"column:updated_at"`
}
