package projects_models

import (
	"time"

	users_enums "taskhive/internal/features/users/enums"
	users_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

type ProjectMember struct {
	ID        uuid.UUID               `json:"id"        gorm:"column:id;primaryKey"`
	ProjectID uuid.UUID               `json:"projectId" gorm:"column:project_id;not null;uniqueIndex:idx_project_members_project_user"`
	UserID    uuid.UUID               `json:"userId"    gorm:"column:user_id;not null;uniqueIndex:idx_project_members_project_user"`
	Role      users_enums.ProjectRole `json:"role"      gorm:"column:role;not null"`
	JoinedAt  time.Time               `json:"joinedAt"  gorm:"column:joined_at"`

	// Relationships
	Project Project           `json:"-" gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User    users_models.User `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}

// MemberWithUser is a read model for the roster listing joined with users.
type MemberWithUser struct {
	UserID   uuid.UUID               `gorm:"column:user_id"`
	Username string                  `gorm:"column:username"`
	Email    string                  `gorm:"column:email"`
	Role     users_enums.ProjectRole `gorm:"column:role"`
	JoinedAt time.Time               `gorm:"column:joined_at"`
}
