package invitations_models

import (
	"time"

	invitations_enums "taskhive/internal/features/invitations/enums"
	projects_models "taskhive/internal/features/projects/models"
	users_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

type Invitation struct {
	ID          uuid.UUID                          `json:"id"          gorm:"column:id;primaryKey"`
	ProjectID   uuid.UUID                          `json:"projectId"   gorm:"column:project_id;not null;index"`
	InviterID   uuid.UUID                          `json:"inviterId"   gorm:"column:inviter_id;not null"`
	InviteeID   uuid.UUID                          `json:"inviteeId"   gorm:"column:invitee_id;not null;index"`
	Message     string                             `json:"message"     gorm:"column:message"`
	Status      invitations_enums.InvitationStatus `json:"status"      gorm:"column:status;not null"`
	CreatedAt   time.Time                          `json:"createdAt"   gorm:"column:created_at"`
	RespondedAt *time.Time                         `json:"respondedAt" gorm:"column:responded_at"`

	// Relationships
	Project projects_models.Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Inviter users_models.User       `json:"-" gorm:"foreignKey:InviterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Invitee users_models.User       `json:"-" gorm:"foreignKey:InviteeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Invitation) TableName() string {
	return "invitations"
}

// InvitationWithDetails is a read model for invitation listings joined
// with the project and both users.
type InvitationWithDetails struct {
	ID              uuid.UUID                          `gorm:"column:id"`
	ProjectID       uuid.UUID                          `gorm:"column:project_id"`
	ProjectName     string                             `gorm:"column:project_name"`
	InviterID       uuid.UUID                          `gorm:"column:inviter_id"`
	InviterUsername string                             `gorm:"column:inviter_username"`
	InviteeID       uuid.UUID                          `gorm:"column:invitee_id"`
	InviteeUsername string                             `gorm:"column:invitee_username"`
	InviteeEmail    string                             `gorm:"column:invitee_email"`
	Message         string                             `gorm:"column:message"`
	Status          invitations_enums.InvitationStatus `gorm:"column:status"`
	CreatedAt       time.Time                          `gorm:"column:created_at"`
	RespondedAt     *time.Time                         `gorm:"column:responded_at"`
}
