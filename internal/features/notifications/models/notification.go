package notifications_models

import (
	"time"

	invitations_models "taskhive/internal/features/invitations/models"
	notifications_enums "taskhive/internal/features/notifications/enums"
	projects_models "taskhive/internal/features/projects/models"
	users_models "taskhive/internal/features/users/models"

	"github.com/google/uuid"
)

// Notification rows are write-once; only the is_read flag changes
// after insertion. Rows referencing a deleted project disappear with
// it through the schema's cascade.
type Notification struct {
	ID                  uuid.UUID                          `json:"id"                            gorm:"column:id;primaryKey"`
	UserID              uuid.UUID                          `json:"userId"                        gorm:"column:user_id;not null;index"`
	Type                notifications_enums.NotificationType `json:"type"                        gorm:"column:type;not null"`
	Title               string                             `json:"title"                         gorm:"column:title;not null"`
	Message             string                             `json:"message"                       gorm:"column:message;not null"`
	RelatedProjectID    *uuid.UUID                         `json:"relatedProjectId,omitempty"    gorm:"column:related_project_id"`
	RelatedInvitationID *uuid.UUID                         `json:"relatedInvitationId,omitempty" gorm:"column:related_invitation_id"`
	IsRead              bool                               `json:"isRead"                        gorm:"column:is_read;not null;default:false"`
	CreatedAt           time.Time                          `json:"createdAt"                     gorm:"column:created_at"`

	// Relationships
	User       users_models.User              `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Project    *projects_models.Project       `json:"-" gorm:"foreignKey:RelatedProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Invitation *invitations_models.Invitation `json:"-" gorm:"foreignKey:RelatedInvitationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Notification) TableName() string {
	return "notifications"
}
