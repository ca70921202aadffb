package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records who did what, optionally scoped to a project. Rows
// are write-once; both references are nullable so logs outlive the
// users and projects they mention.
type AuditLog struct {
	ID        uuid.UUID  `json:"id"        gorm:"column:id;primaryKey"`
	UserID    *uuid.UUID `json:"userId"    gorm:"column:user_id;index"`
	ProjectID *uuid.UUID `json:"projectId" gorm:"column:project_id;index"`
	Message   string     `json:"message"   gorm:"column:message;not null"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
