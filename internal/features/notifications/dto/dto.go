package notifications_dto

import (
	"time"

	notifications_enums "taskhive/internal/features/notifications/enums"

	"github.com/google/uuid"
)

type NotificationResponseDTO struct {
	ID                  uuid.UUID                            `json:"id"`
	Type                notifications_enums.NotificationType `json:"type"`
	Title               string                               `json:"title"`
	Message             string                               `json:"message"`
	RelatedProjectID    *uuid.UUID                           `json:"relatedProjectId,omitempty"`
	RelatedInvitationID *uuid.UUID                           `json:"relatedInvitationId,omitempty"`
	ProjectName         string                               `json:"projectName,omitempty"`
	IsRead              bool                                 `json:"isRead"`
	CreatedAt           time.Time                            `json:"createdAt"`
}

type ListNotificationsResponseDTO struct {
	Notifications []NotificationResponseDTO `json:"notifications"`
}

type UnreadCountResponseDTO struct {
	Count int64 `json:"count"`
}
