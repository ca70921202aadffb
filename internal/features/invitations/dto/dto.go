package invitations_dto

import (
	"time"

	invitations_enums "taskhive/internal/features/invitations/enums"

	"github.com/google/uuid"
)

type SendInvitationRequestDTO struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"max=500"`
}

type InvitationResponseDTO struct {
	ID              uuid.UUID                          `json:"id"`
	ProjectID       uuid.UUID                          `json:"projectId"`
	ProjectName     string                             `json:"projectName"`
	InviterID       uuid.UUID                          `json:"inviterId"`
	InviterUsername string                             `json:"inviterUsername"`
	InviteeID       uuid.UUID                          `json:"inviteeId"`
	InviteeUsername string                             `json:"inviteeUsername"`
	InviteeEmail    string                             `json:"inviteeEmail,omitempty"`
	Message         string                             `json:"message"`
	Status          invitations_enums.InvitationStatus `json:"status"`
	CreatedAt       time.Time                          `json:"createdAt"`
	RespondedAt     *time.Time                         `json:"respondedAt,omitempty"`
}

type ListInvitationsResponseDTO struct {
	Invitations []InvitationResponseDTO `json:"invitations"`
}
