package invitations_repositories

import (
	"errors"
	"fmt"
	"time"

	invitations_enums "taskhive/internal/features/invitations/enums"
	invitations_models "taskhive/internal/features/invitations/models"
	projects_models "taskhive/internal/features/projects/models"
	users_enums "taskhive/internal/features/users/enums"
	"taskhive/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvitationNotPending is returned when an accept, reject or cancel
// targets an invitation that does not exist, belongs to someone else or
// has already left the pending state. Callers collapse all three cases
// into one answer so responders cannot probe other users' invitations.
var ErrInvitationNotPending = errors.New("invitation not found or already processed")

type InvitationRepository struct{}

func (r *InvitationRepository) Create(invitation *invitations_models.Invitation) error {
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}

	if invitation.CreatedAt.IsZero() {
		invitation.CreatedAt = time.Now().UTC()
	}

	if invitation.Status == "" {
		invitation.Status = invitations_enums.InvitationStatusPending
	}

	if err := storage.GetDb().Create(invitation).Error; err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}

	return nil
}

func (r *InvitationRepository) GetByID(
	invitationID uuid.UUID,
) (*invitations_models.Invitation, error) {
	var invitation invitations_models.Invitation

	err := storage.GetDb().
		Where("id = ?", invitationID).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &invitation, nil
}

func (r *InvitationRepository) HasPendingInvitation(
	projectID uuid.UUID,
	inviteeID uuid.UUID,
) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&invitations_models.Invitation{}).
		Where("project_id = ? AND invitee_id = ? AND status = ?",
			projectID, inviteeID, invitations_enums.InvitationStatusPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending invitation: %w", err)
	}

	return count > 0, nil
}

// Accept flips a pending invitation to accepted and inserts the membership
// row in one transaction. The invitation row is locked FOR UPDATE so two
// concurrent accepts of the same invitation serialize, and the membership
// insert uses ON CONFLICT DO NOTHING so an already existing membership
// does not fail the accept.
func (r *InvitationRepository) Accept(
	invitationID uuid.UUID,
	inviteeID uuid.UUID,
) (*invitations_models.Invitation, error) {
	var invitation invitations_models.Invitation

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND invitee_id = ? AND status = ?",
				invitationID, inviteeID, invitations_enums.InvitationStatusPending).
			First(&invitation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvitationNotPending
			}

			return fmt.Errorf("failed to lock invitation: %w", err)
		}

		membership := &projects_models.ProjectMember{
			ID:        uuid.New(),
			ProjectID: invitation.ProjectID,
			UserID:    inviteeID,
			Role:      users_enums.ProjectRoleTeamMember,
			JoinedAt:  time.Now().UTC(),
		}

		err = tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).
			Create(membership).Error
		if err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}

		now := time.Now().UTC()
		invitation.Status = invitations_enums.InvitationStatusAccepted
		invitation.RespondedAt = &now

		err = tx.
			Model(&invitations_models.Invitation{}).
			Where("id = ?", invitation.ID).
			Updates(map[string]any{
				"status":       invitations_enums.InvitationStatusAccepted,
				"responded_at": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update invitation status: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &invitation, nil
}

// Reject moves a pending invitation to rejected. The WHERE clause carries
// the pending check so concurrent responders race on the same conditional
// update instead of a read-then-write.
func (r *InvitationRepository) Reject(invitationID uuid.UUID, inviteeID uuid.UUID) error {
	result := storage.GetDb().
		Model(&invitations_models.Invitation{}).
		Where("id = ? AND invitee_id = ? AND status = ?",
			invitationID, inviteeID, invitations_enums.InvitationStatusPending).
		Updates(map[string]any{
			"status":       invitations_enums.InvitationStatusRejected,
			"responded_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to reject invitation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrInvitationNotPending
	}

	return nil
}

// Cancel is the inviter-side withdrawal of a pending invitation. Same
// conditional-update shape as Reject, gated on the inviter instead of
// the invitee. A cancelled invitation lands in the rejected state, there
// is no separate cancelled status.
func (r *InvitationRepository) Cancel(invitationID uuid.UUID, inviterID uuid.UUID) error {
	result := storage.GetDb().
		Model(&invitations_models.Invitation{}).
		Where("id = ? AND inviter_id = ? AND status = ?",
			invitationID, inviterID, invitations_enums.InvitationStatusPending).
		Updates(map[string]any{
			"status":       invitations_enums.InvitationStatusRejected,
			"responded_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to cancel invitation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrInvitationNotPending
	}

	return nil
}

func (r *InvitationRepository) GetByInvitee(
	inviteeID uuid.UUID,
	pendingOnly bool,
) ([]invitations_models.InvitationWithDetails, error) {
	query := storage.GetDb().
		Table("invitations").
		Select(`invitations.*,
			projects.name AS project_name,
			inviters.username AS inviter_username,
			invitees.username AS invitee_username,
			invitees.email AS invitee_email`).
		Joins("LEFT JOIN projects ON projects.id = invitations.project_id").
		Joins("JOIN users AS inviters ON inviters.id = invitations.inviter_id").
		Joins("JOIN users AS invitees ON invitees.id = invitations.invitee_id").
		Where("invitations.invitee_id = ?", inviteeID).
		Order("invitations.created_at DESC")

	if pendingOnly {
		query = query.Where("invitations.status = ?", invitations_enums.InvitationStatusPending)
	}

	var invitations []invitations_models.InvitationWithDetails
	if err := query.Scan(&invitations).Error; err != nil {
		return nil, fmt.Errorf("failed to get invitations for invitee: %w", err)
	}

	return invitations, nil
}

func (r *InvitationRepository) GetByInviter(
	inviterID uuid.UUID,
) ([]invitations_models.InvitationWithDetails, error) {
	var invitations []invitations_models.InvitationWithDetails

	err := storage.GetDb().
		Table("invitations").
		Select(`invitations.*,
			projects.name AS project_name,
			inviters.username AS inviter_username,
			invitees.username AS invitee_username,
			invitees.email AS invitee_email`).
		Joins("LEFT JOIN projects ON projects.id = invitations.project_id").
		Joins("JOIN users AS inviters ON inviters.id = invitations.inviter_id").
		Joins("JOIN users AS invitees ON invitees.id = invitations.invitee_id").
		Where("invitations.inviter_id = ?", inviterID).
		Order("invitations.created_at DESC").
		Scan(&invitations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations for inviter: %w", err)
	}

	return invitations, nil
}

func (r *InvitationRepository) GetByProject(
	projectID uuid.UUID,
) ([]invitations_models.InvitationWithDetails, error) {
	var invitations []invitations_models.InvitationWithDetails

	err := storage.GetDb().
		Table("invitations").
		Select(`invitations.*,
			projects.name AS project_name,
			inviters.username AS inviter_username,
			invitees.username AS invitee_username,
			invitees.email AS invitee_email`).
		Joins("LEFT JOIN projects ON projects.id = invitations.project_id").
		Joins("JOIN users AS inviters ON inviters.id = invitations.inviter_id").
		Joins("JOIN users AS invitees ON invitees.id = invitations.invitee_id").
		Where("invitations.project_id = ?", projectID).
		Order("invitations.created_at DESC").
		Scan(&invitations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations for project: %w", err)
	}

	return invitations, nil
}
