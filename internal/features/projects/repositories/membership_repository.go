package projects_repositories

import (
	"errors"
	"fmt"
	"time"

	projects_models "taskhive/internal/features/projects/models"
	users_enums "taskhive/internal/features/users/enums"
	"taskhive/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *projects_models.ProjectMember) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.JoinedAt.IsZero() {
		membership.JoinedAt = time.Now().UTC()
	}

	if err := storage.GetDb().Create(membership).Error; err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}

func (r *MembershipRepository) GetMembershipByUserAndProject(
	userID uuid.UUID,
	projectID uuid.UUID,
) (*projects_models.ProjectMember, error) {
	var membership projects_models.ProjectMember

	err := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &membership, nil
}

// GetProjectMembers returns the member roster with team leads first,
// each group ordered by join time ascending.
func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]projects_models.MemberWithUser, error) {
	var members []projects_models.MemberWithUser

	err := storage.GetDb().
		Table("project_members").
		Select("project_members.user_id, project_members.role, project_members.joined_at, users.username, users.email").
		Joins("JOIN users ON users.id = project_members.user_id").
		Where("project_members.project_id = ?", projectID).
		Order("CASE project_members.role WHEN 'team_lead' THEN 0 ELSE 1 END, project_members.joined_at ASC").
		Scan(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	return members, nil
}

func (r *MembershipRepository) GetUserProjectRole(
	userID uuid.UUID,
	projectID uuid.UUID,
) (*users_enums.ProjectRole, error) {
	membership, err := r.GetMembershipByUserAndProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	if membership == nil {
		return nil, nil
	}

	return &membership.Role, nil
}

func (r *MembershipRepository) UpdateMemberRole(
	projectID uuid.UUID,
	userID uuid.UUID,
	role users_enums.ProjectRole,
) (int64, error) {
	result := storage.GetDb().
		Model(&projects_models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update member role: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *MembershipRepository) RemoveMember(projectID uuid.UUID, userID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&projects_models.ProjectMember{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to remove member: %w", result.Error)
	}

	return result.RowsAffected, nil
}
