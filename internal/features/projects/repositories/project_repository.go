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

type ProjectRepository struct{}

// CreateProjectWithLead inserts the project and the creator's team_lead
// membership in a single transaction. A project never exists without a lead.
func (r *ProjectRepository) CreateProjectWithLead(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		membership := &projects_models.ProjectMember{
			ID:        uuid.New(),
			ProjectID: project.ID,
			UserID:    project.CreatedBy,
			Role:      users_enums.ProjectRoleTeamLead,
			JoinedAt:  now,
		}

		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("failed to create lead membership: %w", err)
		}

		return nil
	})
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	err := storage.GetDb().
		Preload("Creator").
		Where("id = ?", projectID).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// GetProjectsByUserID returns every project the user is a member of,
// together with the user's role in each, newest project first.
func (r *ProjectRepository) GetProjectsByUserID(
	userID uuid.UUID,
) ([]projects_models.ProjectWithRole, error) {
	var projects []projects_models.ProjectWithRole

	err := storage.GetDb().
		Table("projects").
		Select("projects.*, project_members.role AS user_role, users.username AS created_by_username").
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Joins("LEFT JOIN users ON users.id = projects.created_by").
		Where("project_members.user_id = ?", userID).
		Order("projects.created_at DESC").
		Scan(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get projects for user: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepository) UpdateProjectFields(projectID uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()

	err := storage.GetDb().
		Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

// DeleteProject removes the project row. Memberships, invitations, tasks and
// notifications referencing it go with it through ON DELETE CASCADE.
func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	err := storage.GetDb().
		Where("id = ?", projectID).
		Delete(&projects_models.Project{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
