package tasks_repositories

import (
	"errors"
	"fmt"
	"time"

	tasks_enums "taskhive/internal/features/tasks/enums"
	tasks_models "taskhive/internal/features/tasks/models"
	"taskhive/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const taskDetailsSelect = `tasks.*,
	projects.name AS project_name,
	creators.username AS created_by_username,
	assignees.username AS assigned_to_username`

type TaskRepository struct{}

func (r *TaskRepository) Create(task *tasks_models.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	if task.Status == "" {
		task.Status = tasks_enums.TaskStatusPending
	}

	if err := storage.GetDb().Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *TaskRepository) GetByID(taskID uuid.UUID) (*tasks_models.Task, error) {
	var task tasks_models.Task

	err := storage.GetDb().
		Where("id = ?", taskID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

func (r *TaskRepository) GetByProject(
	projectID uuid.UUID,
) ([]tasks_models.TaskWithDetails, error) {
	var tasks []tasks_models.TaskWithDetails

	err := storage.GetDb().
		Table("tasks").
		Select(taskDetailsSelect).
		Joins("LEFT JOIN projects ON projects.id = tasks.project_id").
		Joins("JOIN users AS creators ON creators.id = tasks.created_by").
		Joins("JOIN users AS assignees ON assignees.id = tasks.assigned_to").
		Where("tasks.project_id = ?", projectID).
		Order("tasks.created_at DESC").
		Scan(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for project: %w", err)
	}

	return tasks, nil
}

// GetByProjectAndAssignee lists the user's tasks in one project,
// incomplete first so actionable work sits ahead of completed history,
// then newest first within each group.
func (r *TaskRepository) GetByProjectAndAssignee(
	projectID uuid.UUID,
	userID uuid.UUID,
) ([]tasks_models.TaskWithDetails, error) {
	var tasks []tasks_models.TaskWithDetails

	err := storage.GetDb().
		Table("tasks").
		Select(taskDetailsSelect).
		Joins("LEFT JOIN projects ON projects.id = tasks.project_id").
		Joins("JOIN users AS creators ON creators.id = tasks.created_by").
		Joins("JOIN users AS assignees ON assignees.id = tasks.assigned_to").
		Where("tasks.project_id = ? AND tasks.assigned_to = ?", projectID, userID).
		Order("tasks.is_completed ASC, tasks.created_at DESC").
		Scan(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for assignee: %w", err)
	}

	return tasks, nil
}

// ErrNotAssignee is returned when someone other than the task's assignee
// tries to toggle completion.
var ErrNotAssignee = errors.New("you can only update tasks assigned to you")

// SetCompletion toggles is_completed under a row lock and derives the
// dependent columns from the new value. The assignee check runs inside
// the transaction so a concurrent reassignment cannot slip between check
// and write. Completing sets status=completed and stamps completed_at;
// un-completing always lands in pending, never back in in_progress, and
// clears the stamp.
func (r *TaskRepository) SetCompletion(
	taskID uuid.UUID,
	userID uuid.UUID,
	isCompleted bool,
) (*tasks_models.Task, error) {
	var task tasks_models.Task

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", taskID).
			First(&task).Error
		if err != nil {
			return err
		}

		if task.AssignedTo != userID {
			return ErrNotAssignee
		}

		now := time.Now().UTC()

		task.IsCompleted = isCompleted
		task.UpdatedAt = now
		if isCompleted {
			task.Status = tasks_enums.TaskStatusCompleted
			task.CompletedAt = &now
		} else {
			task.Status = tasks_enums.TaskStatusPending
			task.CompletedAt = nil
		}

		return tx.
			Model(&tasks_models.Task{}).
			Where("id = ?", taskID).
			Updates(map[string]any{
				"is_completed": task.IsCompleted,
				"status":       task.Status,
				"completed_at": task.CompletedAt,
				"updated_at":   task.UpdatedAt,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if errors.Is(err, ErrNotAssignee) {
			return nil, ErrNotAssignee
		}

		return nil, fmt.Errorf("failed to set task completion: %w", err)
	}

	return &task, nil
}

func (r *TaskRepository) UpdateFields(taskID uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()

	err := storage.GetDb().
		Model(&tasks_models.Task{}).
		Where("id = ?", taskID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (r *TaskRepository) Delete(taskID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Where("id = ?", taskID).
		Delete(&tasks_models.Task{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete task: %w", result.Error)
	}

	return result.RowsAffected, nil
}
