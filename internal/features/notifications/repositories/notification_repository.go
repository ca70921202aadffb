package notifications_repositories

import (
	"time"

	notifications_dto "taskhive/internal/features/notifications/dto"
	notifications_models "taskhive/internal/features/notifications/models"
	"taskhive/internal/storage"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func (r *NotificationRepository) Create(notification *notifications_models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(notification).Error
}

func (r *NotificationRepository) GetByUserID(
	userID uuid.UUID,
	unreadOnly bool,
) ([]notifications_dto.NotificationResponseDTO, error) {
	results := make([]notifications_dto.NotificationResponseDTO, 0)

	query := storage.GetDb().
		Table("notifications n").
		Select(`n.id, n.type, n.title, n.message, n.related_project_id,
			n.related_invitation_id, p.name as project_name, n.is_read, n.created_at`).
		Joins("LEFT JOIN projects p ON n.related_project_id = p.id").
		Where("n.user_id = ?", userID)

	if unreadOnly {
		query = query.Where("n.is_read = false")
	}

	err := query.Order("n.created_at DESC").Scan(&results).Error

	return results, err
}

func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&notifications_models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error

	return count, err
}

// MarkRead is ownership-scoped; the returned row count is zero when
// the notification does not exist or belongs to someone else.
func (r *NotificationRepository) MarkRead(notificationID, userID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Model(&notifications_models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)

	return result.RowsAffected, result.Error
}

func (r *NotificationRepository) MarkAllRead(userID uuid.UUID) error {
	return storage.GetDb().
		Model(&notifications_models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) Delete(notificationID, userID uuid.UUID) (int64, error) {
	result := storage.GetDb().
		Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&notifications_models.Notification{})

	return result.RowsAffected, result.Error
}
