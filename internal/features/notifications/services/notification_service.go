package notifications_services

import (
	"fmt"
	"log/slog"

	"taskhive/internal/apperrors"
	notifications_dto "taskhive/internal/features/notifications/dto"
	notifications_enums "taskhive/internal/features/notifications/enums"
	notifications_models "taskhive/internal/features/notifications/models"
	notifications_repositories "taskhive/internal/features/notifications/repositories"
	users_enums "taskhive/internal/features/users/enums"
	users_models "taskhive/internal/features/users/models"
	cache_utils "taskhive/internal/util/cache"

	"github.com/google/uuid"
)

type NotificationService struct {
	notificationRepository *notifications_repositories.NotificationRepository
	unreadCountCache       *cache_utils.CacheUtil[int64]
	logger                 *slog.Logger
}

// Notify* helpers are side channels of other features' state
// transitions. A failed write here must never fail the primary
// operation, so they log and swallow errors instead of returning them.

func (s *NotificationService) NotifyInvitationCreated(
	inviteeID, projectID, invitationID uuid.UUID,
	projectName, inviterUsername string,
) {
	s.create(&notifications_models.Notification{
		UserID:              inviteeID,
		Type:                notifications_enums.NotificationTypeInvitation,
		Title:               fmt.Sprintf("Project Invitation: %s", projectName),
		Message: fmt.Sprintf(
			"You have been invited to join the project %q by %s.",
			projectName,
			inviterUsername,
		),
		RelatedProjectID:    &projectID,
		RelatedInvitationID: &invitationID,
	})
}

func (s *NotificationService) NotifyRoleChange(
	userID, projectID uuid.UUID,
	projectName string,
	newRole users_enums.ProjectRole,
) {
	s.create(&notifications_models.Notification{
		UserID:           userID,
		Type:             notifications_enums.NotificationTypeRoleChange,
		Title:            fmt.Sprintf("Role Updated in %s", projectName),
		Message:          fmt.Sprintf("Your role in %q has been changed to %s.", projectName, newRole),
		RelatedProjectID: &projectID,
	})
}

func (s *NotificationService) NotifyTaskAssigned(
	userID, projectID uuid.UUID,
	projectName, taskTitle string,
) {
	s.create(&notifications_models.Notification{
		UserID:           userID,
		Type:             notifications_enums.NotificationTypeTaskAssigned,
		Title:            fmt.Sprintf("New Task: %s", taskTitle),
		Message:          fmt.Sprintf("You have been assigned a new task in %q project.", projectName),
		RelatedProjectID: &projectID,
	})
}

func (s *NotificationService) create(notification *notifications_models.Notification) {
	if err := s.notificationRepository.Create(notification); err != nil {
		s.logger.Error(
			"failed to create notification",
			"type", notification.Type,
			"userId", notification.UserID,
			"error", err,
		)
		return
	}

	s.unreadCountCache.Invalidate(notification.UserID.String())
}

func (s *NotificationService) ListNotifications(
	user *users_models.User,
	unreadOnly bool,
) (*notifications_dto.ListNotificationsResponseDTO, error) {
	notifications, err := s.notificationRepository.GetByUserID(user.ID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return &notifications_dto.ListNotificationsResponseDTO{
		Notifications: notifications,
	}, nil
}

func (s *NotificationService) UnreadCount(user *users_models.User) (int64, error) {
	if cached := s.unreadCountCache.Get(user.ID.String()); cached != nil {
		return *cached, nil
	}

	count, err := s.notificationRepository.CountUnread(user.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	s.unreadCountCache.Set(user.ID.String(), &count)

	return count, nil
}

func (s *NotificationService) MarkRead(notificationID uuid.UUID, user *users_models.User) error {
	rowsAffected, err := s.notificationRepository.MarkRead(notificationID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("notification not found")
	}

	s.unreadCountCache.Invalidate(user.ID.String())

	return nil
}

func (s *NotificationService) MarkAllRead(user *users_models.User) error {
	if err := s.notificationRepository.MarkAllRead(user.ID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	s.unreadCountCache.Invalidate(user.ID.String())

	return nil
}

func (s *NotificationService) DeleteNotification(notificationID uuid.UUID, user *users_models.User) error {
	rowsAffected, err := s.notificationRepository.Delete(notificationID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NotFound("notification not found")
	}

	s.unreadCountCache.Invalidate(user.ID.String())

	return nil
}
