package notifications_services

import (
	"taskhive/internal/cache"
	notifications_repositories "taskhive/internal/features/notifications/repositories"
	cache_utils "taskhive/internal/util/cache"
	"taskhive/internal/util/logger"
)

var notificationRepository = &notifications_repositories.NotificationRepository{}

var notificationService = &NotificationService{
	notificationRepository,
	cache_utils.NewCacheUtil[int64](cache.GetCache(), "th_unread_count:"),
	logger.GetLogger(),
}

func GetNotificationService() *NotificationService {
	return notificationService
}
