package notifications_controllers

import (
	notifications_services "taskhive/internal/features/notifications/services"
)

var notificationController = &NotificationController{
	notificationService: notifications_services.GetNotificationService(),
}

func GetNotificationController() *NotificationController {
	return notificationController
}
