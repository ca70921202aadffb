package invitations_controllers

import (
	invitations_services "taskhive/internal/features/invitations/services"
)

var invitationController = &InvitationController{
	invitationService: invitations_services.GetInvitationService(),
}

func GetInvitationController() *InvitationController {
	return invitationController
}
