package invitations_controllers

import (
	"net/http"

	"taskhive/internal/apperrors"
	invitations_dto "taskhive/internal/features/invitations/dto"
	invitations_services "taskhive/internal/features/invitations/services"
	users_middleware "taskhive/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationController struct {
	invitationService *invitations_services.InvitationService
}

func (c *InvitationController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/invitations", c.SendInvitation)
	router.GET("/projects/:projectId/invitations", c.ListProjectInvitations)

	invitationRoutes := router.Group("/invitations")
	invitationRoutes.GET("", c.ListMyInvitations)
	invitationRoutes.PUT("/:id/accept", c.AcceptInvitation)
	invitationRoutes.PUT("/:id/reject", c.RejectInvitation)
	invitationRoutes.DELETE("/:id", c.CancelInvitation)
}

// SendInvitation
// @Summary Invite a user to a project
// @Description Send an invitation by email (team leads only)
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body invitations_dto.SendInvitationRequestDTO true "Invitation data"
// @Success 201 {object} invitations_dto.InvitationResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Router /projects/{projectId}/invitations [post]
func (c *InvitationController) SendInvitation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request invitations_dto.SendInvitationRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.invitationService.SendInvitation(projectID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// ListProjectInvitations
// @Summary List project invitations
// @Description List every invitation of the project (team leads only)
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} invitations_dto.ListInvitationsResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /projects/{projectId}/invitations [get]
func (c *InvitationController) ListProjectInvitations(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.invitationService.ListProjectInvitations(projectID, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyInvitations
// @Summary List my invitations
// @Description List invitations addressed to the authenticated user
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param direction query string false "received (default) or sent"
// @Param pendingOnly query bool false "Only return pending received invitations"
// @Success 200 {object} invitations_dto.ListInvitationsResponseDTO
// @Failure 401
// @Router /invitations [get]
func (c *InvitationController) ListMyInvitations(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	direction := ctx.DefaultQuery("direction", "received")
	pendingOnly := ctx.Query("pendingOnly") == "true"

	response, err := c.invitationService.ListMyInvitations(user, direction, pendingOnly)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invitations"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptInvitation
// @Summary Accept an invitation
// @Description Accept a pending invitation and join the project as team member
// @Tags invitations
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 400
// @Failure 401
// @Failure 404
// @Router /invitations/{id}/accept [put]
func (c *InvitationController) AcceptInvitation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := c.invitationService.AcceptInvitation(invitationID, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation accepted"})
}

// RejectInvitation
// @Summary Reject an invitation
// @Tags invitations
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 400
// @Failure 401
// @Failure 404
// @Router /invitations/{id}/reject [put]
func (c *InvitationController) RejectInvitation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := c.invitationService.RejectInvitation(invitationID, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation rejected"})
}

// CancelInvitation
// @Summary Cancel an invitation
// @Description Withdraw a pending invitation you sent
// @Tags invitations
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 400
// @Failure 401
// @Failure 404
// @Router /invitations/{id} [delete]
func (c *InvitationController) CancelInvitation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := c.invitationService.CancelInvitation(invitationID, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation cancelled"})
}
