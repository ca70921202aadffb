package invitations_controllers

import (
	"fmt"
	"net/http"
	"testing"

	invitations_dto "taskhive/internal/features/invitations/dto"
	invitations_enums "taskhive/internal/features/invitations/enums"
	projects_controllers "taskhive/internal/features/projects/controllers"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_models "taskhive/internal/features/projects/models"
	projects_testing "taskhive/internal/features/projects/testing"
	users_dto "taskhive/internal/features/users/dto"
	users_enums "taskhive/internal/features/users/enums"
	users_testing "taskhive/internal/features/users/testing"
	test_utils "taskhive/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		GetInvitationController(),
		projects_controllers.GetProjectController(),
	)
}

func sendInvitation(
	t *testing.T,
	router *gin.Engine,
	project *projects_models.Project,
	inviter *users_dto.SignInResponseDTO,
	invitee *users_dto.SignInResponseDTO,
) *invitations_dto.InvitationResponseDTO {
	t.Helper()

	request := invitations_dto.SendInvitationRequestDTO{
		Email:   invitee.Email,
		Message: "Join us",
	}

	var response invitations_dto.InvitationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/invitations", project.ID),
		"Bearer "+inviter.Token,
		request,
		http.StatusCreated,
		&response,
	)

	return &response
}

func Test_SendInvitation_AsTeamLead_InvitationCreated(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Invite Project", lead, router)

	invitation := sendInvitation(t, router, project, lead, invitee)

	assert.NotEqual(t, uuid.Nil, invitation.ID)
	assert.Equal(t, project.ID, invitation.ProjectID)
	assert.Equal(t, invitee.UserID, invitation.InviteeID)
	assert.Equal(t, invitations_enums.InvitationStatusPending, invitation.Status)
}

func Test_SendInvitation_AsTeamMember_ReturnsForbidden(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Member Cannot Invite", lead, router)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	request := invitations_dto.SendInvitationRequestDTO{Email: invitee.Email}
	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/invitations", project.ID),
		"Bearer "+member.Token,
		request,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "only team leads can send invitations")
}

func Test_SendInvitation_ToUnknownEmail_ReturnsNotFound(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Unknown Email", lead, router)

	request := invitations_dto.SendInvitationRequestDTO{Email: "nobody@test.com"}
	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/invitations", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusNotFound,
	)
}

func Test_SendInvitation_ToSelf_ReturnsBadRequest(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Self Invite", lead, router)

	request := invitations_dto.SendInvitationRequestDTO{Email: lead.Email}
	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/invitations", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "cannot invite yourself")
}

func Test_SendInvitation_ToExistingMember_ReturnsConflict(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Already Member", lead, router)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	request := invitations_dto.SendInvitationRequestDTO{Email: member.Email}
	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/invitations", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusConflict,
	)
}

func Test_SendInvitation_WhilePendingExists_ReturnsConflict(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Duplicate Invite", lead, router)
	sendInvitation(t, router, project, lead, invitee)

	request := invitations_dto.SendInvitationRequestDTO{Email: invitee.Email}
	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/invitations", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusConflict,
	)

	assert.Contains(t, string(resp.Body), "already pending")
}

func Test_AcceptInvitation_AsInvitee_BecomesTeamMember(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Accept Flow", lead, router)
	invitation := sendInvitation(t, router, project, lead, invitee)

	test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s/accept", invitation.ID),
		"Bearer "+invitee.Token,
		nil,
		http.StatusOK,
	)

	var projectResponse projects_dto.GetProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+invitee.Token,
		http.StatusOK,
		&projectResponse,
	)

	assert.Equal(t, users_enums.ProjectRoleTeamMember, *projectResponse.Project.UserRole)
	assert.Len(t, projectResponse.Members, 2)
}

func Test_AcceptInvitation_Twice_SecondReturnsNotFound(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Double Accept", lead, router)
	invitation := sendInvitation(t, router, project, lead, invitee)

	url := fmt.Sprintf("/api/v1/invitations/%s/accept", invitation.ID)
	test_utils.MakePutRequest(t, router, url, "Bearer "+invitee.Token, nil, http.StatusOK)

	resp := test_utils.MakePutRequest(
		t, router, url, "Bearer "+invitee.Token, nil, http.StatusNotFound)
	assert.Contains(t, string(resp.Body), "invitation not found or already processed")
}

func Test_AcceptInvitation_AsDifferentUser_ReturnsNotFound(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()
	impostor := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Wrong Invitee", lead, router)
	invitation := sendInvitation(t, router, project, lead, invitee)

	test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s/accept", invitation.ID),
		"Bearer "+impostor.Token,
		nil,
		http.StatusNotFound,
	)
}

func Test_RejectInvitation_AsInvitee_InvitationRejected(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Reject Flow", lead, router)
	invitation := sendInvitation(t, router, project, lead, invitee)

	test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s/reject", invitation.ID),
		"Bearer "+invitee.Token,
		nil,
		http.StatusOK,
	)

	// Rejecting does not grant membership
	var listResponse projects_dto.GetProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&listResponse,
	)
	assert.Empty(t, listResponse.Projects)

	// And the invitation leaves the pending state
	test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s/accept", invitation.ID),
		"Bearer "+invitee.Token,
		nil,
		http.StatusNotFound,
	)
}

func Test_CancelInvitation_AsInviter_InvitationCancelled(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Cancel Flow", lead, router)
	invitation := sendInvitation(t, router, project, lead, invitee)

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s", invitation.ID),
		"Bearer "+lead.Token,
		http.StatusOK,
	)

	// Gone from the invitee's pending list, and no longer acceptable
	var pending invitations_dto.ListInvitationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations?pendingOnly=true",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&pending,
	)
	assert.Empty(t, pending.Invitations)

	test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s/accept", invitation.ID),
		"Bearer "+invitee.Token,
		nil,
		http.StatusNotFound,
	)
}

func Test_CancelInvitation_AsInvitee_ReturnsNotFound(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Invitee Cannot Cancel", lead, router)
	invitation := sendInvitation(t, router, project, lead, invitee)

	// Cancellation is inviter-scoped, anyone else gets the same collapsed 404
	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s", invitation.ID),
		"Bearer "+invitee.Token,
		http.StatusNotFound,
	)
}

func Test_ListMyInvitations_DirectionSent_ReturnsIssuedInvitations(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Sent Listing", lead, router)
	invitation := sendInvitation(t, router, project, lead, invitee)

	var response invitations_dto.ListInvitationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations?direction=sent",
		"Bearer "+lead.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Invitations, 1)
	assert.Equal(t, invitation.ID, response.Invitations[0].ID)
	assert.Equal(t, invitee.UserID, response.Invitations[0].InviteeID)

	// The invitee sees nothing under "sent"
	var empty invitations_dto.ListInvitationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations?direction=sent",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&empty,
	)
	assert.Empty(t, empty.Invitations)
}

func Test_ListMyInvitations_PendingOnly_FiltersResponded(t *testing.T) {
	router := createTestRouter()
	leadOne := users_testing.CreateTestUser()
	leadTwo := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	projectOne := projects_testing.CreateTestProject("Pending Project", leadOne, router)
	projectTwo := projects_testing.CreateTestProject("Rejected Project", leadTwo, router)

	pending := sendInvitation(t, router, projectOne, leadOne, invitee)
	rejected := sendInvitation(t, router, projectTwo, leadTwo, invitee)

	test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s/reject", rejected.ID),
		"Bearer "+invitee.Token,
		nil,
		http.StatusOK,
	)

	var response invitations_dto.ListInvitationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations?pendingOnly=true",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Invitations, 1)
	assert.Equal(t, pending.ID, response.Invitations[0].ID)
}

func Test_ListProjectInvitations_AsTeamLead_ReturnsAll(t *testing.T) {
	router := createTestRouter()
	lead := users_testing.CreateTestUser()
	inviteeOne := users_testing.CreateTestUser()
	inviteeTwo := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Project Invites", lead, router)
	sendInvitation(t, router, project, lead, inviteeOne)
	sendInvitation(t, router, project, lead, inviteeTwo)

	var response invitations_dto.ListInvitationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/invitations", project.ID),
		"Bearer "+lead.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Invitations, 2)
}
