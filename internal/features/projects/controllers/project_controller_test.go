package projects_controllers

import (
	"fmt"
	"net/http"
	"testing"

	projects_dto "taskhive/internal/features/projects/dto"
	projects_testing "taskhive/internal/features/projects/testing"
	users_enums "taskhive/internal/features/users/enums"
	users_testing "taskhive/internal/features/users/testing"
	test_utils "taskhive/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateProject_WithValidData_CreatorBecomesTeamLead(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	user := users_testing.CreateTestUser()

	request := projects_dto.CreateProjectRequestDTO{
		Name:        "Test Project",
		Description: "A project for testing",
	}

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "Test Project", response.Name)
	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, user.UserID, response.CreatedBy)
	assert.Equal(t, users_enums.ProjectRoleTeamLead, *response.UserRole)
}

func Test_CreateProject_WithBlankName_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+user.Token,
		map[string]string{"name": ""},
		http.StatusBadRequest,
	)
}

func Test_CreateProject_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects",
		"",
		projects_dto.CreateProjectRequestDTO{Name: "No Auth"},
		http.StatusUnauthorized,
	)
}

func Test_GetUserProjects_ReturnsOnlyMemberProjects(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	member := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Listed Project", member, router)
	projects_testing.CreateTestProject("Outsider Project", outsider, router)

	var response projects_dto.GetProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Projects, 1)
	assert.Equal(t, project.ID, response.Projects[0].ID)
	assert.Equal(t, users_enums.ProjectRoleTeamLead, *response.Projects[0].UserRole)
}

func Test_GetProject_AsMember_ReturnsProjectWithMembers(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Roster Project", lead, router)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	var response projects_dto.GetProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, project.ID, response.Project.ID)
	assert.Equal(t, users_enums.ProjectRoleTeamMember, *response.Project.UserRole)
	assert.Len(t, response.Members, 2)

	// Leads come first in the roster
	assert.Equal(t, users_enums.ProjectRoleTeamLead, response.Members[0].Role)
	assert.Equal(t, lead.UserID, response.Members[0].UserID)
}

func Test_GetProject_WithUnknownID_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+uuid.New().String(),
		"Bearer "+user.Token,
		http.StatusNotFound,
	)
}

func Test_UpdateProject_AsTeamLead_UpdatesFields(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Before Update", lead, router)

	newName := "After Update"
	request := projects_dto.UpdateProjectRequestDTO{Name: &newName}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+lead.Token,
		request,
		http.StatusOK,
	)

	var response projects_dto.GetProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+lead.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "After Update", response.Project.Name)
}

func Test_UpdateProject_AsTeamMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Locked Project", lead, router)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	newName := "Hijacked"
	request := projects_dto.UpdateProjectRequestDTO{Name: &newName}

	resp := test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+member.Token,
		request,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "only team leads can update project details")
}

func Test_UpdateProject_WithNoFields_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Empty Update", lead, router)

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+lead.Token,
		map[string]string{},
		http.StatusBadRequest,
	)
}

func Test_DeleteProject_AsTeamLead_RemovesProject(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Doomed Project", lead, router)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+lead.Token,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+lead.Token,
		http.StatusNotFound,
	)
}

func Test_DeleteProject_AsTeamMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Protected Project", lead, router)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+member.Token,
		http.StatusForbidden,
	)
}

func Test_GetMembers_AsNonMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Members Only", lead, router)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members", project.ID),
		"Bearer "+outsider.Token,
		http.StatusForbidden,
	)
}

func Test_AssignTeamLead_AsTeamLead_PromotesMember(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Promotion Project", lead, router)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	request := projects_dto.AssignTeamLeadRequestDTO{UserID: member.UserID}
	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/assign-lead", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusOK,
	)

	var response projects_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members", project.ID),
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	for _, m := range response.Members {
		assert.Equal(t, users_enums.ProjectRoleTeamLead, m.Role)
	}
}

func Test_AssignTeamLead_ForNonMember_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("No Strangers", lead, router)

	request := projects_dto.AssignTeamLeadRequestDTO{UserID: outsider.UserID}
	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/assign-lead", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusNotFound,
	)
}

func Test_AssignTeamLead_ForExistingLead_ReturnsConflict(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Already Lead", lead, router)

	request := projects_dto.AssignTeamLeadRequestDTO{UserID: lead.UserID}
	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/assign-lead", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusConflict,
	)
}

func Test_RemoveMember_AsTeamLead_RemovesMember(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Removal Project", lead, router)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/%s", project.ID, member.UserID),
		"Bearer "+lead.Token,
		http.StatusOK,
	)

	var response projects_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members", project.ID),
		"Bearer "+lead.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Members, 1)
}

func Test_RemoveMember_Self_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Self Removal", lead, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/members/%s", project.ID, lead.UserID),
		"Bearer "+lead.Token,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "use leave")
}

func Test_LeaveProject_AsTeamMember_RemovesMembership(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Leavable Project", lead, router)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/leave", project.ID),
		"Bearer "+member.Token,
		nil,
		http.StatusOK,
	)

	var response projects_dto.GetProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.Projects)
}

func Test_LeaveProject_AsTeamLead_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Captive Lead", lead, router)

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/leave", project.ID),
		"Bearer "+lead.Token,
		nil,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "team leads cannot leave")
}
