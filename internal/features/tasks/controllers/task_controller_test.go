package tasks_controllers

import (
	"fmt"
	"net/http"
	"testing"

	projects_models "taskhive/internal/features/projects/models"
	projects_testing "taskhive/internal/features/projects/testing"
	tasks_dto "taskhive/internal/features/tasks/dto"
	tasks_enums "taskhive/internal/features/tasks/enums"
	users_dto "taskhive/internal/features/users/dto"
	users_enums "taskhive/internal/features/users/enums"
	users_testing "taskhive/internal/features/users/testing"
	test_utils "taskhive/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTask(
	t *testing.T,
	router *gin.Engine,
	project *projects_models.Project,
	lead *users_dto.SignInResponseDTO,
	assignee *users_dto.SignInResponseDTO,
	title string,
) *tasks_dto.TaskResponseDTO {
	t.Helper()

	request := tasks_dto.CreateTaskRequestDTO{
		Title:      title,
		AssignedTo: assignee.UserID,
	}

	var response tasks_dto.TaskResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusCreated,
		&response,
	)

	return &response
}

func Test_CreateTask_AsTeamLead_TaskCreatedPending(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	task := createTask(t, router, project, lead, member, "Write docs")

	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, tasks_enums.TaskStatusPending, task.Status)
	assert.False(t, task.IsCompleted)
	assert.Equal(t, member.UserID, task.AssignedTo)
}

func Test_CreateTask_AsTeamMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	request := tasks_dto.CreateTaskRequestDTO{
		Title:      "Not allowed",
		AssignedTo: member.UserID,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", project.ID),
		"Bearer "+member.Token,
		request,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "only team leads can create tasks")
}

func Test_CreateTask_AssigneeNotMember_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)

	request := tasks_dto.CreateTaskRequestDTO{
		Title:      "Orphan task",
		AssignedTo: outsider.UserID,
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", project.ID),
		"Bearer "+lead.Token,
		request,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "assignee must be a member of the project")
}

func Test_ListProjectTasks_AsMember_ReturnsTasksNewestFirst(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	createTask(t, router, project, lead, member, "First task")
	createTask(t, router, project, lead, lead, "Second task")

	var response tasks_dto.ListTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", project.ID),
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Tasks, 2)
}

func Test_ListProjectTasks_AsNonMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", project.ID),
		"Bearer "+outsider.Token,
		http.StatusForbidden,
	)
}

func Test_ListMyTasks_ReturnsOwnTasksIncompleteFirst(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	first := createTask(t, router, project, lead, member, "Finish me")
	createTask(t, router, project, lead, member, "Keep me open")
	createTask(t, router, project, lead, lead, "Someone else's task")

	completed := true
	test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/tasks/%s/completion", first.ID),
		"Bearer "+member.Token,
		tasks_dto.SetCompletionRequestDTO{IsCompleted: &completed},
		http.StatusOK,
	)

	var response tasks_dto.ListTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/tasks/my", project.ID),
		"Bearer "+member.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Tasks, 2)
	assert.False(t, response.Tasks[0].IsCompleted)
	assert.True(t, response.Tasks[1].IsCompleted)
}

func Test_SetCompletion_AsAssignee_DerivesStatusAndTimestamp(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	task := createTask(t, router, project, lead, member, "Toggle me")

	completed := true
	var completedResponse tasks_dto.TaskResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/tasks/%s/completion", task.ID),
		"Bearer "+member.Token,
		tasks_dto.SetCompletionRequestDTO{IsCompleted: &completed},
		http.StatusOK,
		&completedResponse,
	)

	assert.True(t, completedResponse.IsCompleted)
	assert.Equal(t, tasks_enums.TaskStatusCompleted, completedResponse.Status)
	assert.NotNil(t, completedResponse.CompletedAt)

	notCompleted := false
	var revertedResponse tasks_dto.TaskResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/tasks/%s/completion", task.ID),
		"Bearer "+member.Token,
		tasks_dto.SetCompletionRequestDTO{IsCompleted: &notCompleted},
		http.StatusOK,
		&revertedResponse,
	)

	assert.False(t, revertedResponse.IsCompleted)
	assert.Equal(t, tasks_enums.TaskStatusPending, revertedResponse.Status)
	assert.Nil(t, revertedResponse.CompletedAt)
}

func Test_SetCompletion_AsNonAssignee_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	task := createTask(t, router, project, lead, member, "Hands off")

	completed := true
	resp := test_utils.MakePutRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/tasks/%s/completion", task.ID),
		"Bearer "+lead.Token,
		tasks_dto.SetCompletionRequestDTO{IsCompleted: &completed},
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "you can only update tasks assigned to you")
}

func Test_UpdateTask_AsTeamLead_UpdatesSuppliedFields(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	task := createTask(t, router, project, lead, member, "Old title")

	newTitle := "New title"
	inProgress := tasks_enums.TaskStatusInProgress
	request := tasks_dto.UpdateTaskRequestDTO{
		Title:  &newTitle,
		Status: &inProgress,
	}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String(),
		"Bearer "+lead.Token,
		request,
		http.StatusOK,
	)

	var response tasks_dto.ListTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", project.ID),
		"Bearer "+lead.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "New title", response.Tasks[0].Title)
	assert.Equal(t, tasks_enums.TaskStatusInProgress, response.Tasks[0].Status)
	// in_progress via update does not touch the completion flag
	assert.False(t, response.Tasks[0].IsCompleted)
}

func Test_UpdateTask_WithInvalidStatus_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	task := createTask(t, router, project, lead, lead, "Status check")

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String(),
		"Bearer "+lead.Token,
		map[string]string{"status": "archived"},
		http.StatusBadRequest,
	)
}

func Test_UpdateTask_WithNoFields_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	task := createTask(t, router, project, lead, lead, "No fields")

	resp := test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String(),
		"Bearer "+lead.Token,
		map[string]string{},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "no fields to update")
}

func Test_UpdateTask_AsTeamMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	projects_testing.AddMemberDirectly(project, member, users_enums.ProjectRoleTeamMember)

	task := createTask(t, router, project, lead, member, "Member update")

	newTitle := "Hijack"
	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String(),
		"Bearer "+member.Token,
		tasks_dto.UpdateTaskRequestDTO{Title: &newTitle},
		http.StatusForbidden,
	)
}

func Test_DeleteTask_AsTeamLead_RemovesTask(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectDirectly(lead)
	task := createTask(t, router, project, lead, lead, "Doomed task")

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/tasks/"+task.ID.String(),
		"Bearer "+lead.Token,
		http.StatusOK,
	)

	var response tasks_dto.ListTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/projects/%s/tasks", project.ID),
		"Bearer "+lead.Token,
		http.StatusOK,
		&response,
	)

	assert.Empty(t, response.Tasks)
}

func Test_DeleteTask_WithUnknownID_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetTaskController())
	lead := users_testing.CreateTestUser()

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/tasks/"+uuid.New().String(),
		"Bearer "+lead.Token,
		http.StatusNotFound,
	)
}
