package projects_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"taskhive/internal/features/audit_logs"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_models "taskhive/internal/features/projects/models"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_dto "taskhive/internal/features/users/dto"
	users_enums "taskhive/internal/features/users/enums"
	users_middleware "taskhive/internal/features/users/middleware"
	users_services "taskhive/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()

	return router
}

func MakeAPIRequest(
	router *gin.Engine,
	method string,
	url string,
	authHeader string,
	body any,
) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(jsonBody)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, requestBody)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// CreateTestProject creates a project through the API, making the owner
// its team lead.
func CreateTestProject(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *projects_models.Project {
	request := projects_dto.CreateProjectRequestDTO{Name: name}
	w := MakeAPIRequest(router, "POST", "/api/v1/projects", "Bearer "+owner.Token, request)

	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("Failed to create project. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response projects_dto.ProjectResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &projects_models.Project{
		ID:        response.ID,
		Name:      response.Name,
		CreatedBy: response.CreatedBy,
	}
}

// CreateTestProjectDirectly inserts the project and lead membership
// through the repository, for tests whose router does not mount the
// project controller.
func CreateTestProjectDirectly(owner *users_dto.SignInResponseDTO) *projects_models.Project {
	projectRepository := &projects_repositories.ProjectRepository{}

	project := &projects_models.Project{
		ID:        uuid.New(),
		Name:      "project-" + uuid.New().String()[:8],
		CreatedBy: owner.UserID,
	}

	if err := projectRepository.CreateProjectWithLead(project); err != nil {
		panic("Failed to create project: " + err.Error())
	}

	return project
}

// AddMemberDirectly inserts a membership row without going through the
// invitation flow. Tests that exercise the invitation flow itself should
// use the invitations API instead.
func AddMemberDirectly(
	project *projects_models.Project,
	member *users_dto.SignInResponseDTO,
	role users_enums.ProjectRole,
) {
	membershipRepository := &projects_repositories.MembershipRepository{}

	err := membershipRepository.CreateMembership(&projects_models.ProjectMember{
		ID:        uuid.New(),
		ProjectID: project.ID,
		UserID:    member.UserID,
		Role:      role,
		JoinedAt:  time.Now().UTC(),
	})
	if err != nil {
		panic("Failed to add member to project: " + err.Error())
	}
}
