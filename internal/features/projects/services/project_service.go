package projects_services

import (
	"fmt"
	"log/slog"
	"strings"

	"taskhive/internal/apperrors"
	"taskhive/internal/features/audit_logs"
	projects_dto "taskhive/internal/features/projects/dto"
	projects_models "taskhive/internal/features/projects/models"
	projects_repositories "taskhive/internal/features/projects/repositories"
	users_enums "taskhive/internal/features/users/enums"
	users_models "taskhive/internal/features/users/models"
	users_services "taskhive/internal/features/users/services"
	cache_utils "taskhive/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	accessService        *AccessService
	userService          *users_services.UserService
	auditLogService      *audit_logs.AuditLogService
	logger               *slog.Logger

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

// CreateProject creates the project and makes the creator its team lead
// in a single transaction.
func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, apperrors.Validation("project name is required")
	}

	project := &projects_models.Project{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(request.Description),
		CreatedBy:   user.ID,
	}

	if err := s.projectRepository.CreateProjectWithLead(project); err != nil {
		return nil, err
	}

	s.projectCacheUtil.Set(project.ID.String(), project)
	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project \"%s\" created", project.Name),
		&user.ID,
		&project.ID,
	)

	leadRole := users_enums.ProjectRoleTeamLead

	return s.buildProjectResponse(project, user.Username, &leadRole), nil
}

func (s *ProjectService) GetUserProjects(
	user *users_models.User,
) (*projects_dto.GetProjectsResponseDTO, error) {
	projects, err := s.projectRepository.GetProjectsByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	response := &projects_dto.GetProjectsResponseDTO{
		Projects: make([]projects_dto.ProjectResponseDTO, 0, len(projects)),
	}

	for _, project := range projects {
		userRole := project.UserRole
		response.Projects = append(response.Projects, projects_dto.ProjectResponseDTO{
			ID:                project.ID,
			Name:              project.Name,
			Description:       project.Description,
			CreatedBy:         project.CreatedBy,
			CreatedByUsername: project.CreatedByUsername,
			UserRole:          &userRole,
			CreatedAt:         project.CreatedAt,
			UpdatedAt:         project.UpdatedAt,
		})
	}

	return response, nil
}

// GetProject returns the project with its member roster. Any authenticated
// user may view a project; the requester's role is included when they are
// a member.
func (s *ProjectService) GetProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.GetProjectResponseDTO, error) {
	project, err := s.GetProjectWithCache(projectID)
	if err != nil {
		return nil, err
	}

	role, err := s.accessService.GetRole(user.ID, projectID)
	if err != nil {
		return nil, err
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, err
	}

	// Creator may no longer be a member, resolve the username separately.
	creatorUsername := ""
	if creator, err := s.userService.GetUserByID(project.CreatedBy); err == nil && creator != nil {
		creatorUsername = creator.Username
	}

	memberDTOs := make([]projects_dto.ProjectMemberResponseDTO, 0, len(members))
	for _, member := range members {
		memberDTOs = append(memberDTOs, projects_dto.ProjectMemberResponseDTO{
			UserID:   member.UserID,
			Username: member.Username,
			Email:    member.Email,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		})
	}

	return &projects_dto.GetProjectResponseDTO{
		Project: *s.buildProjectResponse(project, creatorUsername, role),
		Members: memberDTOs,
	}, nil
}

// UpdateProject applies a partial update. Only fields present in the
// request are written.
func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) error {
	if _, err := s.GetProjectWithCache(projectID); err != nil {
		return err
	}

	if err := s.accessService.Authorize(user.ID, projectID, OpUpdateProject); err != nil {
		return err
	}

	fields := map[string]any{}
	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return apperrors.Validation("project name cannot be empty")
		}
		fields["name"] = name
	}
	if request.Description != nil {
		fields["description"] = strings.TrimSpace(*request.Description)
	}

	if len(fields) == 0 {
		return apperrors.Validation("no fields to update")
	}

	if err := s.projectRepository.UpdateProjectFields(projectID, fields); err != nil {
		return err
	}

	s.projectCacheUtil.Invalidate(projectID.String())
	s.auditLogService.WriteAuditLog("Project details updated", &user.ID, &projectID)

	return nil
}

// DeleteProject removes the project and everything referencing it.
func (s *ProjectService) DeleteProject(projectID uuid.UUID, user *users_models.User) error {
	project, err := s.GetProjectWithCache(projectID)
	if err != nil {
		return err
	}

	if err := s.accessService.Authorize(user.ID, projectID, OpDeleteProject); err != nil {
		return err
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return err
	}

	s.projectCacheUtil.Invalidate(projectID.String())
	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project \"%s\" deleted", project.Name),
		&user.ID,
		nil,
	)

	s.logger.Info("project deleted",
		slog.String("project_id", projectID.String()),
		slog.String("deleted_by", user.ID.String()))

	return nil
}

// GetProjectWithCache resolves the project through the cache. Missing
// projects are cached too so repeated lookups for dead IDs skip the DB.
func (s *ProjectService) GetProjectWithCache(projectID uuid.UUID) (*projects_models.Project, error) {
	projectIDStr := projectID.String()

	if cachedProject := s.projectCacheUtil.Get(projectIDStr); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, apperrors.NotFound("project not found")
		}

		return cachedProject, nil
	}

	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		return s.projectRepository.GetProjectByID(projectID)
	})
	if err != nil {
		return nil, err
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	if project == nil {
		s.projectCacheUtil.Set(projectIDStr, &projects_models.Project{
			ID:          projectID,
			IsNotExists: true,
		})

		return nil, apperrors.NotFound("project not found")
	}

	s.projectCacheUtil.Set(projectIDStr, project)

	return project, nil
}

func (s *ProjectService) buildProjectResponse(
	project *projects_models.Project,
	creatorUsername string,
	userRole *users_enums.ProjectRole,
) *projects_dto.ProjectResponseDTO {
	return &projects_dto.ProjectResponseDTO{
		ID:                project.ID,
		Name:              project.Name,
		Description:       project.Description,
		CreatedBy:         project.CreatedBy,
		CreatedByUsername: creatorUsername,
		UserRole:          userRole,
		CreatedAt:         project.CreatedAt,
		UpdatedAt:         project.UpdatedAt,
	}
}
