package projects_controllers

import (
	projects_services "taskhive/internal/features/projects/services"
)

var projectController = &ProjectController{
	projectService:    projects_services.GetProjectService(),
	membershipService: projects_services.GetMembershipService(),
}

func GetProjectController() *ProjectController {
	return projectController
}
