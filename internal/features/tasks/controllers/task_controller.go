package tasks_controllers

import (
	"net/http"

	"taskhive/internal/apperrors"
	tasks_dto "taskhive/internal/features/tasks/dto"
	tasks_services "taskhive/internal/features/tasks/services"
	users_middleware "taskhive/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService *tasks_services.TaskService
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/tasks", c.CreateTask)
	router.GET("/projects/:projectId/tasks", c.ListProjectTasks)
	router.GET("/projects/:projectId/tasks/my", c.ListMyTasks)

	taskRoutes := router.Group("/tasks")
	taskRoutes.PUT("/:id", c.UpdateTask)
	taskRoutes.PUT("/:id/completion", c.SetCompletion)
	taskRoutes.DELETE("/:id", c.DeleteTask)
}

// CreateTask
// @Summary Create a task
// @Description Create a task assigned to a project member (team leads only)
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body tasks_dto.CreateTaskRequestDTO true "Task data"
// @Success 201 {object} tasks_dto.TaskResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /projects/{projectId}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
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

	var request tasks_dto.CreateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.taskService.CreateTask(projectID, &request, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// ListProjectTasks
// @Summary List project tasks
// @Description List every task of the project, newest first (members only)
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} tasks_dto.ListTasksResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /projects/{projectId}/tasks [get]
func (c *TaskController) ListProjectTasks(ctx *gin.Context) {
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

	response, err := c.taskService.ListProjectTasks(projectID, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyTasks
// @Summary List my tasks in a project
// @Description List tasks assigned to the authenticated user, incomplete first
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} tasks_dto.ListTasksResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /projects/{projectId}/tasks/my [get]
func (c *TaskController) ListMyTasks(ctx *gin.Context) {
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

	response, err := c.taskService.ListMyTasks(projectID, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// SetCompletion
// @Summary Toggle task completion
// @Description Mark a task complete or incomplete (assignee only)
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body tasks_dto.SetCompletionRequestDTO true "Completion flag"
// @Success 200 {object} tasks_dto.TaskResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /tasks/{id}/completion [put]
func (c *TaskController) SetCompletion(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request tasks_dto.SetCompletionRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.taskService.SetCompletion(taskID, *request.IsCompleted, user)
	if err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateTask
// @Summary Update a task
// @Description Partially update a task (team leads of the task's project only)
// @Tags tasks
// @Accept json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body tasks_dto.UpdateTaskRequestDTO true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /tasks/{id} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request tasks_dto.UpdateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.taskService.UpdateTask(taskID, &request, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

// DeleteTask
// @Summary Delete a task
// @Description Hard delete a task (team leads of the task's project only)
// @Tags tasks
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := c.taskService.DeleteTask(taskID, user); err != nil {
		ctx.JSON(apperrors.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
