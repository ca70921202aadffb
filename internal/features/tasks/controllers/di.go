package tasks_controllers

import (
	tasks_services "taskhive/internal/features/tasks/services"
)

var taskController = &TaskController{
	taskService: tasks_services.GetTaskService(),
}

func GetTaskController() *TaskController {
	return taskController
}
