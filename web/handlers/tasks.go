package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/model"
	"whitelotus.com/wms/web/common"
)

type AddTaskDTO struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	AssignedTo  string          `json:"assignedTo" binding:"required"`
	DueDate     common.DateOnly `json:"dueDate" binding:"required"`
}

type TaskStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=PENDING COMPLETED"`
}

func (ep *Endpoint) ListTasks(c *gin.Context) {
	tasks, err := ep.Svc.ListTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(tasks))
}

func (ep *Endpoint) AddTask(c *gin.Context) {
	var dto AddTaskDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	task, err := ep.Svc.AddTask(dto.Title, dto.Description, dto.AssignedTo, dto.DueDate.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(task))
}

func (ep *Endpoint) UpdateTaskStatus(c *gin.Context) {
	var dto TaskStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if err := ep.Svc.UpdateTaskStatus(c.Param("id"), model.TaskStatus(dto.Status)); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

func (ep *Endpoint) DeleteTask(c *gin.Context) {
	if err := ep.Svc.DeleteTask(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
