package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/identity"
	"whitelotus.com/wms/model"
	"whitelotus.com/wms/utils"
	"whitelotus.com/wms/web/common"
)

// Worker self-service: every request re-presents the QR token, which is the
// worker's only credential.

type WorkerAttendanceDTO struct {
	Token  string `json:"token" binding:"required"`
	Status string `json:"status" binding:"required,oneof=PRESENT ABSENT LEAVE"`
	Notes  string `json:"notes"`
}

type WorkerTasksDTO struct {
	Token string `json:"token" binding:"required"`
}

type WorkerTaskStatusDTO struct {
	Token  string `json:"token" binding:"required"`
	TaskID string `json:"taskId" binding:"required"`
	Status string `json:"status" binding:"required,oneof=PENDING COMPLETED"`
}

func (ep *Endpoint) WorkerMarkAttendance(c *gin.Context) {
	var dto WorkerAttendanceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	worker, err := ep.Svc.AuthenticateWorker(dto.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid QR Code. Access Denied."))
		return
	}

	record, err := ep.Svc.MarkAttendance(worker.ID, model.AttendanceStatus(dto.Status), dto.Notes)
	if errors.Is(err, identity.ErrWorkerNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Worker not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	ep.Notifier.Info("%s marked %s on %s", record.WorkerName, record.Status, record.Date)
	c.JSON(http.StatusCreated, common.NewSuccessResponse(record))
}

func (ep *Endpoint) WorkerTasks(c *gin.Context) {
	var dto WorkerTasksDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	worker, err := ep.Svc.AuthenticateWorker(dto.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid QR Code. Access Denied."))
		return
	}

	tasks, err := ep.Svc.ListTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	mine := utils.Filter(tasks, func(t model.Task) bool { return t.AssignedTo == worker.ID })
	c.JSON(http.StatusOK, common.NewSuccessResponse(mine))
}

// WorkerUpdateTaskStatus lets the assignee toggle their own task. Tasks
// assigned to someone else are invisible to the toggle, not an error.
func (ep *Endpoint) WorkerUpdateTaskStatus(c *gin.Context) {
	var dto WorkerTaskStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	worker, err := ep.Svc.AuthenticateWorker(dto.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid QR Code. Access Denied."))
		return
	}

	tasks, err := ep.Svc.ListTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	task := utils.Find(tasks, func(t model.Task) bool { return t.ID == dto.TaskID && t.AssignedTo == worker.ID })
	if task == nil {
		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
		return
	}

	if err := ep.Svc.UpdateTaskStatus(dto.TaskID, model.TaskStatus(dto.Status)); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
