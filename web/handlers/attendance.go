package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/identity"
	"whitelotus.com/wms/infrastructure/filesystem"
	"whitelotus.com/wms/model"
	"whitelotus.com/wms/web/common"
)

type MarkAttendanceDTO struct {
	WorkerID string `json:"workerId" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=PRESENT ABSENT LEAVE"`
	Notes    string `json:"notes"`
}

type ManualRecordDTO struct {
	WorkerID string          `json:"workerId" binding:"required"`
	Date     common.DateOnly `json:"date" binding:"required"`
	Status   string          `json:"status" binding:"required,oneof=PRESENT ABSENT LEAVE"`
	CheckIn  string          `json:"checkIn"`
	CheckOut string          `json:"checkOut"`
	Notes    string          `json:"notes"`
}

func (ep *Endpoint) ListAttendance(c *gin.Context) {
	records, err := ep.Svc.ListAttendance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(records))
}

func (ep *Endpoint) MarkAttendance(c *gin.Context) {
	var dto MarkAttendanceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	record, err := ep.Svc.MarkAttendance(dto.WorkerID, model.AttendanceStatus(dto.Status), dto.Notes)
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

func (ep *Endpoint) CreateManualRecord(c *gin.Context) {
	var dto ManualRecordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	record, err := ep.Svc.CreateManualRecord(dto.WorkerID, dto.Date.String(), model.AttendanceStatus(dto.Status), dto.CheckIn, dto.CheckOut, dto.Notes)
	if errors.Is(err, identity.ErrWorkerNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("Worker not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(record))
}

func (ep *Endpoint) ExportCSV(c *gin.Context) {
	data, err := ep.Svc.ExportAttendanceCSV()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	ep.archiveExport(c, "attendance_logs.csv", "text/csv", data)
	c.Header("Content-Disposition", `attachment; filename="attendance_logs.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (ep *Endpoint) ExportXLSX(c *gin.Context) {
	data, err := ep.Svc.ExportAttendanceXLSX()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ep.archiveExport(c, "attendance_logs.xlsx", contentType, data)
	c.Header("Content-Disposition", `attachment; filename="attendance_logs.xlsx"`)
	c.Data(http.StatusOK, contentType, data)
}

func (ep *Endpoint) ListArchivedExports(c *gin.Context) {
	if ep.Cfg.ExportBucket == "" {
		c.JSON(http.StatusOK, common.NewSuccessResponse([]string{}))
		return
	}
	keys, err := filesystem.ListFiles(c.Request.Context(), ep.Cfg.ExportBucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(keys))
}

// archiveExport pushes a copy of the export to the configured bucket. The
// download itself never fails because of archiving; errors only go to the
// notifier.
func (ep *Endpoint) archiveExport(c *gin.Context, name, contentType string, data []byte) {
	if ep.Cfg.ExportBucket == "" {
		return
	}
	key := fmt.Sprintf("%s/%s", time.Now().Format("2006-01-02T15-04-05"), name)
	if err := filesystem.WriteFile(c.Request.Context(), ep.Cfg.ExportBucket, key, contentType, data); err != nil {
		ep.Notifier.Error("export archive failed: %v", err)
	}
}
