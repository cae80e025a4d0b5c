package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/web/common"
)

type AddWorkerDTO struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

func (ep *Endpoint) ListWorkers(c *gin.Context) {
	workers, err := ep.Svc.ListWorkers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(workers))
}

// AddWorker returns the worker plus the raw QR token. The token is shown to
// the administrator exactly once here; only its digest survives.
func (ep *Endpoint) AddWorker(c *gin.Context) {
	var dto AddWorkerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	worker, token, err := ep.Svc.AddWorker(dto.Name, dto.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(gin.H{
		"worker":   worker,
		"qr_token": token,
	}))
}

func (ep *Endpoint) DeleteWorker(c *gin.Context) {
	if err := ep.Svc.DeleteWorker(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
