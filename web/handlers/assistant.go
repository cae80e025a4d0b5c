package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/web/common"
)

type ChatDTO struct {
	Message string `json:"message" binding:"required"`
}

func (ep *Endpoint) AssistantChat(c *gin.Context) {
	var dto ChatDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	snap, err := ep.Svc.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	settings, err := ep.Svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	reply := ep.Advisor.Ask(c.Request.Context(), dto.Message, settings.OrganizationName, snap)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"reply": reply}))
}
