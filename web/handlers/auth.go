package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/security"
	"whitelotus.com/wms/web/common"
	"whitelotus.com/wms/web/middlewares"
)

type AdminLoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type WorkerScanDTO struct {
	Token string `json:"token" binding:"required"`
}

func (ep *Endpoint) AdminLogin(c *gin.Context) {
	var dto AdminLoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	ok, err := ep.Svc.AuthenticateAdmin(dto.Username, dto.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid credentials"))
		return
	}

	settings, err := ep.Svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	token, err := security.CreateAdminToken(&security.AdminIdentity{
		Username:     dto.Username,
		Organization: settings.OrganizationName,
	}, ep.Cfg.JWTSecret, ep.Cfg.TokenTTLSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.SetCookie(middlewares.AdminCookie, token, int(ep.Cfg.TokenTTLSeconds), "/", "", false, true)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"token": token}))
}

// WorkerScan resolves a presented QR token to its worker. The token itself
// is the credential; there is no session for workers.
func (ep *Endpoint) WorkerScan(c *gin.Context) {
	var dto WorkerScanDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	worker, err := ep.Svc.AuthenticateWorker(dto.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid QR Code. Access Denied."))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(worker))
}
