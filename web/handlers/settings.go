package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"whitelotus.com/wms/model"
	"whitelotus.com/wms/security"
	"whitelotus.com/wms/web/common"
)

type UpdateSettingsDTO struct {
	StorageType      string `json:"storageType" binding:"required,oneof=DATABASE EXCEL"`
	OrganizationName string `json:"organizationName" binding:"required"`
	// Pointer fields: omitted keeps the stored value, an explicit "" clears
	// it (a cleared username falls back to the default on read).
	LogoURL       *string `json:"logoUrl"`
	AdminUsername *string `json:"adminUsername"`
	// New password, plain. Empty keeps the current digest.
	AdminPassword string `json:"adminPassword"`
}

func (ep *Endpoint) GetSettings(c *gin.Context) {
	settings, err := ep.Svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	// The digest never leaves the service.
	settings.AdminPasswordHash = ""
	c.JSON(http.StatusOK, common.NewSuccessResponse(settings))
}

// UpdateSettings is a whole-record overwrite: the DTO carries the full
// desired state, merged here over what is currently stored.
func (ep *Endpoint) UpdateSettings(c *gin.Context) {
	var dto UpdateSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	current, err := ep.Svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	next := current
	next.StorageType = model.StorageType(dto.StorageType)
	next.OrganizationName = dto.OrganizationName
	if dto.LogoURL != nil {
		next.LogoURL = *dto.LogoURL
	}
	if dto.AdminUsername != nil {
		next.AdminUsername = *dto.AdminUsername
	}
	if dto.AdminPassword != "" {
		next.AdminPasswordHash = security.Digest(dto.AdminPassword)
	}

	if err := ep.Svc.UpdateSettings(next); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

// UploadLogo accepts a single image and embeds it into settings as an inline
// data URL, the representation the settings blob has always used.
func (ep *Endpoint) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("logo file is required"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mime, ok := logoMimeTypes[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(fmt.Sprintf("unsupported logo type %q", ext)))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxLogoBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	if len(data) > maxLogoBytes {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("logo exceeds 1 MB"))
		return
	}

	current, err := ep.Svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	current.LogoURL = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	if err := ep.Svc.UpdateSettings(current); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

const maxLogoBytes = 1 << 20

var logoMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
}
