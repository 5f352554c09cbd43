package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajat-ed/nagadiPOS/internal/apierror"
	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s := h.svc.Get()
	c.JSON(http.StatusOK, dto.SettingsResponse{BusinessName: s.BusinessName, Currency: s.Currency})
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var req dto.SaveSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	s, err := h.svc.Save(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to save settings"))
		return
	}
	c.JSON(http.StatusOK, dto.SettingsResponse{BusinessName: s.BusinessName, Currency: s.Currency})
}

func (h *SettingsHandler) GetLogo(c *gin.Context) {
	data, err := h.svc.Logo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to load logo"))
		return
	}
	if data == "" {
		c.JSON(http.StatusNotFound, apierror.New("No logo uploaded"))
		return
	}
	c.JSON(http.StatusOK, dto.LogoResponse{Data: data})
}

func (h *SettingsHandler) SaveLogo(c *gin.Context) {
	var req dto.SaveLogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SaveLogo(c.Request.Context(), req.Data); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to save logo"))
		return
	}
	c.Status(http.StatusNoContent)
}
