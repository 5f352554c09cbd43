package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajat-ed/nagadiPOS/internal/apierror"
	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

type SessionsHandler struct {
	sessions service.SessionService
	exports  service.ExportService
}

func NewSessionsHandler(sessions service.SessionService, exports service.ExportService) *SessionsHandler {
	return &SessionsHandler{sessions: sessions, exports: exports}
}

func (h *SessionsHandler) List(c *gin.Context) {
	sessions := h.sessions.Sessions()
	c.JSON(http.StatusOK, dto.SessionListResponse{Data: sessions, Total: len(sessions)})
}

// ClearAll irreversibly empties the session list. The confirm query flag is
// the caller's explicit intent. Without it nothing is touched.
func (h *SessionsHandler) ClearAll(c *gin.Context) {
	confirm := c.Query("confirm") == "true"
	if err := h.sessions.ClearAll(c.Request.Context(), confirm); err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfirmed):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case errors.Is(err, service.ErrNoSessions):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to clear sessions"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionsHandler) Export(c *gin.Context) {
	path, err := h.exports.ExportSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrNoTransactions):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Export failed"))
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ExportResponse{File: path})
}
