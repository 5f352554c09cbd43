package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajat-ed/nagadiPOS/internal/apierror"
	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.AddProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrDuplicateProduct) {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogHandler) List(c *gin.Context) {
	products := h.svc.List()
	data := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, dto.ProductResponse{Name: p.Name, Price: p.Price})
	}
	c.JSON(http.StatusOK, dto.ProductListResponse{Data: data, Total: len(data)})
}

func (h *CatalogHandler) Remove(c *gin.Context) {
	name := c.Param("name")
	if err := h.svc.Remove(c.Request.Context(), name); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to remove product"))
		return
	}
	c.Status(http.StatusNoContent)
}
