package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rajat-ed/nagadiPOS/internal/apierror"
	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

type CartHandler struct {
	cart    service.CartService
	catalog service.CatalogService
}

func NewCartHandler(cart service.CartService, catalog service.CatalogService) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CartResponse{
		Items: h.cart.Items(),
		Total: h.cart.Total(),
		Count: h.cart.Len(),
	})
}

// AddItem resolves the product in the catalog and snapshots it into the
// cart. The cart never holds live catalog references.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	product, err := h.catalog.Find(req.Name)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	h.cart.Add(product)
	c.JSON(http.StatusOK, dto.CartResponse{
		Items: h.cart.Items(),
		Total: h.cart.Total(),
		Count: h.cart.Len(),
	})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid cart index"))
		return
	}
	if err := h.cart.Remove(index); err != nil {
		if errors.Is(err, service.ErrInvalidCartIndex) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to remove cart item"))
		return
	}
	c.JSON(http.StatusOK, dto.CartResponse{
		Items: h.cart.Items(),
		Total: h.cart.Total(),
		Count: h.cart.Len(),
	})
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear()
	c.Status(http.StatusNoContent)
}
