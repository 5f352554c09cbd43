package dto

import (
	"github.com/shopspring/decimal"
)

type AddProductRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"required,gt=0"`
}

type ProductResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}
