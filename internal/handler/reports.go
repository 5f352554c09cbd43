package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rajat-ed/nagadiPOS/internal/apierror"
	"github.com/rajat-ed/nagadiPOS/internal/dto"
	"github.com/rajat-ed/nagadiPOS/internal/service"
)

type ReportsHandler struct {
	reports service.ReportService
	exports service.ExportService
}

func NewReportsHandler(reports service.ReportService, exports service.ExportService) *ReportsHandler {
	return &ReportsHandler{reports: reports, exports: exports}
}

func (h *ReportsHandler) ListTransactions(c *gin.Context) {
	rng := c.DefaultQuery("range", service.RangeAll)
	txs := h.reports.FilterByRange(rng)
	c.JSON(http.StatusOK, dto.TransactionListResponse{Data: txs, Range: rng, Total: len(txs)})
}

func (h *ReportsHandler) Summary(c *gin.Context) {
	rng := c.DefaultQuery("range", service.SummaryDaily)
	summary := h.reports.SaleSummary(rng)

	items := make([]dto.SummaryLine, 0, len(summary.Items))
	for _, item := range summary.Items {
		items = append(items, dto.SummaryLine{
			Label: h.reports.FormatItemLine(item.Name, item.UnitPrice, item.Count),
			Name:  item.Name,
			Price: item.UnitPrice,
			Count: item.Count,
			Total: item.Total,
		})
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{
		Items:        items,
		Total:        summary.Total,
		Transactions: summary.TransactionCount,
	})
}

func (h *ReportsHandler) ExportRange(c *gin.Context) {
	var req dto.ExportRangeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	path, err := h.exports.ExportRange(c.Request.Context(), req.Range)
	if err != nil {
		if errors.Is(err, service.ErrNoTransactions) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Export failed"))
		return
	}
	c.JSON(http.StatusCreated, dto.ExportResponse{File: path})
}

func (h *ReportsHandler) ExportSummary(c *gin.Context) {
	var req dto.ExportSummaryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	path, err := h.exports.ExportSummary(c.Request.Context(), req.Range)
	if err != nil {
		if errors.Is(err, service.ErrNoSales) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Export failed"))
		return
	}
	c.JSON(http.StatusCreated, dto.ExportResponse{File: path})
}
