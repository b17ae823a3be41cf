package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/drip-billing/internal/application/service"
	"github.com/sangkips/drip-billing/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	till *service.TillService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(till *service.TillService) *PrinterHandler {
	return &PrinterHandler{till: till}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.till.PrinterStatus(c.Request.Context())
	response.OK(c, "Printer status retrieved", status)
}

// PrintBill sends the last bill to the thermal printer.
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	if err := h.till.Print(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill sent to printer", nil)
}
