package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/drip-billing/internal/application/service"
	"github.com/sangkips/drip-billing/internal/presentation/http/dto/request"
	"github.com/sangkips/drip-billing/internal/presentation/http/dto/response"
)

// TillHandler handles the till session: selection, bill and its outputs.
type TillHandler struct {
	till *service.TillService
}

// NewTillHandler creates a new till handler
func NewTillHandler(till *service.TillService) *TillHandler {
	return &TillHandler{till: till}
}

// SetSelection replaces the current quantities and customer.
func (h *TillHandler) SetSelection(c *gin.Context) {
	var req request.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.till.SetSelection(req.Quantities, req.Customer.ToEntity()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Selection updated", h.till.Selection())
}

// GetSelection returns the current selection.
func (h *TillHandler) GetSelection(c *gin.Context) {
	response.OK(c, "Selection retrieved successfully", h.till.Selection())
}

// Generate computes a bill. A request body, when present, replaces the
// selection first.
func (h *TillHandler) Generate(c *gin.Context) {
	var req request.SelectionRequest
	bound, err := bindOptionalJSON(c, &req)
	if err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if bound {
		if err := h.till.SetSelection(req.Quantities, req.Customer.ToEntity()); err != nil {
			response.Error(c, err)
			return
		}
	}

	response.Created(c, "Bill generated", h.till.Generate())
}

// GetBill returns the last generated bill.
func (h *TillHandler) GetBill(c *gin.Context) {
	bill, err := h.till.CurrentBill()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved successfully", bill)
}

// GetText returns the plain-text receipt.
func (h *TillHandler) GetText(c *gin.Context) {
	text, err := h.till.RenderText()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Text(c, text)
}

// SaveText writes the text receipt into the bills directory.
func (h *TillHandler) SaveText(c *gin.Context) {
	path, err := h.till.SaveText()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bill saved", gin.H{"path": path})
}

// GetPDF downloads the PDF receipt.
func (h *TillHandler) GetPDF(c *gin.Context) {
	att, err := h.till.RenderPDF()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, att.Name, att.ContentType, att.Data)
}

// SavePDF writes the PDF receipt into the bills directory.
func (h *TillHandler) SavePDF(c *gin.Context) {
	var req request.SaveFileRequest
	if _, err := bindOptionalJSON(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	path, err := h.till.SavePDF(req.Path)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "PDF saved", gin.H{"path": path})
}

// GetPayment returns the payment intent for the bill.
func (h *TillHandler) GetPayment(c *gin.Context) {
	intent, err := h.till.PaymentIntent()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment intent generated", intent)
}

// GetQR downloads the payment QR code.
func (h *TillHandler) GetQR(c *gin.Context) {
	att, err := h.till.PaymentQR()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, att.Name, att.ContentType, att.Data)
}

// SaveQR writes the payment QR code into the bills directory.
func (h *TillHandler) SaveQR(c *gin.Context) {
	var req request.SaveFileRequest
	if _, err := bindOptionalJSON(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	path, err := h.till.SaveQR(req.Path)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "QR code saved", gin.H{"path": path})
}

// Reset clears the selection and the last bill.
func (h *TillHandler) Reset(c *gin.Context) {
	h.till.Reset()
	response.OK(c, "Till reset", nil)
}
