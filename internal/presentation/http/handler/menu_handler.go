package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/drip-billing/internal/domain/entity"
	"github.com/sangkips/drip-billing/internal/presentation/http/dto/response"
)

// MenuHandler serves the static café data: menu and merchant identity.
type MenuHandler struct {
	menu     *entity.Menu
	merchant entity.Merchant
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menu *entity.Menu, merchant entity.Merchant) *MenuHandler {
	return &MenuHandler{menu: menu, merchant: merchant}
}

// List returns the menu items in bill order.
func (h *MenuHandler) List(c *gin.Context) {
	response.OK(c, "Menu retrieved successfully", h.menu.Items())
}

// Merchant returns the café identity printed on receipts.
func (h *MenuHandler) Merchant(c *gin.Context) {
	response.OK(c, "Merchant retrieved successfully", h.merchant)
}
