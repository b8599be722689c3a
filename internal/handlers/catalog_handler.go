package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/queueworks/queue-booking-api/internal/catalog"
	"github.com/queueworks/queue-booking-api/internal/httpresp"
)

// CatalogHandler exposes the active variant's service list and booking
// options so the client never hardcodes them.
type CatalogHandler struct {
	variant *catalog.Variant
}

func NewCatalogHandler(variant *catalog.Variant) *CatalogHandler {
	return &CatalogHandler{variant: variant}
}

func (h *CatalogHandler) Services(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"variant":         h.variant.Name,
		"services":        h.variant.Services(),
		"time_slots":      h.variant.TimeSlots,
		"payment_methods": h.variant.PaymentMethods,
		"max_quantity":    h.variant.MaxQuantity,
	})
}
