package product_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/catalog"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/services"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// ParseSelection reads category, facet filters, page, limit and sort from the
// query string. Bad values are normalised, never rejected.
func ParseSelection(c *gin.Context) catalog.Selection {
	return catalog.ParseSelection(c.Request.URL.Query(), services.GetCatalogService().PageDefaults())
}

// RespondStoreError maps a store failure onto the error envelope.
// Deadline overruns are reported as timeouts, everything else as 500.
func RespondStoreError(c *gin.Context, err error, message string) {
	log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)

	status := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	c.JSON(status, models.ErrorResponse(c, message))
}
