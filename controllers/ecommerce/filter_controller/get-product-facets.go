package filter_controller

import (
	"net/http"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/controllers/ecommerce/product_controller"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetProductFacets godoc
// @Summary Get facet counts for the current filters
// @Description For every facet of the category, counts products matching all other active filters, keyed by the uppercased value. Price buckets are always listed.
// @Tags store
// @Produce json
// @Param category query string false "Category name or slug"
// @Param priceRange query string false "Price bucket"
// @Param gender query string false "Gender"
// @Param color query string false "Lens colour"
// @Param subCategory query string false "Sub-category / type"
// @Param brand query string false "Brand"
// @Param frameShape query string false "Frame shape"
// @Param frameMaterial query string false "Frame material"
// @Param frameColor query string false "Frame colour"
// @Param disposability query string false "Disposability"
// @Success 200 {object} models.FacetsResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products/facets [get]
func GetProductFacets(c *gin.Context) {
	svc := services.GetCatalogService()
	sel := product_controller.ParseSelection(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context(), svc.QueryTimeout())
	defer cancel()

	facets, err := svc.Facets(ctx, sel)
	if err != nil {
		product_controller.RespondStoreError(c, err, "Failed to load product filters")
		return
	}

	c.JSON(http.StatusOK, facets)
}
