package product_controller

import (
	"net/http"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve one page of a category's products filtered by single-select facets and sorted by the category's ordering then the sort mode.
// @Tags store
// @Produce json
// @Param category query string false "Category name or slug (empty = whole catalog)"
// @Param priceRange query string false "Price bucket" Enums(0-299, 300-1000, 1001-2000, 2001-3000, 3001-4000, 4001-5000, 5000+)
// @Param gender query string false "Gender (eyewear, bags)"
// @Param color query string false "Lens colour (contact lenses)"
// @Param subCategory query string false "Sub-category / type"
// @Param brand query string false "Brand"
// @Param frameShape query string false "Frame shape (eyewear)"
// @Param frameMaterial query string false "Frame material (eyewear)"
// @Param frameColor query string false "Frame colour (eyewear)"
// @Param disposability query string false "Disposability (contact lenses)"
// @Param sort query string false "Sort mode" Enums(relevance, newest, price-asc, price-desc) default(relevance)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(18)
// @Success 200 {object} models.StorefrontProductsResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func GetStorefrontProducts(c *gin.Context) {
	svc := services.GetCatalogService()
	sel := ParseSelection(c)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context(), svc.QueryTimeout())
	defer cancel()

	page, err := svc.Products(ctx, sel)
	if err != nil {
		RespondStoreError(c, err, "Failed to load products")
		return
	}

	c.JSON(http.StatusOK, models.StorefrontProductsResponse{
		Products:   page.Items,
		Pagination: page.Pagination(),
	})
}
