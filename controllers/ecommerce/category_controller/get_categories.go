package category_controller

import (
	"net/http"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/controllers/ecommerce/product_controller"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get every catalog category with its filterable facets and product count
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.StorefrontCategoriesResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /categories [get]
func GetCategories(c *gin.Context) {
	svc := services.GetCatalogService()

	ctx, cancel := config.WithRequestTimeout(c.Request.Context(), svc.QueryTimeout())
	defer cancel()

	categories, err := svc.Categories(ctx)
	if err != nil {
		product_controller.RespondStoreError(c, err, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
