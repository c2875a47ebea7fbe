package ecommerce_routes

import (
	store_category "github.com/digitalbuddiesspune/stylishtouches-sub000/controllers/ecommerce/category_controller"
	store_filter "github.com/digitalbuddiesspune/stylishtouches-sub000/controllers/ecommerce/filter_controller"
	store_product "github.com/digitalbuddiesspune/stylishtouches-sub000/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	products := router.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)  // List with filters
		products.GET("/facets", store_filter.GetProductFacets) // Facet counts
	}

	router.GET("/categories", store_category.GetCategories)
}
