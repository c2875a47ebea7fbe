package catalog

import (
	"fmt"
	"time"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

var baseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func product(id, category string, price float64, info models.ProductInfo) models.Product {
	return models.Product{
		ID:          id,
		Name:        "Product " + id,
		Category:    category,
		Price:       price,
		ProductInfo: info,
		CreatedAt:   baseTime,
	}
}

func priced(v float64) *float64 { return &v }

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func selection(category string, filters map[Dimension]string) Selection {
	if filters == nil {
		filters = map[Dimension]string{}
	}
	return Selection{Category: category, Filters: filters, Page: 1, Limit: 18, Sort: SortRelevance}
}

// contactLenses builds n lenses; every product whose index is below blue is BLUE,
// the next green are GREEN and the rest CLEAR.
func contactLenses(n, blue, green int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		color := "Clear"
		switch {
		case i < blue:
			color = "Blue"
		case i < blue+green:
			color = "Green"
		}
		products = append(products, product(
			fmt.Sprintf("cl-%02d", i),
			"Contact Lenses",
			float64(200+i*100),
			models.ProductInfo{"color": color, "brand": "Acuvue", "disposability": "Monthly"},
		))
	}
	return products
}
