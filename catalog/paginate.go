package catalog

import "github.com/digitalbuddiesspune/stylishtouches-sub000/models"

// PageResult is one page of an ordered product list.
type PageResult struct {
	Items           []models.Product
	CurrentPage     int
	TotalPages      int
	TotalProducts   int
	ProductsPerPage int
}

// Paginate slices products into the requested page. A page past the end
// yields no items and reports the last page (1 when there are no products).
func Paginate(products []models.Product, page, limit int) PageResult {
	if limit < 1 {
		limit = DefaultPageDefaults.Limit
	}
	if page < 1 {
		page = 1
	}

	total := len(products)
	totalPages := (total + limit - 1) / limit

	result := PageResult{
		Items:           []models.Product{},
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalProducts:   total,
		ProductsPerPage: limit,
	}
	if page > totalPages {
		result.CurrentPage = max(totalPages, 1)
		return result
	}

	start := (page - 1) * limit
	end := min(start+limit, total)
	result.Items = products[start:end:end]
	return result
}

// Pagination converts the page metadata into its response form.
func (r PageResult) Pagination() models.Pagination {
	return models.Pagination{
		CurrentPage:     r.CurrentPage,
		TotalPages:      r.TotalPages,
		TotalProducts:   r.TotalProducts,
		ProductsPerPage: r.ProductsPerPage,
	}
}
