package catalog

import (
	"testing"
)

func TestPaginate_ContactLensesTwoPages(t *testing.T) {
	catalog := contactLenses(25, 0, 0)

	first := Paginate(catalog, 1, 18)
	if len(first.Items) != 18 || first.TotalPages != 2 || first.TotalProducts != 25 {
		t.Fatalf("page 1: unexpected result %d items, %d pages", len(first.Items), first.TotalPages)
	}

	second := Paginate(catalog, 2, 18)
	if len(second.Items) != 7 || second.CurrentPage != 2 {
		t.Fatalf("page 2: expected 7 items, got %d", len(second.Items))
	}
	if second.Items[0].ID != "cl-18" {
		t.Errorf("page 2 should start at cl-18, got %s", second.Items[0].ID)
	}
}

func TestPaginate_PastTheEnd(t *testing.T) {
	catalog := contactLenses(30, 0, 0)

	res := Paginate(catalog, 99, 18)
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %v", res.Items)
	}
	if res.CurrentPage != 2 || res.TotalPages != 2 {
		t.Errorf("expected page clamped to 2 of 2, got %d of %d", res.CurrentPage, res.TotalPages)
	}
}

func TestPaginate_NoProducts(t *testing.T) {
	res := Paginate(nil, 1, 18)
	if res.TotalPages != 0 || res.TotalProducts != 0 || res.CurrentPage != 1 {
		t.Errorf("unexpected empty result: %+v", res)
	}
	if res.Items == nil {
		t.Error("items should be an empty slice")
	}
}

func TestPaginate_PageSizesInvariant(t *testing.T) {
	for total := 0; total <= 40; total++ {
		catalog := contactLenses(total, 0, 0)
		for _, limit := range []int{1, 4, 7, 18} {
			first := Paginate(catalog, 1, limit)
			wantPages := (total + limit - 1) / limit
			if first.TotalPages != wantPages {
				t.Fatalf("total=%d limit=%d: expected %d pages, got %d", total, limit, wantPages, first.TotalPages)
			}

			seen := 0
			for page := 1; page <= wantPages; page++ {
				res := Paginate(catalog, page, limit)
				want := limit
				if page == wantPages && total%limit != 0 {
					want = total % limit
				}
				if len(res.Items) != want {
					t.Fatalf("total=%d limit=%d page=%d: expected %d items, got %d", total, limit, page, want, len(res.Items))
				}
				seen += len(res.Items)
			}
			if seen != total {
				t.Fatalf("total=%d limit=%d: pages covered %d products", total, limit, seen)
			}
		}
	}
}

func TestPaginate_DefaultsAndPagination(t *testing.T) {
	res := Paginate(contactLenses(3, 0, 0), 0, 0)
	if res.CurrentPage != 1 || res.ProductsPerPage != DefaultPageDefaults.Limit {
		t.Errorf("expected defaults, got %+v", res)
	}

	p := res.Pagination()
	if p.CurrentPage != 1 || p.TotalPages != 1 || p.TotalProducts != 3 || p.ProductsPerPage != 18 {
		t.Errorf("unexpected pagination: %+v", p)
	}
}
