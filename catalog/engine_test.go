package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

type fakeSource struct {
	products []models.Product
	err      error
	calls    []string
}

func (f *fakeSource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	f.calls = append(f.calls, category)
	if f.err != nil {
		return nil, f.err
	}
	if category == "" {
		return f.products, nil
	}
	var out []models.Product
	for _, p := range f.products {
		if NormalizeCategory(p.Category) == NormalizeCategory(category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func testCatalog() []models.Product {
	catalog := contactLenses(25, 5, 3)
	catalog = append(catalog,
		product("acc-1", "Accessories", 400, models.ProductInfo{"accessoryType": "Necklace"}),
		product("acc-2", "Accessories", 150, models.ProductInfo{"accessoryType": "Belts"}),
		product("odd-1", "Watches", 999, nil),
	)
	return catalog
}

func TestEngine_Products(t *testing.T) {
	src := &fakeSource{products: testCatalog()}
	engine := NewEngine(src)

	sel := selection("contact-lenses", map[Dimension]string{DimColor: "blue"})
	res, err := engine.Products(context.Background(), sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalProducts != 5 || len(res.Items) != 5 || res.TotalPages != 1 {
		t.Errorf("unexpected page: %+v", res.Pagination())
	}
	if len(src.calls) != 1 || src.calls[0] != "Contact Lenses" {
		t.Errorf("expected a single Contact Lenses snapshot, got %v", src.calls)
	}

	acc, err := engine.Products(context.Background(), selection("Accessories", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(acc.Items) != 2 || acc.Items[0].ID != "acc-2" {
		t.Errorf("accessories should put Belts first, got %v", ids(acc.Items))
	}
}

func TestEngine_UnknownCategorySkipsStore(t *testing.T) {
	src := &fakeSource{products: testCatalog()}
	engine := NewEngine(src)

	res, err := engine.Products(context.Background(), selection("Watches", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalProducts != 0 || len(res.Items) != 0 || res.CurrentPage != 1 {
		t.Errorf("expected empty page, got %+v", res)
	}

	facets, err := engine.Facets(context.Background(), selection("Watches", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(facets[DimPriceRange]) != len(PriceBucketLabels()) {
		t.Errorf("expected zeroed price buckets, got %v", facets)
	}

	if len(src.calls) != 0 {
		t.Errorf("store should not be queried, got %v", src.calls)
	}
}

func TestEngine_StoreError(t *testing.T) {
	cause := errors.New("connection refused")
	engine := NewEngine(&fakeSource{err: cause})

	_, err := engine.Products(context.Background(), selection("Eyeglasses", nil))
	if !IsStoreError(err) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("StoreError should unwrap to the cause")
	}
	if !errors.Is(err, &StoreError{}) {
		t.Error("errors.Is should detect StoreError")
	}
	if err.Error() != "catalog store: list products (category=Eyeglasses): connection refused" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if _, err := engine.Facets(context.Background(), selection("", nil)); !IsStoreError(err) {
		t.Errorf("facets: expected StoreError, got %v", err)
	}
	if _, err := engine.CategoryCounts(context.Background()); !IsStoreError(err) {
		t.Errorf("counts: expected StoreError, got %v", err)
	}
}

func TestEngine_Idempotent(t *testing.T) {
	engine := NewEngine(&fakeSource{products: testCatalog()})
	sel := selection("Contact Lenses", map[Dimension]string{DimPriceRange: "1001-2000"})
	sel.Sort = SortPriceDesc

	encode := func() []byte {
		res, err := engine.Products(context.Background(), sel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		facets, err := engine.Facets(context.Background(), sel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := json.Marshal(struct {
			Items  []models.Product
			Facets FacetResult
		}{res.Items, facets})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}

	first, second := encode(), encode()
	if string(first) != string(second) {
		t.Errorf("repeated query differs:\n%s\n%s", first, second)
	}
}

func TestEngine_CategoryCounts(t *testing.T) {
	engine := NewEngine(&fakeSource{products: testCatalog()})

	counts, err := engine.CategoryCounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts["Contact Lenses"] != 25 || counts["Accessories"] != 2 || counts["Eyeglasses"] != 0 {
		t.Errorf("unexpected counts %v", counts)
	}
	if _, ok := counts["Watches"]; ok {
		t.Error("categories outside the taxonomy should not be counted")
	}
	if len(counts) != len(Categories()) {
		t.Errorf("expected one entry per category, got %d", len(counts))
	}
}
