package catalog

import (
	"slices"
	"testing"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

func TestBucketFor_Boundaries(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{0, "0-299"},
		{299, "0-299"},
		{299.99, "0-299"},
		{300, "300-1000"},
		{1000, "300-1000"},
		{1000.5, "1001-2000"},
		{1001, "1001-2000"},
		{2000, "1001-2000"},
		{2001, "2001-3000"},
		{3000, "2001-3000"},
		{4000, "3001-4000"},
		{4500, "4001-5000"},
		{5000, "4001-5000"},
		{5000.01, "5000+"},
		{6000, "5000+"},
		{10000, "5000+"},
	}

	for _, tc := range cases {
		b, ok := BucketFor(tc.price)
		if !ok {
			t.Fatalf("price %v: expected a bucket", tc.price)
		}
		if b.Label != tc.want {
			t.Errorf("price %v: expected %s, got %s", tc.price, tc.want, b.Label)
		}
	}

	if _, ok := BucketFor(-1); ok {
		t.Error("negative price should not fall in any bucket")
	}
}

func TestBuckets_EveryPriceInExactlyOneBucket(t *testing.T) {
	for price := 0.0; price <= 7000; price += 0.25 {
		n := 0
		for _, b := range PriceBuckets() {
			if b.Contains(price) {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("price %v falls in %d buckets", price, n)
		}
	}
}

func TestLookupBucket(t *testing.T) {
	cases := []struct {
		label string
		want  string
		ok    bool
	}{
		{"300-1000", "300-1000", true},
		{" 1001-2000 ", "1001-2000", true},
		{"5000+", "5000+", true},
		{"5000 ", "5000+", true},
		{"5000", "5000+", true},
		{"1000-2000", "", false},
		{"cheap", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			b, ok := LookupBucket(tc.label)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && b.Label != tc.want {
				t.Errorf("expected %s, got %s", tc.want, b.Label)
			}
		})
	}
}

func TestPriceBucketLabels_Order(t *testing.T) {
	want := []string{"0-299", "300-1000", "1001-2000", "2001-3000", "3001-4000", "4001-5000", "5000+"}
	if got := PriceBucketLabels(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPriceRange_OpenEndedBucket(t *testing.T) {
	catalog := []models.Product{
		product("a", "Eyeglasses", 4000, nil),
		product("b", "Eyeglasses", 5000, nil),
		product("c", "Eyeglasses", 6000, nil),
		product("d", "Eyeglasses", 10000, nil),
	}

	sel := selection("Eyeglasses", map[Dimension]string{DimPriceRange: "5000+"})
	got := ids(Filter(catalog, Compile(sel, "")))
	if !slices.Equal(got, []string{"c", "d"}) {
		t.Errorf("expected [c d], got %v", got)
	}
}
