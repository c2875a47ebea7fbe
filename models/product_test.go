package models

import (
	"encoding/json"
	"testing"
)

func TestProductInfo_Get(t *testing.T) {
	info := ProductInfo{"gender": " Men ", "FrameShape": "Round"}

	cases := map[string]string{
		"gender":     "Men",
		"frameShape": "Round",
		"color":      "",
	}
	for key, want := range cases {
		if got := info.Get(key); got != want {
			t.Errorf("%s: expected %q, got %q", key, want, got)
		}
	}

	var empty ProductInfo
	if empty.Get("gender") != "" {
		t.Error("nil ProductInfo should return empty values")
	}
}

func TestProductInfo_ScanAndValue(t *testing.T) {
	var info ProductInfo
	if err := info.Scan([]byte(`{"color":"Blue","pack":6,"sizes":[1,2]}`)); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if info["color"] != "Blue" || info["pack"] != "6" || len(info) != 2 {
		t.Errorf("unexpected scan result %v", info)
	}

	if err := info.Scan(42); err == nil {
		t.Error("expected error for unsupported scan type")
	}
	if err := info.Scan(nil); err != nil || info == nil || len(info) != 0 {
		t.Errorf("nil scan should yield an empty map, got %v (%v)", info, err)
	}

	var nilInfo ProductInfo
	value, err := nilInfo.Value()
	if err != nil || string(value.([]byte)) != "{}" {
		t.Errorf("nil value should encode as {}, got %v (%v)", value, err)
	}
}

func TestProduct_EffectivePrice(t *testing.T) {
	zero, final := 0.0, 750.0
	cases := []struct {
		name string
		p    Product
		want float64
	}{
		{"price only", Product{Price: 1000}, 1000},
		{"final price", Product{Price: 1000, FinalPrice: &final}, 750},
		{"zero final price", Product{Price: 1000, FinalPrice: &zero}, 1000},
		{"missing price", Product{}, 0},
	}
	for _, tc := range cases {
		if got := tc.p.EffectivePrice(); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestProduct_JSONShape(t *testing.T) {
	data, err := json.Marshal(Product{ID: "p1", Name: "Aviator", Category: "Sunglasses", Price: 2500})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["_id"] != "p1" {
		t.Errorf("expected _id field, got %s", data)
	}
	if _, ok := decoded["finalPrice"]; ok {
		t.Errorf("finalPrice should be omitted when unset, got %s", data)
	}
}
