package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
)

// LoadProductsFile reads a JSON catalog export: either a bare array of
// products or an object with a "products" array. Records without a
// category are skipped.
func LoadProductsFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return DecodeProducts(data)
}

// DecodeProducts parses a JSON catalog export, see LoadProductsFile.
func DecodeProducts(data []byte) ([]models.Product, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []models.Product{}, nil
	}

	var products []models.Product
	if data[0] == '{' {
		var wrapped struct {
			Products []models.Product `json:"products"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode catalog file: %w", err)
		}
		products = wrapped.Products
	} else if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file: %w", err)
	}

	valid := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.TrimSpace(p.Category) == "" {
			log.Printf("⚠️ skipping product %q without category", p.Name)
			continue
		}
		valid = append(valid, p)
	}
	return valid, nil
}
