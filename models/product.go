package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ProductInfo is the per-category attribute bag stored under product_info.
// Which keys are populated depends on the product's category.
type ProductInfo map[string]string

// Get returns the trimmed value for key, or "" when the key is missing.
// Keys written with different casing ("Gender", "gender") are accepted.
func (p ProductInfo) Get(key string) string {
	if p == nil {
		return ""
	}
	if v, ok := p[key]; ok {
		return strings.TrimSpace(v)
	}
	for k, v := range p {
		if strings.EqualFold(k, key) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ProductInfoFromAny flattens a decoded JSON/BSON document into a ProductInfo.
// Scalars are kept as strings; nested values are dropped.
func ProductInfoFromAny(raw map[string]interface{}) ProductInfo {
	info := make(ProductInfo, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			info[key] = v
		case bool, float64, float32, int, int32, int64:
			info[key] = fmt.Sprint(v)
		case json.Number:
			info[key] = v.String()
		}
	}
	return info
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID          string                      `json:"_id" gorm:"type:uuid;primaryKey"`
	Name        string                      `json:"name" gorm:"not null;index"`
	Category    string                      `json:"category" gorm:"not null;index:idx_products_category"`
	SubCategory string                      `json:"subCategory,omitempty" gorm:"column:sub_category"`
	Price       float64                     `json:"price" gorm:"type:numeric(12,2);not null;default:0"`
	FinalPrice  *float64                    `json:"finalPrice,omitempty" gorm:"column:final_price;type:numeric(12,2)"`
	Discount    float64                     `json:"discount,omitempty" gorm:"type:numeric(5,2);default:0"`
	Images      datatypes.JSONSlice[string] `json:"images,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
	ProductInfo ProductInfo                 `json:"product_info,omitempty" gorm:"column:product_info;type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time                   `json:"createdAt" gorm:"column:created_at;autoCreateTime;index:idx_products_created,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// EffectivePrice is finalPrice when set and positive, otherwise price.
func (p Product) EffectivePrice() float64 {
	if p.FinalPrice != nil && *p.FinalPrice > 0 {
		return *p.FinalPrice
	}
	return p.Price
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

// ProductInfo methods
func (p *ProductInfo) Scan(value interface{}) error {
	if value == nil {
		*p = make(ProductInfo)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan ProductInfo")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return err
	}
	*p = ProductInfoFromAny(raw)
	return nil
}

func (p *ProductInfo) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}
	*p = ProductInfoFromAny(raw)
	return nil
}

func (p ProductInfo) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(map[string]string(p))
}
