package store

import (
	"time"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mongoProduct is the document shape written by the storefront admin.
type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	SubCategory string             `bson:"subCategory,omitempty"`
	Price       float64            `bson:"price"`
	FinalPrice  *float64           `bson:"finalPrice,omitempty"`
	Discount    float64            `bson:"discount,omitempty"`
	Images      []string           `bson:"images,omitempty"`
	ProductInfo bson.M             `bson:"product_info,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
}

func (d *mongoProduct) toDomain() models.Product {
	p := models.Product{
		Name:        d.Name,
		Category:    d.Category,
		SubCategory: d.SubCategory,
		Price:       d.Price,
		FinalPrice:  d.FinalPrice,
		Discount:    d.Discount,
		Images:      d.Images,
		ProductInfo: models.ProductInfoFromAny(d.ProductInfo),
		CreatedAt:   d.CreatedAt,
	}
	if !d.ID.IsZero() {
		p.ID = d.ID.Hex()
	}
	return p
}

func fromDomain(p models.Product) mongoProduct {
	id, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		id = primitive.NewObjectID()
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	info := bson.M{}
	for k, v := range p.ProductInfo {
		info[k] = v
	}

	return mongoProduct{
		ID:          id,
		Name:        p.Name,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Price:       p.Price,
		FinalPrice:  p.FinalPrice,
		Discount:    p.Discount,
		Images:      p.Images,
		ProductInfo: info,
		CreatedAt:   createdAt,
	}
}
