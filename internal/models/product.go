package models

import "time"

// Product categories.
const (
	CategoryClothes     = "clothes"
	CategoryElectronics = "electronics"
	CategoryFurniture   = "furniture"
	CategoryToys        = "toys"
	CategoryBooks       = "books"
	CategorySports      = "sports"
	CategoryBeauty      = "beauty"
	CategoryGrocery     = "grocery"
	CategoryGames       = "games"
)

// Product represents a catalog entry owned by a seller.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty" validate:"omitempty,uuid"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description" bson:"description" validate:"required,max=500"`
	Price       float64   `json:"price" bson:"price" validate:"gte=0"`
	Category    string    `json:"category" bson:"category" validate:"required,oneof=clothes electronics furniture toys books sports beauty grocery games"`
	Images      []string  `json:"images" bson:"images" validate:"required,min=1"`
	Bestseller  bool      `json:"bestseller" bson:"bestseller"`
	SellerID    string    `json:"seller_id" bson:"sellerId" validate:"required"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
}

// ProductFilter narrows catalog queries. Zero values mean "no constraint".
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}
