package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromotionDateLayout is the day-granularity format promotion bounds are
// stored in. Both bounds are inclusive.
const PromotionDateLayout = "2006-01-02"

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Product_id      string             `bson:"product_id" json:"product_id"`
	Category_id     *string            `bson:"category_id" json:"category_id" validate:"required"`
	Name            *string            `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Description     *string            `bson:"description,omitempty" json:"description,omitempty"`
	Price           *float64           `bson:"price" json:"price" validate:"required,gt=0"`
	Image_url       *string            `bson:"image_url,omitempty" json:"image_url,omitempty" validate:"omitempty,url"`
	Is_promotion    bool               `bson:"is_promotion" json:"is_promotion"`
	Promotion_price *float64           `bson:"promotion_price,omitempty" json:"promotion_price,omitempty" validate:"omitempty,gt=0"`
	Promotion_start *string            `bson:"promotion_start,omitempty" json:"promotion_start,omitempty"`
	Promotion_end   *string            `bson:"promotion_end,omitempty" json:"promotion_end,omitempty"`
	Active          *bool              `bson:"active" json:"active"`
	Created_at      time.Time          `bson:"created_at" json:"created_at"`
	Updated_at      time.Time          `bson:"updated_at" json:"updated_at"`
}
