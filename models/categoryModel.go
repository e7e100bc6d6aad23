package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Category_id   string             `bson:"category_id" json:"category_id"`
	Name          *string            `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Description   *string            `bson:"description,omitempty" json:"description,omitempty"`
	Display_order int                `bson:"display_order" json:"display_order"`
	Active        *bool              `bson:"active" json:"active"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}
