package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Waiter struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Waiter_id  string             `bson:"waiter_id" json:"waiter_id"`
	Name       *string            `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Photo_url  *string            `bson:"photo_url,omitempty" json:"photo_url,omitempty" validate:"omitempty,url"`
	Phone      *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Active     *bool              `bson:"active" json:"active"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}
