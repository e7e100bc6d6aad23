package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. New orders always start as StatusPending; the admin panel
// advances them from there.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentDebit  = "debit"
	PaymentCredit = "credit"
	PaymentPix    = "pix"
	PaymentCash   = "cash"
)

// OrderItem is a line frozen at submission time: unit_price is the price
// resolved when the order was derived, not a live reference to the product.
type OrderItem struct {
	Product_id   string  `bson:"product_id" json:"product_id" validate:"required"`
	Product_name string  `bson:"product_name" json:"product_name" validate:"required"`
	Quantity     int     `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	Unit_price   float64 `bson:"unit_price" json:"unit_price" validate:"required,gt=0"`
	Total_price  float64 `bson:"total_price" json:"total_price" validate:"required,gt=0"`
}

type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Order_id       string             `bson:"order_id" json:"order_id"`
	Customer_name  *string            `bson:"customer_name" json:"customer_name" validate:"required,min=1"`
	Table_number   *string            `bson:"table_number" json:"table_number" validate:"required,min=1"`
	Waiter_id      *string            `bson:"waiter_id" json:"waiter_id" validate:"required"`
	Waiter_name    string             `bson:"waiter_name" json:"waiter_name"`
	Items          []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Payment_method *string            `bson:"payment_method" json:"payment_method" validate:"required,eq=debit|eq=credit|eq=pix|eq=cash"`
	Observation    *string            `bson:"observation,omitempty" json:"observation,omitempty"`
	Total_amount   float64            `bson:"total_amount" json:"total_amount" validate:"required,gt=0"`
	Status         string             `bson:"status" json:"status" validate:"required,eq=pending|eq=confirmed|eq=completed|eq=cancelled"`
	Created_at     time.Time          `bson:"created_at" json:"created_at"`
	Updated_at     time.Time          `bson:"updated_at" json:"updated_at"`
}
