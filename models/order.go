package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusNotProcess OrderStatus = "Not Process"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"

	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusSuccess PaymentStatus = "Success"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// OrderProduct is a line item. Stock is the quantity purchased; Price is
// the unit price the buyer saw at checkout.
type OrderProduct struct {
	Product primitive.ObjectID `bson:"product" json:"product"`
	Stock   int                `bson:"stock" json:"stock"`
	Price   float64            `bson:"price" json:"price"`
}

type Payment struct {
	Status        PaymentStatus `bson:"status" json:"status"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Amount        float64       `bson:"amount" json:"amount"`
}

// Order line items are immutable after checkout; only Status is mutated
// afterwards.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Products  []OrderProduct     `bson:"products" json:"products"`
	Payment   Payment            `bson:"payment" json:"payment"`
	Buyer     primitive.ObjectID `bson:"buyer" json:"buyer"`
	Status    OrderStatus        `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
