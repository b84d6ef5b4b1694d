package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Billing struct {
	Name       string `bson:"name" json:"name"`
	Email      string `bson:"email,omitempty" json:"email,omitempty"`
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// PaymentRecord : snapshot d'un lot finalisé + facturation, en attente du
// règlement réel. Collection confirmPayment, append-only.
type PaymentRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	Reference   string             `bson:"reference" json:"reference"`
	Orders      []OrderItem        `bson:"orders" json:"orders"`
	Billing     Billing            `bson:"billing" json:"billing"`
	Status      string             `bson:"status" json:"status"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

const PaymentStatusPending = "pending"
