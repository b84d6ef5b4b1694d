package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConfirmedOrder : intention d'achat d'une quantité d'un produit.
// La paire (userId, productId) est unique dans la collection orderconfirm.
type ConfirmedOrder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	ProductID   string             `bson:"productId" json:"productId"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	ConfirmedAt time.Time          `bson:"confirmedAt" json:"confirmedAt"`
}

// FinalizedOrder : commande confirmée convertie en lot, avec snapshot
// complet du produit. Seule la quantité reste modifiable ensuite.
type FinalizedOrder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	ProductID   string             `bson:"productId" json:"productId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	FinalizedAt time.Time          `bson:"finalizedAt" json:"finalizedAt"`
}

// OrderItem : élément d'un lot envoyé par le client (finalisation ou
// checkout), snapshot des champs produit côté appelant.
type OrderItem struct {
	ProductID   string  `bson:"productId" json:"productId"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
}
