package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartPost est un produit ajouté au panier mais pas encore confirmé.
// La paire (userId, productId) est unique dans la collection Posts.
type CartPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	ProductID   string             `bson:"productId" json:"productId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	AddedAt     time.Time          `bson:"addedAt,omitempty" json:"addedAt,omitempty"`
}
