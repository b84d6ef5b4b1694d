// Package store implémente sur MongoDB les interfaces de persistance des
// services orders et users. Construit une fois dans main et injecté.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tonmoytt/All-it-shopping-server/internal/models"
)

// Noms des collections, hérités de la base existante.
const (
	ColUsers     = "users"
	ColPosts     = "Posts"
	ColConfirmed = "orderconfirm"
	ColFinalized = "orderfinalized"
	ColPayments  = "confirmPayment"
)

type Mongo struct {
	client    *mongo.Client
	users     *mongo.Collection
	posts     *mongo.Collection
	confirmed *mongo.Collection
	finalized *mongo.Collection
	payments  *mongo.Collection
}

func NewMongo(client *mongo.Client, db *mongo.Database) *Mongo {
	return &Mongo{
		client:    client,
		users:     db.Collection(ColUsers),
		posts:     db.Collection(ColPosts),
		confirmed: db.Collection(ColConfirmed),
		finalized: db.Collection(ColFinalized),
		payments:  db.Collection(ColPayments),
	}
}

// ---------- users ----------

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) InsertUser(ctx context.Context, user models.User) (string, error) {
	return insertOne(ctx, m.users, user)
}

// ---------- panier (Posts) ----------

func (m *Mongo) HasCartPost(ctx context.Context, userID, productID string) (bool, error) {
	return exists(ctx, m.posts, bson.M{"userId": userID, "productId": productID})
}

func (m *Mongo) InsertCartPost(ctx context.Context, post models.CartPost) (string, error) {
	return insertOne(ctx, m.posts, post)
}

func (m *Mongo) ListCartPosts(ctx context.Context, userID string) ([]models.CartPost, error) {
	posts := []models.CartPost{}
	err := findAll(ctx, m.posts, bson.M{"userId": userID}, "addedAt", &posts)
	return posts, err
}

func (m *Mongo) DeleteCartPost(ctx context.Context, postID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return 0, err
	}
	res, err := m.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ---------- commandes confirmées (orderconfirm) ----------

func (m *Mongo) HasConfirmedOrder(ctx context.Context, userID, productID string) (bool, error) {
	return exists(ctx, m.confirmed, bson.M{"userId": userID, "productId": productID})
}

func (m *Mongo) InsertConfirmedOrder(ctx context.Context, order models.ConfirmedOrder) (string, error) {
	return insertOne(ctx, m.confirmed, order)
}

func (m *Mongo) ListConfirmedOrders(ctx context.Context, userID string) ([]models.ConfirmedOrder, error) {
	orders := []models.ConfirmedOrder{}
	err := findAll(ctx, m.confirmed, bson.M{"userId": userID}, "confirmedAt", &orders)
	return orders, err
}

func (m *Mongo) DeleteConfirmedOrder(ctx context.Context, userID, productID string) (int64, error) {
	res, err := m.confirmed.DeleteOne(ctx, bson.M{"userId": userID, "productId": productID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ---------- commandes finalisées (orderfinalized) ----------

// FinalizeOrders insère le lot finalisé puis supprime les confirmations
// correspondantes dans une transaction : pas d'état dupliqué si l'une des
// deux étapes échoue.
func (m *Mongo) FinalizeOrders(ctx context.Context, userID string, batch []models.FinalizedOrder, productIDs []string) error {
	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		docs := make([]interface{}, len(batch))
		for i, order := range batch {
			docs[i] = order
		}
		if _, err := m.finalized.InsertMany(sc, docs); err != nil {
			return nil, err
		}

		filter := bson.M{"userId": userID, "productId": bson.M{"$in": productIDs}}
		if _, err := m.confirmed.DeleteMany(sc, filter); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (m *Mongo) ListFinalizedOrders(ctx context.Context, userID string) ([]models.FinalizedOrder, error) {
	orders := []models.FinalizedOrder{}
	err := findAll(ctx, m.finalized, bson.M{"userId": userID}, "finalizedAt", &orders)
	return orders, err
}

func (m *Mongo) UpdateFinalizedQuantity(ctx context.Context, userID, orderID string, quantity int) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return 0, err
	}
	res, err := m.finalized.UpdateOne(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *Mongo) DeleteFinalizedOrder(ctx context.Context, userID, orderID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return 0, err
	}
	res, err := m.finalized.DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *Mongo) DeleteAllFinalizedOrders(ctx context.Context, userID string) (int64, error) {
	res, err := m.finalized.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ---------- paiements (confirmPayment) ----------

func (m *Mongo) InsertPaymentRecord(ctx context.Context, record models.PaymentRecord) (string, error) {
	return insertOne(ctx, m.payments, record)
}

func (m *Mongo) ListPaymentRecords(ctx context.Context, userID string) ([]models.PaymentRecord, error) {
	records := []models.PaymentRecord{}
	err := findAll(ctx, m.payments, bson.M{"userId": userID}, "createdAt", &records)
	return records, err
}

// ---------- helpers ----------

func insertOne(ctx context.Context, col *mongo.Collection, doc interface{}) (string, error) {
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("identifiant inséré inattendu")
	}
	return oid.Hex(), nil
}

func exists(ctx context.Context, col *mongo.Collection, filter bson.M) (bool, error) {
	err := col.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func findAll(ctx context.Context, col *mongo.Collection, filter bson.M, sortKey string, out interface{}) error {
	opts := options.Find().SetSort(bson.D{{Key: sortKey, Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
