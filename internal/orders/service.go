package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tonmoytt/All-it-shopping-server/internal/models"
)

// Store : opérations document nécessaires au cycle de vie des commandes.
// Implémenté par internal/store sur MongoDB, et par un faux store en tests.
type Store interface {
	HasCartPost(ctx context.Context, userID, productID string) (bool, error)
	InsertCartPost(ctx context.Context, post models.CartPost) (string, error)
	ListCartPosts(ctx context.Context, userID string) ([]models.CartPost, error)
	DeleteCartPost(ctx context.Context, postID string) (int64, error)

	HasConfirmedOrder(ctx context.Context, userID, productID string) (bool, error)
	InsertConfirmedOrder(ctx context.Context, order models.ConfirmedOrder) (string, error)
	ListConfirmedOrders(ctx context.Context, userID string) ([]models.ConfirmedOrder, error)
	DeleteConfirmedOrder(ctx context.Context, userID, productID string) (int64, error)

	// FinalizeOrders insère le lot finalisé puis supprime les commandes
	// confirmées correspondantes, dans une même transaction.
	FinalizeOrders(ctx context.Context, userID string, batch []models.FinalizedOrder, productIDs []string) error
	ListFinalizedOrders(ctx context.Context, userID string) ([]models.FinalizedOrder, error)
	UpdateFinalizedQuantity(ctx context.Context, userID, orderID string, quantity int) (int64, error)
	DeleteFinalizedOrder(ctx context.Context, userID, orderID string) (int64, error)
	DeleteAllFinalizedOrders(ctx context.Context, userID string) (int64, error)

	InsertPaymentRecord(ctx context.Context, record models.PaymentRecord) (string, error)
	ListPaymentRecords(ctx context.Context, userID string) ([]models.PaymentRecord, error)
}

// Service fait respecter les transitions panier → confirmé → finalisé → payé
// et les règles d'unicité (userId, productId). Il fait confiance au userId
// qu'on lui donne : l'identité est vérifiée en amont par le middleware JWT.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddToCart ajoute un post au panier. Conflit si la paire
// (userId, productId) existe déjà dans la collection Posts.
func (s *Service) AddToCart(ctx context.Context, userID string, post models.CartPost) (string, error) {
	if userID == "" || post.ProductID == "" {
		return "", ErrInvalid
	}
	if post.UserID != userID {
		return "", ErrIdentityMismatch
	}

	exists, err := s.store.HasCartPost(ctx, userID, post.ProductID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrConflict
	}

	post.AddedAt = time.Now()
	return s.store.InsertCartPost(ctx, post)
}

func (s *Service) ListPosts(ctx context.Context, userID string) ([]models.CartPost, error) {
	return s.store.ListCartPosts(ctx, userID)
}

// RemovePost supprime un post par son identifiant propre.
func (s *Service) RemovePost(ctx context.Context, postID string) error {
	if _, err := primitive.ObjectIDFromHex(postID); err != nil {
		return ErrInvalid
	}

	deleted, err := s.store.DeleteCartPost(ctx, postID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// ConfirmOrder enregistre l'intention d'achat avec horodatage serveur.
// Conflit si la paire (userId, productId) est déjà confirmée.
func (s *Service) ConfirmOrder(ctx context.Context, userID, productID string, quantity int) (string, error) {
	if userID == "" || productID == "" || quantity <= 0 {
		return "", ErrInvalid
	}

	exists, err := s.store.HasConfirmedOrder(ctx, userID, productID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrConflict
	}

	return s.store.InsertConfirmedOrder(ctx, models.ConfirmedOrder{
		UserID:      userID,
		ProductID:   productID,
		Quantity:    quantity,
		ConfirmedAt: time.Now(),
	})
}

func (s *Service) ListConfirmed(ctx context.Context, userID string) ([]models.ConfirmedOrder, error) {
	return s.store.ListConfirmedOrders(ctx, userID)
}

// CancelOrder ramène la paire (userId, productId) à l'état sans commande.
func (s *Service) CancelOrder(ctx context.Context, userID, productID string) error {
	if userID == "" || productID == "" {
		return ErrInvalid
	}

	deleted, err := s.store.DeleteConfirmedOrder(ctx, userID, productID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// FinalizeOrders convertit un lot de commandes confirmées en commandes
// finalisées : insertion du lot avec snapshot produit, puis suppression des
// confirmations correspondantes. Les deux étapes sont transactionnelles
// côté store — un échec n'en laisse aucune des deux à moitié faite.
func (s *Service) FinalizeOrders(ctx context.Context, userID string, items []models.OrderItem) error {
	if userID == "" || len(items) == 0 {
		return ErrInvalid
	}

	now := time.Now()
	batch := make([]models.FinalizedOrder, 0, len(items))
	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return ErrInvalid
		}
		batch = append(batch, models.FinalizedOrder{
			UserID:      userID,
			ProductID:   item.ProductID,
			Name:        item.Name,
			Description: item.Description,
			Image:       item.Image,
			Price:       item.Price,
			Quantity:    item.Quantity,
			FinalizedAt: now,
		})
		productIDs = append(productIDs, item.ProductID)
	}

	return s.store.FinalizeOrders(ctx, userID, batch, productIDs)
}

func (s *Service) ListFinalized(ctx context.Context, userID string) ([]models.FinalizedOrder, error) {
	return s.store.ListFinalizedOrders(ctx, userID)
}

// UpdateFinalizedQuantity écrase la quantité d'une commande finalisée.
// NotFound si la commande n'existe pas pour cet utilisateur.
func (s *Service) UpdateFinalizedQuantity(ctx context.Context, userID, orderID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalid
	}
	if _, err := primitive.ObjectIDFromHex(orderID); err != nil {
		return ErrInvalid
	}

	matched, err := s.store.UpdateFinalizedQuantity(ctx, userID, orderID, quantity)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) DeleteFinalized(ctx context.Context, userID, orderID string) error {
	if _, err := primitive.ObjectIDFromHex(orderID); err != nil {
		return ErrInvalid
	}

	deleted, err := s.store.DeleteFinalizedOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllFinalized vide les commandes finalisées d'un utilisateur.
// Succès même quand il n'y en avait aucune.
func (s *Service) DeleteAllFinalized(ctx context.Context, userID string) error {
	_, err := s.store.DeleteAllFinalizedOrders(ctx, userID)
	return err
}

// RecordPayment enregistre le lot + facturation avec le statut "pending".
// Le montant total est recalculé côté serveur : Σ prix × quantité.
func (s *Service) RecordPayment(ctx context.Context, userID string, items []models.OrderItem, billing models.Billing) (models.PaymentRecord, error) {
	if userID == "" || len(items) == 0 || billing.Name == "" || billing.Address == "" {
		return models.PaymentRecord{}, ErrInvalid
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	record := models.PaymentRecord{
		UserID:      userID,
		Reference:   uuid.NewString(),
		Orders:      items,
		Billing:     billing,
		Status:      models.PaymentStatusPending,
		TotalAmount: total,
		CreatedAt:   time.Now(),
	}

	id, err := s.store.InsertPaymentRecord(ctx, record)
	if err != nil {
		return models.PaymentRecord{}, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		record.ID = oid
	}
	return record, nil
}

func (s *Service) ListPayments(ctx context.Context, userID string) ([]models.PaymentRecord, error) {
	return s.store.ListPaymentRecords(ctx, userID)
}
