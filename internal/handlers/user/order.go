package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonmoytt/All-it-shopping-server/internal/models"
	"github.com/tonmoytt/All-it-shopping-server/internal/orders"
)

type OrderHandler struct {
	orders *orders.Service
}

func NewOrderHandler(svc *orders.Service) *OrderHandler {
	return &OrderHandler{orders: svc}
}

//
// ✅ POST /confirmorder
//
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		UserID    string `json:"userId"`
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, productId et quantity requis"})
		return
	}
	if input.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderID, err := h.orders.ConfirmOrder(ctx, userID, input.ProductID, input.Quantity)
	switch {
	case errors.Is(err, orders.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, productId et quantity requis"})
		return
	case errors.Is(err, orders.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Commande déjà confirmée"})
		return
	case err != nil:
		log.Println("❌ Erreur confirmation commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Commande confirmée",
		"orderId": orderID,
	})
}

//
// 📋 GET /confirmorder
//
func (h *OrderHandler) GetConfirmedOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := h.orders.ListConfirmed(ctx, userID)
	if err != nil {
		log.Println("❌ Erreur lecture commandes confirmées:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, list)
}

//
// ❌ DELETE /confirmorder/:productId?userId=
//
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	if q := c.Query("userId"); q != "" && q != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := h.orders.CancelOrder(ctx, userID, productID)
	switch {
	case errors.Is(err, orders.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId et productId requis"})
		return
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur annulation commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Commande annulée avec succès",
	})
}

//
// 📦 POST /confirmorder/finalize
//
func (h *OrderHandler) FinalizeOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		UserID string             `json:"userId"`
		Orders []models.OrderItem `json:"orders"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId et tableau orders requis"})
		return
	}
	if input.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := h.orders.FinalizeOrders(ctx, userID, input.Orders)
	switch {
	case errors.Is(err, orders.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId et tableau orders requis"})
		return
	case err != nil:
		log.Println("❌ Erreur finalisation commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Toutes les commandes confirmées ont été finalisées",
	})
}

//
// 📋 GET /finalizedorders/:userId
//
func (h *OrderHandler) GetFinalizedOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := h.orders.ListFinalized(ctx, userID)
	if err != nil {
		log.Println("❌ Erreur lecture commandes finalisées:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, list)
}

//
// ✏️ PUT /finalizedorders/:userId/:orderId
//
func (h *OrderHandler) UpdateFinalizedQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity requis"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := h.orders.UpdateFinalizedQuantity(ctx, userID, c.Param("orderId"), input.Quantity)
	switch {
	case errors.Is(err, orders.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId ou quantity invalide"})
		return
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur mise à jour quantité:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Quantité mise à jour avec succès",
	})
}

//
// ❌ DELETE /finalizedorders/:userId/:orderId
//
func (h *OrderHandler) DeleteFinalizedOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := h.orders.DeleteFinalized(ctx, userID, c.Param("orderId"))
	switch {
	case errors.Is(err, orders.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId invalide"})
		return
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur suppression commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Commande supprimée avec succès",
	})
}

//
// 🧹 DELETE /finalizedorders/:userId
//
func (h *OrderHandler) DeleteAllFinalizedOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.orders.DeleteAllFinalized(ctx, userID); err != nil {
		log.Println("❌ Erreur suppression commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Toutes les commandes ont été supprimées",
	})
}
