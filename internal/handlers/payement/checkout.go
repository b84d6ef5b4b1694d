package payement

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonmoytt/All-it-shopping-server/internal/models"
	"github.com/tonmoytt/All-it-shopping-server/internal/orders"
	"github.com/tonmoytt/All-it-shopping-server/internal/utils"
)

type CheckoutHandler struct {
	orders *orders.Service
}

func NewCheckoutHandler(svc *orders.Service) *CheckoutHandler {
	return &CheckoutHandler{orders: svc}
}

//
// 💳 POST /checkout/finalize/:userId
//
func (h *CheckoutHandler) FinalizeCheckout(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	var input struct {
		Orders  []models.OrderItem `json:"orders"`
		Billing models.Billing     `json:"billing"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orders et billing requis"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record, err := h.orders.RecordPayment(ctx, userID, input.Orders, input.Billing)
	switch {
	case errors.Is(err, orders.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "orders et billing requis"})
		return
	case err != nil:
		log.Println("❌ Erreur enregistrement paiement:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de l'enregistrement du paiement"})
		return
	}

	log.Printf("💳 Paiement en attente enregistré : %s (%.2f€) pour user %s",
		record.Reference, record.TotalAmount, userID)

	if record.Billing.Email != "" {
		go func(rec models.PaymentRecord) {
			if err := utils.SendPaymentPendingEmail(rec.Billing.Email, rec); err != nil {
				log.Println("❌ Erreur envoi e-mail de confirmation:", err)
			}
		}(record)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"insertedId":  record.ID.Hex(),
		"reference":   record.Reference,
		"totalAmount": record.TotalAmount,
	})
}

//
// 📋 GET /checkout/finalize/:userId
//
func (h *CheckoutHandler) GetPayments(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	payments, err := h.orders.ListPayments(ctx, userID)
	if err != nil {
		log.Println("❌ Erreur lecture paiements:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la lecture des paiements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"payments": payments,
	})
}
