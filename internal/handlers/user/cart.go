package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonmoytt/All-it-shopping-server/internal/cache"
	"github.com/tonmoytt/All-it-shopping-server/internal/models"
	"github.com/tonmoytt/All-it-shopping-server/internal/orders"
)

type CartHandler struct {
	orders *orders.Service
}

func NewCartHandler(svc *orders.Service) *CartHandler {
	return &CartHandler{orders: svc}
}

//
// 🟢 POST /posts/:userId
//
func (h *CartHandler) AddPost(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	var post models.CartPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	postID, err := h.orders.AddToCart(ctx, userID, post)
	switch {
	case errors.Is(err, orders.ErrIdentityMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le userId du post ne correspond pas"})
		return
	case errors.Is(err, orders.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId et productId requis"})
		return
	case errors.Is(err, orders.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Produit déjà dans le panier"})
		return
	case err != nil:
		log.Println("❌ Erreur ajout au panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	cache.InvalidateUserPosts(ctx, userID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"postId":  postID,
	})
}

//
// 📦 GET /posts/:userId
//
func (h *CartHandler) GetPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.Param("userId") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "userId non autorisé"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if posts, ok := cache.GetUserPosts(ctx, userID); ok {
		c.JSON(http.StatusOK, posts)
		return
	}

	posts, err := h.orders.ListPosts(ctx, userID)
	if err != nil {
		log.Println("❌ Erreur lecture panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	cache.SetUserPosts(ctx, userID, posts)
	c.JSON(http.StatusOK, posts)
}

//
// ❌ DELETE /posts/:postId
//
func (h *CartHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("postId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := h.orders.RemovePost(ctx, postID)
	switch {
	case errors.Is(err, orders.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de post invalide"})
		return
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur suppression post:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	cache.InvalidateUserPosts(ctx, userID)

	c.JSON(http.StatusOK, gin.H{"message": "Post supprimé avec succès"})
}
