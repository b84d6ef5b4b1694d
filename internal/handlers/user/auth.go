package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tonmoytt/All-it-shopping-server/internal/users"
	"github.com/tonmoytt/All-it-shopping-server/internal/utils"
)

type AuthHandler struct {
	users *users.Service
}

func NewAuthHandler(svc *users.Service) *AuthHandler {
	return &AuthHandler{users: svc}
}

//
// 🟢 POST /signup
//
func (h *AuthHandler) Signup(c *gin.Context) {
	var input users.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := h.users.Signup(ctx, input)
	switch {
	case errors.Is(err, users.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	case errors.Is(err, users.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	case err != nil:
		log.Println("❌ Erreur création utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Utilisateur créé avec succès",
		"userId":  userID,
	})
}

//
// 🔑 POST /jwt — émet le token de session dans un cookie HTTP-only
//
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email requis"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, users.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email requis"})
		return
	case errors.Is(err, users.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	case err != nil:
		log.Println("❌ Erreur recherche utilisateur:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création token"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		log.Println("❌ Erreur génération JWT:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création token"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(utils.TokenLifetime.Seconds()), "/", "", secureCookies(), true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "JWT posé dans le cookie",
	})
}

//
// 🚪 POST /logout — efface le cookie de session
//
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", "", -1, "/", "", secureCookies(), true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Déconnecté",
	})
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}
