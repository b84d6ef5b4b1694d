package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tonmoytt/All-it-shopping-server/internal/handlers/payement"
	"github.com/tonmoytt/All-it-shopping-server/internal/handlers/user"
	"github.com/tonmoytt/All-it-shopping-server/internal/middleware"
	"github.com/tonmoytt/All-it-shopping-server/internal/orders"
	"github.com/tonmoytt/All-it-shopping-server/internal/users"
)

func RegisterRoutes(r *gin.Engine, userSvc *users.Service, orderSvc *orders.Service) {
	// CORS avec credentials : le token de session voyage dans un cookie
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173",
			"https://all-it-shop-clint.vercel.app",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	auth := user.NewAuthHandler(userSvc)
	cart := user.NewCartHandler(orderSvc)
	order := user.NewOrderHandler(orderSvc)
	checkout := payement.NewCheckoutHandler(orderSvc)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World! from it-server final")
	})

	// Routes publiques
	r.POST("/signup", middleware.SignupRateLimit(), auth.Signup)
	r.POST("/jwt", middleware.TokenRateLimit(), auth.IssueToken)
	r.POST("/logout", auth.Logout)

	// Routes protégées : identité dérivée du cookie de session
	authed := r.Group("", middleware.AuthRequired())

	// Panier
	authed.POST("/posts/:userId", cart.AddPost)
	authed.GET("/posts/:userId", cart.GetPosts)
	authed.DELETE("/posts/:postId", cart.DeletePost)

	// Commandes confirmées
	authed.POST("/confirmorder", order.ConfirmOrder)
	authed.GET("/confirmorder", order.GetConfirmedOrders)
	authed.DELETE("/confirmorder/:productId", order.CancelOrder)
	authed.POST("/confirmorder/finalize", order.FinalizeOrders)

	// Commandes finalisées
	authed.GET("/finalizedorders/:userId", order.GetFinalizedOrders)
	authed.PUT("/finalizedorders/:userId/:orderId", order.UpdateFinalizedQuantity)
	authed.DELETE("/finalizedorders/:userId/:orderId", order.DeleteFinalizedOrder)
	authed.DELETE("/finalizedorders/:userId", order.DeleteAllFinalizedOrders)

	// Paiement
	authed.POST("/checkout/finalize/:userId", checkout.FinalizeCheckout)
	authed.GET("/checkout/finalize/:userId", checkout.GetPayments)
}
