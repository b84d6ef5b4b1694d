package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/tonmoytt/All-it-shopping-server/internal/config"
	"github.com/tonmoytt/All-it-shopping-server/internal/database"
	"github.com/tonmoytt/All-it-shopping-server/internal/orders"
	"github.com/tonmoytt/All-it-shopping-server/internal/routes"
	"github.com/tonmoytt/All-it-shopping-server/internal/store"
	"github.com/tonmoytt/All-it-shopping-server/internal/users"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseDatabases()

	// Store construit une seule fois et injecté dans les services
	st := store.NewMongo(database.Mongo, database.ShopDB)
	userSvc := users.NewService(st)
	orderSvc := orders.NewService(st)

	r := gin.Default()
	routes.RegisterRoutes(r, userSvc, orderSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("🚀 Serveur All IT Shopping lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur démarrage serveur:", err)
	}
}
