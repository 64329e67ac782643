package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"fantasy-gp/internal/api/handlers"
	"fantasy-gp/internal/api/middleware"
	"fantasy-gp/internal/rules"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	rulesPath := os.Getenv("RULES_FILE")
	r, err := rules.Load(rulesPath)
	if err != nil {
		log.Fatalf("load rules: %v", err)
	}
	if rulesPath != "" {
		log.Printf("Loaded rules from %s", rulesPath)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	simHandler := handlers.NewSimulateHandler(r)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", simHandler.Run)
		v1.GET("/simulations/:id", simHandler.Get)
		v1.GET("/simulations/:id/standings", simHandler.Standings)
		v1.GET("/simulations/:id/prices", simHandler.Prices)
		v1.GET("/simulations/:id/trades", simHandler.Trades)
	}

	log.Printf("Listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
