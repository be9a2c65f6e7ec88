package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/adcs-example/internal/config"   // Internal config loader
	"github.com/iliyamo/adcs-example/internal/database" // Connection pool setup
	"github.com/iliyamo/adcs-example/internal/handler"  // HTTP handlers
	"github.com/iliyamo/adcs-example/internal/router"   // Internal router setup
)

func main() {
	config.LoadDotEnv() // load the .env file if it exists

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	e := echo.New()
	router.RegisterRoutes(e, &handler.DBHandler{DB: db})

	addr := cfg.SocketAddr.String()
	log.Printf("listening on %s", addr)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
