package main

import (
	"fmt"
	"log"

	"github.com/treechess/backend/internal/auth"
	"github.com/treechess/backend/internal/config"
	"github.com/treechess/backend/internal/httpapi"
	"github.com/treechess/backend/internal/store"
)

func main() {
	cfg := config.MustLoad()

	db, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	users := store.NewUserStore(db)
	games := store.NewGameStore(db)
	authSvc := auth.NewService(users, cfg.JWTSecret, cfg.JWTExpiry)

	e := httpapi.New(cfg, authSvc, games)

	log.Printf("starting server on :%d", cfg.Port)
	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
