package main

import (
	"fmt"
	"log"

	"opsboard/internal/codes"
	"opsboard/internal/config"
	"opsboard/internal/database"
	"opsboard/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN, cfg.AdminUsername, cfg.AdminPassword)

	if err := codes.Init(database.DB); err != nil {
		log.Fatalf("failed to init master codes: %v", err)
	}

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
