package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"petcare/internal/platform/logger"
	"petcare/internal/router"
)

func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// DB_DSN opcional: sin Postgres corre in-memory (modo dev)
	r := router.NewRouter(router.Options{Log: logger.NewFromEnv()})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("starting animal store on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
