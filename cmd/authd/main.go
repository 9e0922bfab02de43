package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	mem "petcare/internal/adapters/storage/memory"
	mongostore "petcare/internal/adapters/storage/mongo"
	"petcare/internal/domain/users"
	"petcare/internal/router"
)

func main() {
	addr := ":3000"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	var repo users.Repository

	// MONGO_URI opcional: sin Mongo corre in-memory (modo dev, nada persiste)
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "pet_care_db"
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, usersRepo, err := mongostore.Open(ctx, uri, dbName)
		cancel()
		if err != nil {
			zl.Fatal("mongo connect failed", zap.Error(err))
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		zl.Info("mongo connected", zap.String("db", dbName))
		repo = usersRepo
	} else {
		zl.Warn("MONGO_URI not set, using in-memory users store")
		repo = mem.NewUsersRepo()
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewAuthRouter(router.AuthOptions{Repo: repo, Log: zl}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	zl.Info("starting auth service", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zl.Fatal("server error", zap.Error(err))
	}
}
