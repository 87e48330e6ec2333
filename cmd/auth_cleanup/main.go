package main

import (
	"context"
	"log"
	"os"
	"time"

	"apiaryadmin/internal/database"
	"apiaryadmin/internal/repository"
)

// retainRevoked keeps revoked sessions around long enough for audits
// before they are purged.
const retainRevoked = 30 * 24 * time.Hour

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessions := repository.NewSessionRepository(db)
	ctx := context.Background()

	expired, err := sessions.DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("cleanup expired sessions failed: %v", err)
	}

	revoked, err := sessions.DeleteRevokedBefore(ctx, time.Now().Add(-retainRevoked))
	if err != nil {
		log.Fatalf("cleanup revoked sessions failed: %v", err)
	}

	log.Printf("auth cleanup completed: expired=%d revoked=%d", expired, revoked)
}
