package main

import (
	"context"
	"log"
	"os"
	"time"

	"reeves-booking/config"
	httpapi "reeves-booking/internal/api/http"
	"reeves-booking/internal/service"
	"reeves-booking/internal/storage"
)

const ordersTopic = "orders"

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	documents := storage.NewDocumentStore(db)
	if err := documents.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	redisStore := storage.NewRedisStore(rdb)

	writer := config.NewKafkaWriter(ordersTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	identity := service.NewIdentity(documents, redisStore)
	seedAdmin(documents)

	catalog := service.NewCatalog(documents)
	bookings := service.NewBookings(documents)
	analytics := service.NewAnalytics(redisStore, documents)
	checkout := service.NewCheckout(documents, identity, redisStore, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go checkout.StartSweeper(ctx, 5*time.Minute)

	reader := config.NewKafkaReader(ordersTopic, "reeves-analytics")
	defer reader.Close()
	consumer := service.NewConsumer(reader, redisStore)
	go consumer.Start(ctx)

	qr := service.UPIQRGenerator{
		PayeeVPA:  config.Env("UPI_VPA", "9849834102@ybl"),
		PayeeName: config.Env("UPI_PAYEE", "Reeves Restaurant"),
	}

	handler := httpapi.NewHandler(catalog, identity, checkout, bookings, analytics, redisStore, qr)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Env("PORT", "8080"), router)
}

// seedAdmin provisions the privilege record server-side. Privilege is
// never granted from the client path.
func seedAdmin(documents *storage.DocumentStore) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		return
	}
	err := documents.Create(context.Background(), service.CollectionAdmins, email, map[string]interface{}{
		"email":      email,
		"created_at": time.Now(),
	})
	if err != nil && err != storage.ErrDuplicateID {
		log.Printf("WARNING: failed to seed admin record: %v", err)
	}
}
