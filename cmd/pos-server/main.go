package main

import (
	"log"
	"time"

	"pos-register/config"
	httpapi "pos-register/internal/api/http"
	"pos-register/internal/service"
	"pos-register/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb, 5*time.Minute)

	kafkaWriter := config.NewKafkaWriter("orders")
	defer kafkaWriter.Close()
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	qr := service.DefaultQRGenerator{BaseURL: config.BaseURL()}

	menu := service.NewMenuService(repo)
	auth := service.NewAuthService(repo)
	resolver := service.NewCustomerResolver(repo)
	payments := service.NewPaymentProcessor()
	committer := service.NewOrderCommitter(repo, publisher, qr)
	register := service.NewRegisterService(repo, resolver, payments, committer)
	reports := service.NewSalesAggregator(repo, cache)

	handler := httpapi.NewHandler(menu, auth, register, repo, reports)

	httpapi.StartServer(config.HTTPAddr(), httpapi.NewRouter(handler))
}
