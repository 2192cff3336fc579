package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos-register/config"
	"pos-register/internal/storage"
	"pos-register/internal/worker"
)

func main() {
	config.LoadEnv()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "sales-worker")
	defer reader.Close()

	cache := storage.NewRedisCache(rdb, 5*time.Minute)
	consumer := worker.NewConsumer(reader, cache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("[sales-worker] shutting down...")
		cancel()
	}()

	consumer.Start(ctx)
}
