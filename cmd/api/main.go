package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"prompt-hub/cmd/api/auth"
	"prompt-hub/cmd/api/router"
	"prompt-hub/config"
	"prompt-hub/db"
	_ "prompt-hub/docs" // swag will generate this package
	"prompt-hub/eventbus"
	"prompt-hub/ratelimit"
)

// @title           Prompt Hub API
// @version         1.0
// @description     Catalog and moderation API for community-submitted prompts and the site blog
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	config.InitApp()
	config.InitLogger()
	cfg := config.GetConfig()

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	var bus eventbus.Publisher = eventbus.NopPublisher{}
	if brokers := eventbus.GetBrokers(); brokers != "" {
		kafkaBus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			log.Fatal(err)
		}
		defer kafkaBus.Close()
		bus = kafkaBus
	} else {
		config.Log.Warn("KAFKA_BOOTSTRAP_SERVERS not set, moderation events disabled")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		defer rdb.Close()
	} else {
		config.Log.Warn("REDIS_ADDR not set, rate limiting falls back to in-process counters")
	}
	limiter := ratelimit.New(rdb, cfg.RateLimit)

	r := router.New(router.Deps{
		JWTManager: jwtManager,
		Bus:        bus,
		Limiter:    limiter,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
	})

	config.Log.Infof("api listening on :%s", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, corsHandler.Handler(r)); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
