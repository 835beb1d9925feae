package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/db"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
	"github.com/Solace-Health-LLC/beacon/internal/push"
	"github.com/Solace-Health-LLC/beacon/internal/redis"
)

func main() {
	// .env is optional; container deployments inject real env vars
	_ = godotenv.Load()

	env := LoadEnvironment()

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)

	store := db.NewStore()
	storageSystem := InitStorage(env)

	// the hub owns the in-memory alert store; both live and die with the
	// process
	hubOpts := []hub.Option{}
	if env.MQTTBrokerURL != "" {
		publisher, err := push.NewMQTTPublisher(env.MQTTBrokerURL, "beacon-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt init failed")
		}
		defer publisher.Close()
		hubOpts = append(hubOpts, hub.WithMirror(publisher))
	}
	notificationHub := hub.NewHub(hub.NewAlertStore(), hubOpts...)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	RegisterRoutes(r, env, store, storageSystem, notificationHub)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
