package main

import (
	"context"
	"net/http"

	"github.com/caarlos0/env/v11"

	"github.com/showpass/showpass/internal/logger"
	"github.com/showpass/showpass/internal/proto"
)

type protoConfig struct {
	Address string `env:"PROTOAPP_ADDRESS" envDefault:"localhost:8081"`
	DSN     string `env:"PROTOAPP_DB" envDefault:"items.db"`
}

func main() {
	log := logger.NewLogger("protoapp")

	var cfg protoConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	store, err := proto.NewItemStore(context.Background(), cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating item store")
	}
	defer store.Close()

	handler := proto.NewHandler(store, log)

	log.Info().Str("address", cfg.Address).Msg("launching protoapp")
	if err := http.ListenAndServe(cfg.Address, handler.Init()); err != nil {
		log.Fatal().Err(err).Msg("protoapp server failed")
	}
}
