//go:build wireinject
// +build wireinject

package main

import (
	"ttsserver/config"
	V1 "ttsserver/hander/v1"
	"ttsserver/pkg/gcloud"
	"ttsserver/pkg/log"
	"ttsserver/pkg/store"
	"ttsserver/serve"

	"github.com/google/wire"
)

type App struct {
	Service *serve.HttpServer
	config  *config.Config
	logger  *log.Logger
	v1      *V1.Handers
}

func InitializeApp() (*App, func(), error) {
	wire.Build(
		wire.Struct(new(App), "*"),
		wire.NewSet(
			serve.NewHttpServer,
			config.NewConfig,
			log.ProviderSet,
			gcloud.ProviderSet,
			store.ProviderSet,
			V1.ProviderSet,
		),
	)
	return &App{}, nil, nil
}
