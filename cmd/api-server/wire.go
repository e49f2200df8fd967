//go:build wireinject
// +build wireinject

package main

import (
	"Tube/config"
	"Tube/dao"
	"Tube/dao/cache"
	"Tube/handler"
	"Tube/pkg/client"
	"Tube/pkg/database"
	"Tube/pkg/oss"
	"Tube/pkg/server"
	"Tube/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		oss.NewOssClient,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Video), "*"),
		wire.Struct(new(handler.Comments), "*"),
		wire.Struct(new(handler.Notify), "*"),
		wire.Struct(new(handler.Engagement), "*"),
		wire.Struct(new(handler.Users), "*"),
		wire.Struct(new(handler.Relation), "*"),
		wire.Struct(new(handler.Report), "*"),
		wire.Struct(new(handler.Policy), "*"),
		wire.Struct(new(handler.Category), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
