package main

import (
	"github.com/gin-gonic/gin"
	"github.com/hirewise/sitecms/internal/config"
	"github.com/hirewise/sitecms/internal/db"
	"github.com/hirewise/sitecms/internal/handler"
	"github.com/hirewise/sitecms/internal/router"
	"github.com/hirewise/sitecms/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env)

	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	api := handler.NewAPI(db.DB, log)
	r := router.SetupRouter(api)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting sitecms server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
