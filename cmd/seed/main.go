package main

import (
	"flag"

	"github.com/hirewise/sitecms/internal/config"
	"github.com/hirewise/sitecms/internal/db"
	"github.com/hirewise/sitecms/internal/seed"
	"github.com/hirewise/sitecms/internal/service"
	"github.com/hirewise/sitecms/pkg/logger"
)

// 站点内容初始化工具：将默认页面目录与数据库进行对账
func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DatabasePath, "path to the SQLite store")
	force := flag.Bool("force", false, "reconcile even when the store already contains pages")
	flag.Parse()

	log := logger.New(cfg.LogLevel, cfg.Env)

	if err := db.Init(*dbPath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	pages := service.NewPageService(db.DB)
	// Run 本身会记录每页结果与汇总
	if _, err := seed.Run(pages, seed.DefaultCatalog(), seed.Options{Force: *force}, log); err != nil {
		// zerolog Fatal 以非零状态码退出
		log.Fatal().Err(err).Msg("ingestion aborted")
	}
}
