package main

import (
	"mahalo/config"
	"mahalo/di"
	"mahalo/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
