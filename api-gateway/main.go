package main

import (
	"net/http"
	"time"

	"autobus-caisse/api-gateway/internal/gateway"
	"autobus-caisse/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("8080")
	logger := config.NewLogger(cfg.Env)
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		RegisterSvcURL: cfg.RegisterSvcURL,
		TallySvcURL:    cfg.TallySvcURL,
		FrontendDir:    cfg.FrontendDir,
	}, &http.Client{Timeout: 10 * time.Second}, logger)

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(r)

	logger.Info("API Gateway starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("gateway stopped", zap.Error(err))
	}
}
