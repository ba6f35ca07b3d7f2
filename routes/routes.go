package routes

import (
	"github.com/gift-xipu/fitness-calculaor/config"
	"github.com/gift-xipu/fitness-calculaor/controllers"
	"github.com/gift-xipu/fitness-calculaor/middlewares"
	"github.com/gift-xipu/fitness-calculaor/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(cfg *config.Config, calc *services.CalculatorService, hub *services.RealtimeHub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middlewares.RequestIDMiddleware())
	if cfg.Metrics.Enabled {
		r.Use(middlewares.MetricsMiddleware())
	}

	r.GET("/healthz", controllers.Health)

	calcCtl := controllers.NewCalculatorController(calc)

	api := r.Group("/api/fitness")
	{
		api.POST("", calcCtl.Calculate)
		api.GET("/calculations", calcCtl.Calculations)
		if cfg.WebSocket.Enabled {
			rt := controllers.NewRealtimeController(hub, calcCtl, cfg.WebSocket.PingInterval)
			api.GET("/ws", rt.CalculateWS)
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	return r
}
