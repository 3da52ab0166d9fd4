package server

import (
	"dog_video_factory/infrastructure/logger"
	"dog_video_factory/internal/core/usecases"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter constructs the gin engine with every route registered.
func NewRouter(uc usecases.ShortsUseCase, log logger.Logger, metrics *Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log.Zap()), MetricsMiddleware(metrics))

	h := &handlers{uc: uc, log: log, metrics: metrics}

	api := r.Group("/api")
	api.POST("/generate-video", h.generateVideo)
	api.POST("/upload-youtube", h.uploadYoutube)
	api.GET("/youtube/auth", h.youtubeAuth)
	api.GET("/youtube/callback", h.youtubeCallback)
	api.GET("/health", h.health)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	return r
}
