package openaihttp

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterGinRoutes(r gin.IRouter, cfg Config) error {
	if r == nil {
		return fmt.Errorf("router is nil")
	}
	h, err := newHandler(cfg)
	if err != nil {
		return err
	}

	basePath := normalizeBasePath(cfg.BasePath)
	r.GET(joinPath(basePath, "/models"), h.handleModels)
	r.POST(joinPath(basePath, "/chat/completions"), h.handleChatCompletions)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return nil
}
