package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suphakit/gpu-advisor/internal/bot"
	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/chatlog"
	"github.com/suphakit/gpu-advisor/internal/common"
	"github.com/suphakit/gpu-advisor/internal/config"
	"github.com/suphakit/gpu-advisor/internal/httpapi/handlers"
	"github.com/suphakit/gpu-advisor/internal/httpapi/middleware"
)

func NewRouter(cfg config.Config, botSvc *bot.Service, cat *catalog.Repo, interactions *chatlog.Repo) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	h := handlers.NewHandler(cfg, botSvc, cat, interactions)

	r.GET("/ping", h.Ping)

	// LINE entry point
	r.POST("/webhook", h.Webhook)

	// ops surface; fence at the network layer, there is no auth model here
	r.GET("/products", h.ListProducts)
	r.POST("/products", h.UpsertProduct)
	r.GET("/interactions/:user_id", h.ListInteractions)

	return r
}
