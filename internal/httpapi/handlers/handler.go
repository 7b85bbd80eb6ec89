package handlers

import (
	"github.com/suphakit/gpu-advisor/internal/bot"
	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/chatlog"
	"github.com/suphakit/gpu-advisor/internal/config"
)

type Handler struct {
	Cfg           config.Config
	Bot           *bot.Service
	Catalog       *catalog.Repo
	Interactions  *chatlog.Repo
	ChannelSecret string
}

func NewHandler(cfg config.Config, botSvc *bot.Service, cat *catalog.Repo, interactions *chatlog.Repo) *Handler {
	return &Handler{
		Cfg:           cfg,
		Bot:           botSvc,
		Catalog:       cat,
		Interactions:  interactions,
		ChannelSecret: cfg.LineChannelSecret,
	}
}
