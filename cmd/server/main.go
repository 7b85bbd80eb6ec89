package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/suphakit/gpu-advisor/internal/ai"
	"github.com/suphakit/gpu-advisor/internal/bot"
	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/chatlog"
	"github.com/suphakit/gpu-advisor/internal/config"
	"github.com/suphakit/gpu-advisor/internal/db"
	"github.com/suphakit/gpu-advisor/internal/httpapi"
	"github.com/suphakit/gpu-advisor/internal/line"
	"github.com/suphakit/gpu-advisor/internal/session"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)

	products := catalog.NewRepo(gdb)
	interactions := chatlog.NewRepo(gdb)
	recorder := chatlog.NewRecorder(interactions)

	// Session store: Redis when configured, in-process otherwise.
	var sessions session.Store
	if cfg.RedisAddr != "" {
		rs := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rs.Ping(ctx); err != nil {
			cancel()
			log.Fatalf("redis ping: %v", err)
		}
		cancel()
		sessions = rs
		log.Printf("session store: redis addr=%s ttl=%s", cfg.RedisAddr, cfg.SessionTTL)
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
		log.Printf("session store: memory ttl=%s", cfg.SessionTTL)
	}

	// Provider registry (route by configured provider name)
	reg := ai.NewRegistry()

	reg.Register("ollama", func(ctx context.Context, model string) (ai.Provider, error) {
		_ = ctx
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OllamaModel
		}
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, m), nil
	})
	reg.Register("openrouter", func(ctx context.Context, model string) (ai.Provider, error) {
		_ = ctx
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OpenRouterModel
		}
		return ai.NewOpenRouterProvider(cfg.OpenRouterBaseURL, cfg.OpenRouterAPIKey, m, cfg.OpenRouterSiteURL, cfg.OpenRouterAppName), nil
	})

	provider, err := reg.Get(context.Background(), cfg.AIProvider, "")
	if err != nil {
		log.Fatalf("ai provider %q: %v", cfg.AIProvider, err)
	}

	sender := line.NewClient(cfg.LineAPIBaseURL, cfg.LineChannelToken)

	svc := bot.NewService(sessions, products, recorder, provider, sender, cfg.CatalogQueryTimeout)

	r := httpapi.NewRouter(cfg, svc, products, interactions)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server started addr=%s provider=%s", addr, cfg.AIProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
