// Package miniapp собирает клиент мини-приложения: шлюз, хранилища
// и локальный HTTP-эндпоинт метрик. Все зависимости конструируются
// явно при старте и разбираются при завершении — модульных
// синглтонов нет, состояние не переживает процесс.
package miniapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DanteFuaran/dfc-tg-shop/internal/config"
	"github.com/DanteFuaran/dfc-tg-shop/internal/gateway"
	"github.com/DanteFuaran/dfc-tg-shop/internal/lib/sl"
	"github.com/DanteFuaran/dfc-tg-shop/internal/lib/token"
	adminstore "github.com/DanteFuaran/dfc-tg-shop/internal/store/admin"
	sessionstore "github.com/DanteFuaran/dfc-tg-shop/internal/store/session"
	ticketstore "github.com/DanteFuaran/dfc-tg-shop/internal/store/ticket"
)

// App — собранный клиент мини-приложения.
type App struct {
	gw      *gateway.Client
	session *sessionstore.Store
	tickets *ticketstore.Store
	admin   *adminstore.Store

	metricsSrv *http.Server
	cfg        *config.Config
	logger     *slog.Logger
}

// New собирает приложение из конфига: шлюз, три хранилища и сервер
// метрик. Хранилище тикетов получает хранилище сессии как приёмник
// агрегатов.
func New(cfg *config.Config, logger *slog.Logger) *App {
	gw := gateway.New(cfg.Gateway, logger, prometheus.DefaultRegisterer)
	session := sessionstore.New(gw, logger)
	tickets := ticketstore.New(gw, session, logger)
	admin := adminstore.New(gw, logger)

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "OK"})
	})

	return &App{
		gw:      gw,
		session: session,
		tickets: tickets,
		admin:   admin,
		metricsSrv: &http.Server{
			Addr:    cfg.AddressMetrics,
			Handler: router,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Run аутентифицирует пользователя, обновляет составное представление
// и запускает интерактивный цикл. Завершается по ctx либо по команде
// выхода; сервер метрик останавливается корректно.
func (a *App) Run(ctx context.Context) error {
	const op = "app.miniapp.Run"

	go func() {
		a.logger.Info("metrics server starting", slog.String("address", a.metricsSrv.Addr))
		if err := a.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", sl.Err(err))
		}
	}()
	defer func() {
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metricsSrv.Shutdown(timeoutCtx); err != nil {
			a.logger.Error("failed to shut down metrics server", sl.Err(err))
		}
	}()

	if a.cfg.InitData != "" {
		if err := a.loginTelegram(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	runREPL(ctx, a)
	return nil
}

// loginTelegram выполняет вход по initData и обновляет представление.
func (a *App) loginTelegram(ctx context.Context) error {
	const op = "app.miniapp.loginTelegram"

	res, err := a.gw.LoginTelegram(ctx, a.cfg.InitData)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.Token != "" {
		if token.IsExpired(res.Token, time.Now()) {
			return fmt.Errorf("%s: received expired session token", op)
		}
		a.gw.SetToken(res.Token)
	}
	a.logger.Info("authenticated via telegram", slog.Int64("telegram_id", res.TelegramID))

	if err := a.session.Refresh(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// logout завершает сессию и сбрасывает локальное состояние.
func (a *App) logout(ctx context.Context) {
	if err := a.gw.Logout(ctx); err != nil {
		a.logger.Warn("logout request failed", sl.Err(err))
	}
	a.gw.SetToken("")
	a.session.Clear()
	a.tickets.Clear()
}
