// Package gateway реализует типизированный шлюз к REST-бэкенду
// мини-приложения. На каждую операцию бэкенда приходится один метод
// и один сетевой запрос: без ретраев, без кеширования, без батчинга.
// Ошибки сводятся к трём типам: NetworkError, HTTPError и DecodeError.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/DanteFuaran/dfc-tg-shop/internal/config"
	"github.com/DanteFuaran/dfc-tg-shop/internal/lib/sl"
)

// Client — клиент REST-бэкенда. Токен сессии устанавливается один раз
// после аутентификации и прикладывается к каждому запросу.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	validate   *validator.Validate
	log        *slog.Logger
	metrics    *metrics

	mu    sync.RWMutex
	token string
}

// New создаёт новый клиент бэкенда с настройками подключения.
func New(cfg config.Gateway, log *slog.Logger, reg prometheus.Registerer) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		validate:   validator.New(),
		log:        log,
		metrics:    newMetrics(reg),
	}
}

// SetToken устанавливает токен сессии для последующих запросов.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()
	return req, nil
}

// do выполняет один запрос: ожидает лимитер, отправляет запрос,
// проверяет статус и разбирает тело в out (если out != nil).
// Возвращаемая ошибка всегда одного из трёх типов шлюза.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	log := c.log.With(
		slog.String("op", op),
		slog.String("request_id", uuid.NewString()),
	)

	if err := c.limiter.Wait(ctx); err != nil {
		return &NetworkError{Err: err}
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(op, "network_error", time.Since(start).Seconds())
		log.Error("request failed", sl.Err(err))
		return &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.metrics.observe(op, "http_error", time.Since(start).Seconds())
		log.Error("unexpected status", slog.Int("status", resp.StatusCode))
		return &HTTPError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.metrics.observe(op, "decode_error", time.Since(start).Seconds())
			log.Error("failed to decode response", sl.Err(err))
			return &DecodeError{Err: err}
		}
	}

	c.metrics.observe(op, "ok", time.Since(start).Seconds())
	log.Debug("request completed", slog.Duration("took", time.Since(start)))
	return nil
}

// checkStruct валидирует разобранный ответ; нарушение формы считается
// ошибкой декодирования.
func (c *Client) checkStruct(op string, v any) error {
	if err := c.validate.Struct(v); err != nil {
		return &DecodeError{Err: fmt.Errorf("%s: %w", op, err)}
	}
	return nil
}
