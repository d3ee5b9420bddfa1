// Package store - слой доступа к внешнему хранилищу данных.
// Хранилище - внешний коллаборатор с generic-эндпоинтами коллекций
// (GET с фильтрами, POST, PUT, DELETE); этот пакет лишь оборачивает
// HTTP-вызовы, единообразно обрабатывает ошибки и ведет счетчик
// незавершенных запросов для индикатора загрузки.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"jobtrack/internal/logger"
	"jobtrack/pkg/apperrors"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	inFlight   atomic.Int64
}

// New создает клиент хранилища.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid store base url: %q", baseURL)
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Loading сообщает, есть ли незавершенные запросы к хранилищу.
// Рендерер использует флаг для индикатора загрузки и блокировки форм.
func (c *Client) Loading() bool {
	return c.inFlight.Load() > 0
}

// doJSON выполняет один запрос к хранилищу. Любая ошибка транспорта
// или не-2xx статус логируется с деталями и возвращается как общая
// ошибка недоступности хранилища: вызывающий обязан считать операцию
// проваленной без изменения состояния. Ретраев нет.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody any, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return apperrors.InternalError(fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return apperrors.InternalError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.StoreLog(method, path, 0, time.Since(start), err)
		return apperrors.StoreUnavailable(err)
	}
	defer resp.Body.Close()

	logger.StoreLog(method, path, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("store responded %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		logger.CtxWithError(ctx, "store request rejected", err, "method", method, "endpoint", path)
		return apperrors.StoreUnavailable(err)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.CtxWithError(ctx, "store response decode failed", err, "method", method, "endpoint", path)
		return apperrors.StoreUnavailable(fmt.Errorf("decode response: %w", err))
	}

	return nil
}
