// Package transport предоставляет HTTP-клиент для REST API DeliverUS.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmeshcher/deliverus-owner/internal/apierror"
)

// DefaultTimeout используется, если таймаут запроса не задан конфигурацией.
const DefaultTimeout = 5 * time.Second

// Client инкапсулирует HTTP-взаимодействие с бэкендом DeliverUS.
// Токен сессии не хранится в клиенте, а передаётся в каждый вызов.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт HTTP-клиент для обращения к бэкенду по указанному адресу.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get выполняет GET-запрос и декодирует ответ в out.
func (c *Client) Get(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, http.MethodGet, token, path, nil, out)
}

// Post выполняет POST-запрос с JSON-телом body и декодирует ответ в out.
func (c *Client) Post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, token, path, body, out)
}

// Put выполняет PUT-запрос с JSON-телом body и декодирует ответ в out.
func (c *Client) Put(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, token, path, body, out)
}

// Patch выполняет PATCH-запрос. Тело и out могут быть nil:
// частичные обновления вида "установить флаг" передают всё в пути.
func (c *Client) Patch(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, token, path, body, out)
}

// Delete выполняет DELETE-запрос по указанному пути.
func (c *Client) Delete(ctx context.Context, token, path string) error {
	return c.do(ctx, http.MethodDelete, token, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, token, path string, body, out any) error {
	if c == nil || c.baseURL == "" {
		return fmt.Errorf("transport client not configured")
	}

	base := c.baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	url := base + "/" + strings.TrimLeft(path, "/")

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apierror.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	// Экран мог быть закрыт во время запроса: результат отбрасывается.
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// decodeError разбирает тело неуспешного ответа. Ошибки валидации 4xx
// приходят в виде {"errors": [{"param": ..., "msg": ...}]} и передаются
// вызывающему без изменений, всё остальное считается ошибкой транспорта.
func decodeError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierror.TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusInternalServerError {
		var ve apierror.ValidationError
		if err := json.Unmarshal(data, &ve); err == nil && len(ve.Errors) > 0 {
			return &ve
		}
	}

	return &apierror.TransportError{StatusCode: resp.StatusCode}
}
