// Package api — клиент удалённого хранилища. Каждая операция — один
// HTTP-вызов без повторов; сессия передаётся cookie auth_token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"TravelRecord/internal/cli/model"
)

// Client — клиент API сервера TravelRecord.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New создаёт клиент. Пустой token означает анонимную сессию.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    http.DefaultClient,
	}
}

// do выполняет запрос, прикладывая сессионную cookie, и читает тело ответа.
func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	if c.token != "" {
		req.Header.Set("Cookie", "auth_token="+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// postJSON отправляет JSON POST на указанный путь.
func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// CreateOne отправляет одну запись в /api/add. Возвращает сырой конверт
// ответа: решает, как на него реагировать, вызывающая сторона.
func (c *Client) CreateOne(ctx context.Context, rec model.Record) ([]byte, error) {
	_, body, err := c.postJSON(ctx, "/api/add", rec)
	return body, err
}

// CreateMany отправляет произвольный JSON-payload (ожидается массив
// объектов, но клиент это не проверяет) в /api/bulk.
func (c *Client) CreateMany(ctx context.Context, payload any) ([]byte, error) {
	_, body, err := c.postJSON(ctx, "/api/bulk", payload)
	return body, err
}

// CreateManyFile загружает файл в /api/bulk multipart-формой.
// Содержимое не разбирается на клиенте: CSV/JSON — забота сервера.
func (c *Client) CreateManyFile(ctx context.Context, filename string, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bulk", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, body, err := c.do(req)
	return body, err
}

// ListAll загружает полную коллекцию из /api/all. Ответ, который не
// разбирается как массив, трактуется как пустая коллекция, а не как ошибка.
func (c *Client) ListAll(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/all", nil)
	if err != nil {
		return nil, err
	}
	_, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var recs []model.Record
	if err := json.Unmarshal(body, &recs); err != nil {
		return []model.Record{}, nil
	}
	return recs, nil
}

// DeleteMany отправляет пачку идентификаторов в /api/delete_many.
// Пустой список — забота вызывающей стороны, клиент не проверяет.
func (c *Client) DeleteMany(ctx context.Context, ids []string) ([]byte, error) {
	_, body, err := c.postJSON(ctx, "/api/delete_many", map[string][]string{"ids": ids})
	return body, err
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// envelope — минимальный конверт ответов auth-эндпоинтов.
type envelope struct {
	OK    bool    `json:"ok"`
	Email *string `json:"email"`
	Error string  `json:"error"`
}

// Register регистрирует пользователя.
func (c *Client) Register(ctx context.Context, email, password string) error {
	resp, body, err := c.postJSON(ctx, "/api/register", credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || !env.OK {
		if env.Error != "" {
			return fmt.Errorf("%s", env.Error)
		}
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// Login выполняет вход и возвращает значение сессионной cookie.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, body, err := c.postJSON(ctx, "/api/login", credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || !env.OK {
		if env.Error != "" {
			return "", fmt.Errorf("%s", env.Error)
		}
		return "", fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	for _, ck := range resp.Cookies() {
		if ck.Name == "auth_token" && ck.Value != "" {
			return ck.Value, nil
		}
	}
	return "", fmt.Errorf("no auth cookie in response")
}

// Logout завершает сессию на сервере.
func (c *Client) Logout(ctx context.Context) error {
	_, _, err := c.postJSON(ctx, "/api/logout", struct{}{})
	return err
}

// Me возвращает email текущей сессии; ok=false — сессии нет.
func (c *Client) Me(ctx context.Context) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/me", nil)
	if err != nil {
		return "", false, err
	}
	_, body, err := c.do(req)
	if err != nil {
		return "", false, err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", false, fmt.Errorf("decode: %w", err)
	}
	if !env.OK || env.Email == nil {
		return "", false, nil
	}
	return *env.Email, true, nil
}
