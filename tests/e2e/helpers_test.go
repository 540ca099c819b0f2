package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// 起動済みのAPIに対して叩くE2E。BASE_URL未設定ならskipする。
type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL not set; skipping e2e")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Role        string `json:"role"`
}

type IngredientDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type RecipeItemDTO struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       int64           `json:"price"`
	DietaryType string          `json:"dietary_type"`
	Ingredients []RecipeItemDTO `json:"ingredients"`
}

type OrderItemDTO struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	UnitPrice      int64  `json:"unit_price"`
	EffectivePrice int64  `json:"effective_price"`
	Quantity       int64  `json:"quantity"`
}

type OrderDTO struct {
	ID          int64          `json:"id"`
	OrderNumber string         `json:"order_number"`
	OrderType   string         `json:"order_type"`
	OrderStatus string         `json:"order_status"`
	PromoCode   string         `json:"promo_code"`
	TotalPrice  int64          `json:"total_price"`
	Items       []OrderItemDTO `json:"items"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bearer string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func (c *TestClient) postJSON(ctx context.Context, t *testing.T, path string, bearer string, v interface{}) (*http.Response, []byte) {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	return c.doJSON(ctx, t, http.MethodPost, path, bearer, b)
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecode(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json.Unmarshal failed: %v body=%s", err, string(body))
	}
}

// 管理者でログインしてaccess_tokenを取得
func adminLogin(t *testing.T, c *TestClient, ctx context.Context) string {
	t.Helper()

	email := os.Getenv("E2E_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("E2E_ADMIN_PASSWORD")
	if password == "" {
		password = "password123"
	}

	resp, body := c.postJSON(ctx, t, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	requireStatus(t, resp, http.StatusOK, body)

	var login LoginResponse
	mustDecode(t, body, &login)
	if strings.TrimSpace(login.AccessToken) == "" {
		t.Fatalf("access token is empty: body=%s", string(body))
	}
	return login.AccessToken
}
