package chefcatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент каталога шефов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога шефов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetChef получает профиль шефа
func (c *Client) GetChef(ctx context.Context, chefID int64) (*domain.Chef, error) {
	url := fmt.Sprintf("%s/internal/chefs/%d", c.baseURL, chefID)

	var chef Chef
	if err := c.get(ctx, url, ErrChefNotFound, &chef); err != nil {
		return nil, err
	}
	return chef.ToDomain(), nil
}

// GetMenu получает меню шефа
func (c *Client) GetMenu(ctx context.Context, chefID, menuID int64) (*domain.Menu, error) {
	url := fmt.Sprintf("%s/internal/chefs/%d/menus/%d", c.baseURL, chefID, menuID)

	var menu Menu
	if err := c.get(ctx, url, ErrMenuNotFound, &menu); err != nil {
		return nil, err
	}
	if menu.ChefID != 0 && menu.ChefID != chefID {
		return nil, ErrMenuNotFound
	}
	return menu.ToDomain(), nil
}

func (c *Client) get(ctx context.Context, url string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ChefCatalog: request %s failed: %v", url, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
