package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const confirmStatusSucceeded = "succeeded"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего платёжного сервиса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платёжного сервиса.
// timeout ограничивает каждый вызов провайдера.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateIntent создает платёжное намерение на сумму amount
func (c *Client) CreateIntent(ctx context.Context, bookingID int64, amount float64) (string, error) {
	var resp CreateIntentResponse
	err := c.post(ctx, c.baseURL+"/intents", "", CreateIntentRequest{BookingID: bookingID, Amount: amount}, &resp)
	if err != nil {
		return "", err
	}
	if resp.IntentID == "" {
		return "", fmt.Errorf("%w: empty intentId", ErrInvalidResponse)
	}

	c.log.Info("PaymentService: intent %s created for booking_id=%d amount=%.2f", resp.IntentID, bookingID, amount)
	return resp.IntentID, nil
}

// Confirm подтверждает намерение. Возвращает захваченную сумму
func (c *Client) Confirm(ctx context.Context, intentID string, bookingID int64) (float64, error) {
	url := fmt.Sprintf("%s/intents/%s/confirm", c.baseURL, intentID)

	var resp ConfirmResponse
	if err := c.post(ctx, url, "confirm:"+intentID, ConfirmRequest{BookingID: bookingID}, &resp); err != nil {
		return 0, err
	}
	if resp.Status != confirmStatusSucceeded {
		return 0, fmt.Errorf("%w: intent %s status %q", ErrPaymentDeclined, intentID, resp.Status)
	}

	c.log.Info("PaymentService: intent %s confirmed for booking_id=%d captured=%.2f", intentID, bookingID, resp.CapturedAmount)
	return resp.CapturedAmount, nil
}

// Refund возвращает amount по бронированию. reason используется как ключ идемпотентности,
// поэтому повторный вызов с тем же reason не создаёт второй возврат
func (c *Client) Refund(ctx context.Context, bookingID int64, amount float64, reason string) error {
	req := RefundRequest{BookingID: bookingID, Amount: amount, Reason: reason}
	if err := c.post(ctx, c.baseURL+"/refunds", fmt.Sprintf("refund:%d:%s", bookingID, reason), req, nil); err != nil {
		return err
	}

	c.log.Info("PaymentService: refund %.2f issued for booking_id=%d reason=%s", amount, bookingID, reason)
	return nil
}

func (c *Client) post(ctx context.Context, url, idempotencyKey string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("PaymentService: request %s failed: %v", url, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusNotFound:
		return ErrIntentNotFound
	case resp.StatusCode == http.StatusPaymentRequired,
		resp.StatusCode == http.StatusConflict,
		resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrPaymentDeclined, readError(resp.Body))
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, readError(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func readError(body io.Reader) string {
	raw, _ := io.ReadAll(body)
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return string(raw)
}
