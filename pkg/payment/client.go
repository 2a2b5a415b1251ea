package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"guesthouse-booking/pkg/utils"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// CheckoutRequest is the payload for a hosted checkout session. Amount is in
// minor currency units (cents).
type CheckoutRequest struct {
	BookingID   string `json:"booking_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	SuccessURL  string `json:"success_url,omitempty"`
	CancelURL   string `json:"cancel_url,omitempty"`
}

// CheckoutSession is the provider's response; URL is the hosted payment page
// the guest is handed off to.
type CheckoutSession struct {
	SessionID string `json:"id"`
	URL       string `json:"url"`
}

// Gateway creates checkout sessions at the external payment provider.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)
}

// ErrResp carries the provider's HTTP status so the circuit breaker can tell
// provider rejections (4xx) apart from provider outages.
type ErrResp struct {
	StatusCode int
	Message    string
}

func (e ErrResp) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("payment provider rejected request: %s", e.Message)
	}
	return fmt.Sprintf("payment provider returned status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	secretKey  string
	successURL string
	cancelURL  string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	log        *zap.Logger
}

func NewClient(config utils.PaymentConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL:    config.BaseURL,
		secretKey:  config.SecretKey,
		successURL: config.SuccessURL,
		cancelURL:  config.CancelURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cb:         circuitBreaker("payment-provider", log),
		log:        log.With(zap.String("client", "payment")),
	}
}

func circuitBreaker(name string, log *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Warn("Circuit breaker state changed",
					zap.String("name", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				errResp, ok := err.(ErrResp)
				return ok && errResp.StatusCode >= 400 && errResp.StatusCode < 500
			},
		},
	)
}

// CreateCheckoutSession calls the provider's checkout-session endpoint. The
// configured success/cancel URLs are filled in when the caller left them
// empty.
func (c *Client) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("checkout amount must be positive, got %d", req.Amount)
	}

	if req.SuccessURL == "" {
		req.SuccessURL = c.successURL
	}
	if req.CancelURL == "" {
		req.CancelURL = c.cancelURL
	}

	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.doCreate(ctx, req)
	})
	if err != nil {
		c.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
			zap.Int64("amount", req.Amount),
		)
		return nil, fmt.Errorf("create checkout session for booking %s: %w", req.BookingID, err)
	}

	session := result.(*CheckoutSession)

	c.log.Info("Checkout session created",
		zap.String("booking_id", req.BookingID),
		zap.String("session_id", session.SessionID),
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency),
	)

	return session, nil
}

func (c *Client) doCreate(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build checkout request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call payment provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)

		var provider struct {
			Message string `json:"message"`
		}
		json.Unmarshal(raw, &provider)

		return nil, ErrResp{StatusCode: resp.StatusCode, Message: provider.Message}
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}

	if session.URL == "" {
		return nil, fmt.Errorf("payment provider returned empty checkout URL")
	}

	return &session, nil
}
