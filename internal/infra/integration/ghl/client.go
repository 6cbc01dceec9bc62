package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/chateaubevvy/bevvy-leads/internal/entity"
	"github.com/chateaubevvy/bevvy-leads/internal/infra/http/middleware"
)

type Client struct {
	webhookURL string
	http       *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// ForwardLead delivers one lead to the GoHighLevel webhook. One POST, no
// retry. Every failure is soft: logged, counted and folded into the Result.
func (c *Client) ForwardLead(ctx context.Context, lead *entity.Lead) Result {
	if c.webhookURL == "" {
		log.Println("⚠️ GHL: webhook URL not configured, lead not forwarded")
		return c.fail(Result{
			Outcome: OutcomeTransportError,
			Err:     fmt.Errorf("ghl webhook not configured"),
		})
	}

	payload := BuildPayload(lead)

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return c.fail(Result{
			Outcome: OutcomeTransportError,
			Err:     fmt.Errorf("failed to marshal ghl payload: %w", err),
		})
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return c.fail(Result{Outcome: OutcomeTransportError, Err: err})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ GHL: transport failure for %s: %v", lead.Email, err)
		return c.fail(Result{
			Outcome: OutcomeTransportError,
			Err:     fmt.Errorf("ghl request failed: %w", err),
		})
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ GHL: webhook rejected lead %s: %d - %s", lead.Email, resp.StatusCode, string(body))
		return c.fail(Result{
			Outcome: OutcomeRejected,
			Status:  resp.StatusCode,
			Body:    string(body),
			Err:     fmt.Errorf("ghl webhook returned %d", resp.StatusCode),
		})
	}

	log.Printf("✅ GHL: lead %s (%s) delivered", lead.Email, lead.Source)
	middleware.RecordForwardingOutcome(OutcomeDelivered)

	return Result{Outcome: OutcomeDelivered, Status: resp.StatusCode, Body: string(body)}
}

func (c *Client) fail(r Result) Result {
	middleware.RecordForwardingOutcome(r.Outcome)
	middleware.RecordIntegrationError("ghl")
	return r
}
