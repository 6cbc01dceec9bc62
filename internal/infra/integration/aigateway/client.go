package aigateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const generationModel = "google/gemini-2.5-flash-image-preview"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		// Image generation is slow; the 10s default used for webhooks is
		// not enough here.
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateBottle sends the label artwork plus the product-shot prompt to
// the gateway and returns the first generated image.
func (c *Client) GenerateBottle(ctx context.Context, input GenerateBottleInput) (*GenerateBottleOutput, error) {
	if c.apiKey == "" {
		return nil, &GenerationError{
			Kind:    KindUpstreamError,
			Message: "AI gateway API key is not configured",
		}
	}

	log.Printf("🍷 Generating bottle for: %s (%s)", input.WineName, input.WineType)

	payload := chatRequest{
		Model: generationModel,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: buildPrompt(input.WineType, input.BottleStyle)},
					{Type: "image_url", ImageURL: &imageRef{URL: input.LabelImageBase64}},
				},
			},
		},
		Modalities: []string{"image", "text"},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, &GenerationError{
			Kind:    KindUpstreamError,
			Message: fmt.Sprintf("failed to marshal gateway request: %v", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, &GenerationError{Kind: KindUpstreamError, Message: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &GenerationError{
			Kind:    KindUpstreamError,
			Message: fmt.Sprintf("gateway request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ AI gateway error: %d - %s", resp.StatusCode, string(body))

		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, &GenerationError{
				Kind:    KindRateLimited,
				Status:  resp.StatusCode,
				Message: "rate limit exceeded, try again later",
			}
		case http.StatusPaymentRequired:
			return nil, &GenerationError{
				Kind:    KindQuotaExhausted,
				Status:  resp.StatusCode,
				Message: "AI credits exhausted",
			}
		default:
			return nil, &GenerationError{
				Kind:    KindUpstreamError,
				Status:  resp.StatusCode,
				Message: fmt.Sprintf("AI gateway returned %d", resp.StatusCode),
			}
		}
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &GenerationError{
			Kind:    KindUpstreamError,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("failed to decode gateway response: %v", err),
		}
	}

	if len(result.Choices) == 0 || len(result.Choices[0].Message.Images) == 0 {
		return nil, &GenerationError{
			Kind:    KindNoImageReturned,
			Status:  resp.StatusCode,
			Message: "no image generated in response",
		}
	}

	log.Printf("✅ Bottle generated for %s", input.WineName)

	return &GenerateBottleOutput{
		ImageURL: result.Choices[0].Message.Images[0].ImageURL.URL,
		WineName: input.WineName,
	}, nil
}
