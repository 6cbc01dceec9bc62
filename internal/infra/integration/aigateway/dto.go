package aigateway

import "fmt"

// Error kinds, classified from the upstream status so callers can tell
// retryable-later from configuration-fatal.
const (
	KindRateLimited     = "rate_limited"
	KindQuotaExhausted  = "quota_exhausted"
	KindNoImageReturned = "no_image_returned"
	KindUpstreamError   = "upstream_error"
)

type GenerationError struct {
	Kind    string
	Status  int // upstream HTTP status, 0 when the request never completed
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

type GenerateBottleInput struct {
	LabelImageBase64 string // data URI of the label artwork
	WineName         string
	WineType         string
	BottleStyle      string // optional override for the glass shape
}

type GenerateBottleOutput struct {
	ImageURL string
	WineName string
}

// OpenAI-compatible chat request with image modality.
type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Modalities []string      `json:"modalities"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Images []struct {
				ImageURL struct {
					URL string `json:"url"`
				} `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
}
