package aigateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testInput() GenerateBottleInput {
	return GenerateBottleInput{
		LabelImageBase64: "data:image/png;base64,iVBORw0KG",
		WineName:         "Trinity",
		WineType:         "red-blend",
	}
}

func imageResponse(url string) string {
	return `{"choices":[{"message":{"images":[{"image_url":{"url":"` + url + `"}}]}}]}`
}

func TestGenerateBottleSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotRequest chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotRequest)
		w.Write([]byte(imageResponse("data:image/png;base64,generated")))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	output, err := client.GenerateBottle(context.Background(), testInput())

	assert.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,generated", output.ImageURL)
	assert.Equal(t, "Trinity", output.WineName)

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, generationModel, gotRequest.Model)
	assert.Equal(t, []string{"image", "text"}, gotRequest.Modalities)

	// The label image rides along as an image_url part.
	parts := gotRequest.Messages[0].Content
	assert.Len(t, parts, 2)
	assert.Equal(t, "data:image/png;base64,iVBORw0KG", parts[1].ImageURL.URL)
}

func TestGenerateBottleRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GenerateBottle(context.Background(), testInput())

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindRateLimited, genErr.Kind)
	assert.Equal(t, http.StatusTooManyRequests, genErr.Status)
}

func TestGenerateBottleQuotaExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GenerateBottle(context.Background(), testInput())

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindQuotaExhausted, genErr.Kind)
}

func TestGenerateBottleNoImageReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GenerateBottle(context.Background(), testInput())

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindNoImageReturned, genErr.Kind)
}

func TestGenerateBottleUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GenerateBottle(context.Background(), testInput())

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindUpstreamError, genErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, genErr.Status)
}

func TestGenerateBottleWithoutAPIKey(t *testing.T) {
	client := NewClient("http://localhost:1", "")
	_, err := client.GenerateBottle(context.Background(), testInput())

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.Equal(t, KindUpstreamError, genErr.Kind)
	assert.Equal(t, 0, genErr.Status)
}

func TestBottleDescriptionByWineType(t *testing.T) {
	assert.Contains(t, bottleDescription("red", ""), "Bordeaux-style")
	assert.Contains(t, bottleDescription("white", ""), "Burgundy-style")
	assert.Contains(t, bottleDescription("riesling", ""), "Rhine-style")
	assert.Contains(t, bottleDescription("rose", ""), "Provence-style")

	// Explicit style overrides the wine type.
	assert.Contains(t, bottleDescription("white", "moscato"), "Italian-style")

	// Unknown types fall back to the red Bordeaux bottle.
	assert.Contains(t, bottleDescription("orange", ""), "Bordeaux-style")
}

func TestBuildPromptEmbedsBottleDescription(t *testing.T) {
	prompt := buildPrompt("riesling", "")
	assert.True(t, strings.Contains(prompt, "Rhine-style"))
	assert.True(t, strings.Contains(prompt, "photorealistic product photograph"))
}
