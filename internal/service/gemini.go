package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pageza/nutrimentor/backend/internal/types"
)

// User-facing fallback messages. The gateway always returns a string: failure
// classes are distinguishable in logs while the user sees one of these.
const (
	fallbackEmptyReply = "Sorry, I couldn't generate a response. The AI provided an empty or unexpected reply. Please try again."
	fallbackHTTPFormat = "Sorry, an HTTP error occurred with the AI. (%d) Please check your API key or try again later."
	fallbackConnection = "Sorry, a network connection error occurred while reaching the AI. Please check your internet connection."
	fallbackTimeout    = "Sorry, the AI request timed out. Please try again later."
	fallbackUnknown    = "Sorry, an unknown error occurred with the AI request. Please try again later."
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash-latest:generateContent"

// geminiTimeout bounds the external model call; expiry maps to the timeout
// fallback message.
const geminiTimeout = 30 * time.Second

// GeminiService handles interactions with the Gemini generateContent API
type GeminiService struct {
	apiKey  string
	apiURL  string
	client  *http.Client
	timeout time.Duration
}

var _ IResponseGateway = (*GeminiService)(nil)

// NewGeminiService creates a new GeminiService instance
func NewGeminiService() (*GeminiService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("GEMINI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("GEMINI_API_URL")
	if apiURL == "" {
		apiURL = defaultGeminiURL
	}

	return &GeminiService{
		apiKey:  apiKey,
		apiURL:  apiURL,
		client:  &http.Client{Timeout: geminiTimeout},
		timeout: geminiTimeout,
	}, nil
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Ask sends the composed prompt (and optional JPEG image) to the model and
// returns the reply text with emphasis markup stripped. Any failure degrades
// to a fixed user-facing message; the caller never sees a raw error.
func (s *GeminiService) Ask(ctx context.Context, prompt types.Prompt, imageData []byte) string {
	parts := []geminiPart{
		{Text: prompt.System},
		{Text: fmt.Sprintf("\n---\n%s\n---\n", prompt.Context)},
	}
	if len(imageData) > 0 {
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{
				MimeType: "image/jpeg",
				Data:     base64.StdEncoding.EncodeToString(imageData),
			},
		})
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		log.Printf("[GeminiService] failed to marshal request: %v", err)
		return fallbackUnknown
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	url := s.apiURL
	if s.apiKey != "" {
		url += "?key=" + s.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("[GeminiService] failed to create request: %v", err)
		return fallbackUnknown
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return s.classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[GeminiService] failed to read response: %v", err)
		return fallbackUnknown
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[GeminiService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return fmt.Sprintf(fallbackHTTPFormat, resp.StatusCode)
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("[GeminiService] failed to decode response: %v", err)
		return fallbackEmptyReply
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		log.Printf("[GeminiService] empty or unexpected reply: %s", string(body))
		return fallbackEmptyReply
	}

	// The model emits * for emphasis markup; strip it for plain-text clients.
	return strings.ReplaceAll(result.Candidates[0].Content.Parts[0].Text, "*", "")
}

// classifyTransportError maps a transport failure to its fallback message,
// logging the underlying cause so the classes stay distinguishable.
func (s *GeminiService) classifyTransportError(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		log.Printf("[GeminiService] request timed out: %v", err)
		return fallbackTimeout
	default:
		var opErr *net.OpError
		if errors.As(err, &opErr) {
			log.Printf("[GeminiService] connection error: %v", err)
			return fallbackConnection
		}
		log.Printf("[GeminiService] request failed: %v", err)
		return fallbackUnknown
	}
}
