package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PromptRequest describes how to load a prompt from Langfuse or fallback storage.
type PromptRequest struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	// Name of the prompt in Langfuse. When empty, only the cache file is read.
	Name string
	// Label selects a prompt version (e.g. "production"). Optional.
	Label string
	// CachePath is a local file used both as a write-through cache and as the
	// fallback when Langfuse is unreachable.
	CachePath string
}

var errPromptDisabled = errors.New("langfuse prompt management disabled")

// LoadPrompt retrieves a managed prompt from Langfuse with a local fallback.
// A successful fetch refreshes the cache file, so a previously fetched prompt
// survives Langfuse outages and offline runs.
func LoadPrompt(ctx context.Context, req PromptRequest) (string, error) {
	if req.Name == "" {
		return readCachedPrompt(req.CachePath)
	}

	prompt, err := fetchPrompt(ctx, req)
	if err == nil {
		if cacheErr := writeCachedPrompt(req.CachePath, prompt); cacheErr != nil {
			log.Printf("[langfuse] failed to cache prompt locally: %v", cacheErr)
		}
		return prompt, nil
	}
	if !errors.Is(err, errPromptDisabled) {
		log.Printf("[langfuse] prompt fetch failed: %v", err)
	}

	return readCachedPrompt(req.CachePath)
}

func fetchPrompt(ctx context.Context, req PromptRequest) (string, error) {
	if req.BaseURL == "" || req.PublicKey == "" || req.SecretKey == "" {
		return "", errPromptDisabled
	}

	endpoint, err := promptEndpoint(req)
	if err != nil {
		return "", err
	}

	requestCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(req.PublicKey, req.SecretKey)

	httpClient := &http.Client{Timeout: 10 * time.Second}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	switch promptResp.Type {
	case "", "text":
		var textPrompt string
		if err := json.Unmarshal(promptResp.Prompt, &textPrompt); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return textPrompt, nil
	case "chat":
		var messages []chatPromptMessage
		if err := json.Unmarshal(promptResp.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return flattenChatMessages(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}
}

func promptEndpoint(req PromptRequest) (string, error) {
	parsed, err := url.Parse(strings.TrimSuffix(req.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(req.Name)
	if req.Label != "" {
		query := parsed.Query()
		query.Set("label", req.Label)
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

type chatPromptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

// flattenChatMessages renders a chat-style prompt as a single text block.
// Placeholder messages keep their {{name}} markers so the caller can
// substitute values later.
func flattenChatMessages(messages []chatPromptMessage) string {
	var builder strings.Builder
	for _, msg := range messages {
		content := chatMessageContent(msg)
		if content == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		role := msg.Role
		if role == "" {
			role = "message"
		}
		builder.WriteString(strings.ToUpper(role))
		builder.WriteString(": ")
		builder.WriteString(content)
	}
	return builder.String()
}

func chatMessageContent(msg chatPromptMessage) string {
	if msg.Type == "placeholder" {
		if msg.Name != "" {
			return "{{" + msg.Name + "}}"
		}
		return ""
	}
	return msg.Content
}

func readCachedPrompt(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no local prompt file configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read local prompt file: %w", err)
	}
	return string(data), nil
}

func writeCachedPrompt(path, prompt string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
