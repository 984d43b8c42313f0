package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrompt_TextPromptWithCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/v2/prompts/sleep-insights" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("label") != "production" {
			t.Errorf("expected label production, got %s", r.URL.Query().Get("label"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"text","prompt":"You are a sleep assistant."}`))
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "prompts", "insights.txt")

	prompt, err := LoadPrompt(context.Background(), PromptRequest{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
		Name:      "sleep-insights",
		Label:     "production",
		CachePath: cachePath,
	})
	if err != nil {
		t.Fatalf("LoadPrompt: %v", err)
	}
	if prompt != "You are a sleep assistant." {
		t.Errorf("unexpected prompt %q", prompt)
	}

	cached, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("expected cache file: %v", err)
	}
	if string(cached) != prompt {
		t.Errorf("cache content %q does not match prompt", string(cached))
	}
}

func TestLoadPrompt_ChatPromptFlattened(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"chat","prompt":[
			{"role":"system","content":"Be concise."},
			{"type":"placeholder","name":"context"},
			{"role":"user","content":"Summarize my sleep."}
		]}`))
	}))
	defer server.Close()

	prompt, err := LoadPrompt(context.Background(), PromptRequest{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
		Name:      "sleep-insights",
	})
	if err != nil {
		t.Fatalf("LoadPrompt: %v", err)
	}

	want := "SYSTEM: Be concise.\n\nMESSAGE: {{context}}\n\nUSER: Summarize my sleep."
	if prompt != want {
		t.Errorf("flattened prompt mismatch:\n got %q\nwant %q", prompt, want)
	}
}

func TestLoadPrompt_FallsBackToCacheOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "insights.txt")
	if err := os.WriteFile(cachePath, []byte("cached prompt"), 0o600); err != nil {
		t.Fatal(err)
	}

	prompt, err := LoadPrompt(context.Background(), PromptRequest{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
		Name:      "sleep-insights",
		CachePath: cachePath,
	})
	if err != nil {
		t.Fatalf("expected cache fallback, got error: %v", err)
	}
	if prompt != "cached prompt" {
		t.Errorf("expected cached prompt, got %q", prompt)
	}
}

func TestLoadPrompt_NoNameReadsCacheOnly(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "insights.txt")
	if err := os.WriteFile(cachePath, []byte("local only"), 0o600); err != nil {
		t.Fatal(err)
	}

	prompt, err := LoadPrompt(context.Background(), PromptRequest{CachePath: cachePath})
	if err != nil {
		t.Fatalf("LoadPrompt: %v", err)
	}
	if prompt != "local only" {
		t.Errorf("expected local prompt, got %q", prompt)
	}

	if _, err := LoadPrompt(context.Background(), PromptRequest{}); err == nil {
		t.Error("expected error when neither prompt name nor cache path is set")
	}
}
