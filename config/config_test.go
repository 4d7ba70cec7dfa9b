package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", c.Port)
	}
	if c.Tts.MaxChunkBytes != 1200 {
		t.Fatalf("expected default chunk budget 1200, got %d", c.Tts.MaxChunkBytes)
	}
	if c.Tts.SampleRate != 24000 || c.Tts.Channels != 1 || c.Tts.BitDepth != 16 {
		t.Fatalf("unexpected wav defaults: %+v", c.Tts)
	}
	if len(c.Tts.PreferredLanguages) != 4 || c.Tts.PreferredLanguages[0] != "ml-IN" {
		t.Fatalf("unexpected preferred languages: %v", c.Tts.PreferredLanguages)
	}
	if c.PublicBaseURL != "http://localhost:5000" {
		t.Fatalf("unexpected public base url: %q", c.PublicBaseURL)
	}
	if c.Storage.Driver != "local" {
		t.Fatalf("expected local storage by default, got %q", c.Storage.Driver)
	}
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/secrets/sa.json")
	t.Setenv("GOOGLE_API_KEY", "key-123")
	t.Setenv("TTS_MAX_CHUNK_BYTES", "850")
	t.Setenv("TTS_CONCURRENCY", "4")
	t.Setenv("STORAGE_DRIVER", "minio")
	t.Setenv("PUBLIC_BASE_URL", "https://tts.example.com/")

	c, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Port != "8080" {
		t.Fatalf("expected port override, got %q", c.Port)
	}
	if c.ListenAddr() != ":8080" {
		t.Fatalf("unexpected listen addr %q", c.ListenAddr())
	}
	if c.Google.CredentialsFile != "/secrets/sa.json" {
		t.Fatalf("expected credentials override, got %q", c.Google.CredentialsFile)
	}
	if c.Google.ApiKey != "key-123" {
		t.Fatalf("expected api key override, got %q", c.Google.ApiKey)
	}
	if c.Tts.MaxChunkBytes != 850 {
		t.Fatalf("expected chunk budget override, got %d", c.Tts.MaxChunkBytes)
	}
	if c.Tts.Concurrency != 4 {
		t.Fatalf("expected concurrency override, got %d", c.Tts.Concurrency)
	}
	if c.Storage.Driver != "minio" {
		t.Fatalf("expected storage driver override, got %q", c.Storage.Driver)
	}
	if c.PublicBaseURL != "https://tts.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", c.PublicBaseURL)
	}
}
