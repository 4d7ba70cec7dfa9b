package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/pkg/log"
	"ttsserver/repo"
)

var testVoices = []domain.Voice{
	{Name: "en-US-Standard-A", LanguageCodes: []string{"en-US"}, SsmlGender: "MALE", NaturalSampleRateHertz: 24000},
	{Name: "en-IN-Wavenet-A", LanguageCodes: []string{"en-IN"}, SsmlGender: "FEMALE", NaturalSampleRateHertz: 24000},
}

// fakeProvider echoes the fragment SSML back as audio unless audioFor is set.
type fakeProvider struct {
	mu       sync.Mutex
	requests []domain.SynthesisRequest
	audioFor func(req domain.SynthesisRequest) ([]byte, error)
}

func (p *fakeProvider) ListVoices(context.Context) ([]domain.Voice, error) { return testVoices, nil }

func (p *fakeProvider) Synthesize(_ context.Context, req domain.SynthesisRequest) ([]byte, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()
	if p.audioFor != nil {
		return p.audioFor(req)
	}
	return []byte(req.SSML), nil
}

func (p *fakeProvider) Verify(context.Context) (string, error) { return "test-project", nil }

func (p *fakeProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

type memStore struct {
	files map[string][]byte
}

func newMemStore() *memStore { return &memStore{files: map[string][]byte{}} }

func (m *memStore) Save(_ context.Context, name string, data []byte) error {
	m.files[name] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) Open(_ context.Context, name string) (io.ReadCloser, int64, error) {
	b, ok := m.files[name]
	if !ok {
		return nil, 0, domain.ErrFileNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), int64(len(b)), nil
}

var errProvider = errors.New("provider unavailable")

func testConfig() *config.Config {
	return &config.Config{Tts: config.TtsConfig{
		MaxChunkBytes:         1200,
		SampleRate:            24000,
		Channels:              1,
		BitDepth:              16,
		Concurrency:           1,
		PreferredLanguages:    []string{"ml-IN", "hi-IN", "en-IN", "en-US"},
		PreferredVoiceKeyword: "Wavenet",
		SampleVoices:          10,
	}}
}

func newTestUsecase(c *config.Config, p *fakeProvider) (*TtsUsecase, *memStore) {
	catalog := repo.NewStaticVoiceCatalog(testVoices)
	store := newMemStore()
	synth := NewSynthesizer(log.Discard(), c, p, catalog)
	return NewTtsUsecase(log.Discard(), c, synth, catalog, p, store), store
}
