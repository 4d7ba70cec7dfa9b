package gcloud

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/pkg/log"
)

type restSynthesizeRequest struct {
	Input       restInput       `json:"input"`
	Voice       restVoice       `json:"voice"`
	AudioConfig restAudioConfig `json:"audioConfig"`
}

type restInput struct {
	Ssml string `json:"ssml"`
}

type restVoice struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
	SsmlGender   string `json:"ssmlGender,omitempty"`
}

type restAudioConfig struct {
	AudioEncoding   string `json:"audioEncoding"`
	SampleRateHertz int    `json:"sampleRateHertz,omitempty"`
}

type restSynthesizeResponse struct {
	AudioContent string `json:"audioContent"` // base64编码的音频数据
}

type restVoicesResponse struct {
	Voices []domain.Voice `json:"voices"`
}

// RestClient calls the Text-to-Speech REST API with an API key.
type RestClient struct {
	l       *log.Logger
	baseUrl string
	apiKey  string
	http    *http.Client
}

func NewRestClient(c *config.Config, l *log.Logger) (*RestClient, error) {
	if c.Google.ApiKey == "" {
		return nil, fmt.Errorf("google.api_key is required for the rest driver")
	}
	return &RestClient{
		l:       l.WithModule("GoogleTtsRest"),
		baseUrl: strings.TrimRight(c.Google.BaseUrl, "/"),
		apiKey:  c.Google.ApiKey,
		http:    &http.Client{},
	}, nil
}

func (r *RestClient) ListVoices(ctx context.Context) ([]domain.Voice, error) {
	var result restVoicesResponse
	if err := r.do(ctx, http.MethodGet, "/voices", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list voices: %w", err)
	}
	return result.Voices, nil
}

func (r *RestClient) Synthesize(ctx context.Context, req domain.SynthesisRequest) ([]byte, error) {
	body := restSynthesizeRequest{
		Input: restInput{Ssml: req.SSML},
		Voice: restVoice{
			LanguageCode: req.Voice.PrimaryLanguage(),
			Name:         req.Voice.Name,
			SsmlGender:   req.Voice.Gender(),
		},
		AudioConfig: restAudioConfig{AudioEncoding: string(req.Encoding)},
	}
	if req.Encoding == domain.EncodingLinear16 {
		body.AudioConfig.SampleRateHertz = req.SampleRateHertz
	}

	var result restSynthesizeResponse
	if err := r.do(ctx, http.MethodPost, "/text:synthesize", body, &result); err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}
	return audio, nil
}

// Verify lists voices; an API key carries no project id.
func (r *RestClient) Verify(ctx context.Context) (string, error) {
	if _, err := r.ListVoices(ctx); err != nil {
		return "", err
	}
	return "", nil
}

func (r *RestClient) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseUrl+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", r.apiKey)

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("tts api returned non-200 status: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
