package gcloud

import (
	"context"
	"fmt"
	"os"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/pkg/log"
)

// Client talks to Google Cloud Text-to-Speech over gRPC with a service
// account (GOOGLE_APPLICATION_CREDENTIALS) or application default credentials.
type Client struct {
	tts             *texttospeech.Client
	credentialsFile string
	l               *log.Logger
}

func NewClient(ctx context.Context, c *config.Config, l *log.Logger) (*Client, error) {
	var opts []option.ClientOption
	if c.Google.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.Google.CredentialsFile))
	}
	tts, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tts client: %w", err)
	}
	return &Client{
		tts:             tts,
		credentialsFile: c.Google.CredentialsFile,
		l:               l.WithModule("GoogleTts"),
	}, nil
}

func (c *Client) Close() error {
	return c.tts.Close()
}

func (c *Client) ListVoices(ctx context.Context) ([]domain.Voice, error) {
	resp, err := c.tts.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list voices: %w", err)
	}
	voices := make([]domain.Voice, 0, len(resp.GetVoices()))
	for _, v := range resp.GetVoices() {
		voices = append(voices, domain.Voice{
			Name:                   v.GetName(),
			LanguageCodes:          v.GetLanguageCodes(),
			SsmlGender:             v.GetSsmlGender().String(),
			NaturalSampleRateHertz: int(v.GetNaturalSampleRateHertz()),
		})
	}
	return voices, nil
}

func (c *Client) Synthesize(ctx context.Context, req domain.SynthesisRequest) ([]byte, error) {
	audioConfig := &texttospeechpb.AudioConfig{AudioEncoding: texttospeechpb.AudioEncoding_MP3}
	if req.Encoding == domain.EncodingLinear16 {
		audioConfig.AudioEncoding = texttospeechpb.AudioEncoding_LINEAR16
		audioConfig.SampleRateHertz = int32(req.SampleRateHertz)
	}
	resp, err := c.tts.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Ssml{Ssml: req.SSML},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: req.Voice.PrimaryLanguage(),
			Name:         req.Voice.Name,
			SsmlGender:   texttospeechpb.SsmlVoiceGender(texttospeechpb.SsmlVoiceGender_value[req.Voice.Gender()]),
		},
		AudioConfig: audioConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}
	return resp.GetAudioContent(), nil
}

// Verify resolves the same credentials the client uses and fetches a token,
// which fails fast on revoked or malformed keys.
func (c *Client) Verify(ctx context.Context) (string, error) {
	var (
		creds *google.Credentials
		err   error
	)
	scopes := texttospeech.DefaultAuthScopes()
	if c.credentialsFile != "" {
		data, rerr := os.ReadFile(c.credentialsFile)
		if rerr != nil {
			return "", fmt.Errorf("failed to read credentials: %w", rerr)
		}
		creds, err = google.CredentialsFromJSON(ctx, data, scopes...)
	} else {
		creds, err = google.FindDefaultCredentials(ctx, scopes...)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load credentials: %w", err)
	}
	if _, err := creds.TokenSource.Token(); err != nil {
		return "", fmt.Errorf("failed to obtain token: %w", err)
	}
	c.l.Info("credentials verified", log.String("project", creds.ProjectID))
	return creds.ProjectID, nil
}
