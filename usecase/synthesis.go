package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/pkg/log"
	"ttsserver/repo"
	"ttsserver/usecase/utils"
)

var tracer = otel.Tracer("ttsserver/usecase")

// Synthesizer resolves voices against the catalog and sends fragments to the
// provider.
type Synthesizer struct {
	l        *log.Logger
	provider domain.SpeechProvider
	catalog  *repo.VoiceCatalog

	concurrency  int
	sampleRate   int
	languages    []string
	keyword      string
	sampleVoices int
}

func NewSynthesizer(l *log.Logger, c *config.Config, provider domain.SpeechProvider, catalog *repo.VoiceCatalog) *Synthesizer {
	concurrency := c.Tts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Synthesizer{
		l:            l.WithModule("Synthesizer"),
		provider:     provider,
		catalog:      catalog,
		concurrency:  concurrency,
		sampleRate:   c.Tts.SampleRate,
		languages:    c.Tts.PreferredLanguages,
		keyword:      c.Tts.PreferredVoiceKeyword,
		sampleVoices: c.Tts.SampleVoices,
	}
}

// ResolveVoice maps a requested name to a catalog voice. An empty name picks
// the preferred default.
func (s *Synthesizer) ResolveVoice(name string) (domain.Voice, error) {
	if strings.TrimSpace(name) == "" {
		v, ok := s.catalog.Preferred(s.languages, s.keyword)
		if !ok {
			return domain.Voice{}, domain.ErrNoVoices
		}
		return v, nil
	}
	v, ok := s.catalog.Find(name)
	if !ok {
		return domain.Voice{}, &domain.VoiceNotFoundError{Name: name, Sample: s.catalog.SampleNames(s.sampleVoices)}
	}
	return v, nil
}

// Synthesize returns one audio buffer per fragment, in fragment order. The
// first failure aborts the whole request.
func (s *Synthesizer) Synthesize(ctx context.Context, fragments []utils.Fragment, voice domain.Voice, encoding domain.AudioEncoding) ([][]byte, error) {
	ctx, span := tracer.Start(ctx, "Synthesizer.Synthesize", trace.WithAttributes(
		attribute.Int("tts.fragments", len(fragments)),
		attribute.String("tts.voice", voice.Name),
		attribute.String("tts.encoding", string(encoding)),
	))
	defer span.End()

	out := make([][]byte, len(fragments))
	if s.concurrency == 1 {
		for i, f := range fragments {
			audio, err := s.synthesizeOne(ctx, f, voice, encoding)
			if err != nil {
				span.RecordError(err)
				return nil, err
			}
			out[i] = audio
		}
		return out, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)
	for i, f := range fragments {
		i, f := i, f
		eg.Go(func() error {
			audio, err := s.synthesizeOne(egCtx, f, voice, encoding)
			if err != nil {
				return err
			}
			out[i] = audio
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

func (s *Synthesizer) synthesizeOne(ctx context.Context, f utils.Fragment, voice domain.Voice, encoding domain.AudioEncoding) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Synthesizer.fragment", trace.WithAttributes(
		attribute.Int("tts.fragment.index", f.Index),
		attribute.Int("tts.fragment.bytes", len(f.Text)),
	))
	defer span.End()

	audio, err := s.provider.Synthesize(ctx, domain.SynthesisRequest{
		SSML:            f.Text,
		Voice:           voice,
		Encoding:        encoding,
		SampleRateHertz: s.sampleRate,
	})
	if err != nil {
		s.l.Error("fragment synthesis failed", log.Int("index", f.Index), log.Error(err))
		return nil, fmt.Errorf("fragment %d: %w", f.Index, err)
	}
	s.l.Debug("fragment synthesized", log.Int("index", f.Index), log.Int("bytes", len(audio)))
	return audio, nil
}
