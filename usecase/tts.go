package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"ttsserver/config"
	"ttsserver/domain"
	"ttsserver/pkg/log"
	"ttsserver/repo"
	"ttsserver/usecase/utils"
)

// SynthesizeInput is the already-decoded client request.
type SynthesizeInput struct {
	Ssml        string
	Text        string
	VoiceName   string
	AudioFormat string
}

type SynthesizeOutput struct {
	FileName  string
	Chunks    int
	VoiceUsed string
	Encoding  domain.AudioEncoding
}

// TtsUsecase 提供文本转语音服务
type TtsUsecase struct {
	l        *log.Logger
	synth    *Synthesizer
	catalog  *repo.VoiceCatalog
	provider domain.SpeechProvider
	store    domain.AudioStore

	maxChunkBytes int
	format        utils.WavFormat
	newID         func() (uuid.UUID, error)
}

func NewTtsUsecase(l *log.Logger, c *config.Config, synth *Synthesizer, catalog *repo.VoiceCatalog, provider domain.SpeechProvider, store domain.AudioStore) *TtsUsecase {
	return &TtsUsecase{
		l:             l.WithModule("TtsUsecase"),
		synth:         synth,
		catalog:       catalog,
		provider:      provider,
		store:         store,
		maxChunkBytes: c.Tts.MaxChunkBytes,
		format: utils.WavFormat{
			SampleRate: c.Tts.SampleRate,
			Channels:   c.Tts.Channels,
			BitDepth:   c.Tts.BitDepth,
		},
		newID: uuid.NewV7,
	}
}

// Synthesize runs the whole pipeline for one request: normalize, resolve the
// voice, chunk, synthesize each fragment, assemble and save to scratch.
func (t *TtsUsecase) Synthesize(ctx context.Context, in SynthesizeInput) (*SynthesizeOutput, error) {
	var markup string
	switch {
	case in.Ssml != "":
		markup = utils.NormalizeEnvelope(in.Ssml)
	case in.Text != "":
		markup = utils.EscapeText(in.Text)
	default:
		return nil, domain.ErrTextRequired
	}

	voice, err := t.synth.ResolveVoice(in.VoiceName)
	if err != nil {
		return nil, err
	}
	encoding := domain.ParseAudioEncoding(in.AudioFormat)

	fragments, err := utils.Chunk(markup, t.maxChunkBytes)
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		return nil, domain.ErrEmptyInput
	}
	t.l.Info("synthesizing",
		log.String("voice", voice.Name),
		log.String("encoding", string(encoding)),
		log.Int("chunks", len(fragments)),
	)

	buffers, err := t.synth.Synthesize(ctx, fragments, voice, encoding)
	if err != nil {
		return nil, err
	}
	audio, err := Assemble(buffers, encoding, t.format)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble audio: %w", err)
	}

	id, err := t.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate file id: %w", err)
	}
	name := fmt.Sprintf("tts_%s.%s", id, encoding.Extension())
	if err := t.store.Save(ctx, name, audio); err != nil {
		return nil, fmt.Errorf("failed to save audio: %w", err)
	}
	t.l.Info("audio saved", log.String("file", name), log.Int("bytes", len(audio)))

	return &SynthesizeOutput{
		FileName:  name,
		Chunks:    len(fragments),
		VoiceUsed: voice.Name,
		Encoding:  encoding,
	}, nil
}

func (t *TtsUsecase) ListVoices() []domain.Voice {
	return t.catalog.List()
}

// Verify checks the provider credentials.
func (t *TtsUsecase) Verify(ctx context.Context) (string, error) {
	return t.provider.Verify(ctx)
}

// Open returns a previously saved scratch file for download.
func (t *TtsUsecase) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	return t.store.Open(ctx, name)
}
