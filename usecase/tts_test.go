package usecase

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"ttsserver/domain"
	"ttsserver/usecase/utils"
)

func TestTtsSynthesizeShortMp3IsVerbatim(t *testing.T) {
	p := &fakeProvider{audioFor: func(domain.SynthesisRequest) ([]byte, error) {
		return []byte("ID3-provider-bytes"), nil
	}}
	uc, store := newTestUsecase(testConfig(), p)

	out, err := uc.Synthesize(context.Background(), SynthesizeInput{Ssml: "<speak>Hello world.</speak>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Chunks != 1 || out.Encoding != domain.EncodingMP3 {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.VoiceUsed != "en-IN-Wavenet-A" {
		t.Fatalf("expected default voice, got %q", out.VoiceUsed)
	}
	if !strings.HasPrefix(out.FileName, "tts_") || !strings.HasSuffix(out.FileName, ".mp3") {
		t.Fatalf("unexpected file name %q", out.FileName)
	}
	if got := string(store.files[out.FileName]); got != "ID3-provider-bytes" {
		t.Fatalf("expected provider bytes verbatim, got %q", got)
	}
	if p.requests[0].SSML != "<speak>Hello world.</speak>" {
		t.Fatalf("expected re-wrapped fragment, got %q", p.requests[0].SSML)
	}
}

func TestTtsSynthesizeWavAddsOneHeader(t *testing.T) {
	c := testConfig()
	c.Tts.MaxChunkBytes = 19
	p := &fakeProvider{audioFor: func(domain.SynthesisRequest) ([]byte, error) {
		return []byte{1, 0, 2, 0}, nil
	}}
	uc, store := newTestUsecase(c, p)

	out, err := uc.Synthesize(context.Background(), SynthesizeInput{Ssml: "A. B. C.", AudioFormat: "wav", VoiceName: "en-us-standard-a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Chunks != 3 || !strings.HasSuffix(out.FileName, ".wav") {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.VoiceUsed != "en-US-Standard-A" {
		t.Fatalf("expected canonical voice name, got %q", out.VoiceUsed)
	}
	file := store.files[out.FileName]
	if len(file) != utils.WavHeaderSize+12 {
		t.Fatalf("unexpected file length %d", len(file))
	}
	if binary.LittleEndian.Uint32(file[4:]) != 36+12 || binary.LittleEndian.Uint32(file[40:]) != 12 {
		t.Fatalf("bad size fields in header %v", file[:utils.WavHeaderSize])
	}
	for _, req := range p.requests {
		if req.Encoding != domain.EncodingLinear16 {
			t.Fatalf("expected LINEAR16 requests, got %q", req.Encoding)
		}
	}
}

func TestTtsSynthesizeValidation(t *testing.T) {
	tests := []struct {
		name string
		in   SynthesizeInput
		want error
	}{
		{"missing text", SynthesizeInput{}, domain.ErrTextRequired},
		{"empty envelope", SynthesizeInput{Ssml: "<speak>   </speak>"}, domain.ErrEmptyInput},
		{"blank plain text", SynthesizeInput{Text: "  \n "}, domain.ErrEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{}
			uc, _ := newTestUsecase(testConfig(), p)
			_, err := uc.Synthesize(context.Background(), tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if p.calls() != 0 {
				t.Fatalf("provider must not be called, got %d calls", p.calls())
			}
		})
	}
}

func TestTtsSynthesizeUnknownVoiceSkipsProvider(t *testing.T) {
	p := &fakeProvider{}
	uc, store := newTestUsecase(testConfig(), p)
	_, err := uc.Synthesize(context.Background(), SynthesizeInput{Ssml: "Hi.", VoiceName: "nope"})
	var vnf *domain.VoiceNotFoundError
	if !errors.As(err, &vnf) {
		t.Fatalf("expected VoiceNotFoundError, got %v", err)
	}
	if p.calls() != 0 || len(store.files) != 0 {
		t.Fatalf("expected no provider calls and no files")
	}
}

func TestTtsSynthesizePlainTextIsEscaped(t *testing.T) {
	p := &fakeProvider{}
	uc, _ := newTestUsecase(testConfig(), p)
	if _, err := uc.Synthesize(context.Background(), SynthesizeInput{Text: "Fish & chips <cheap>."}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.requests[0].SSML; got != "<speak>Fish &amp; chips &lt;cheap&gt;.</speak>" {
		t.Fatalf("unexpected ssml %q", got)
	}
}

func TestTtsSynthesizeProviderFailure(t *testing.T) {
	p := &fakeProvider{audioFor: func(domain.SynthesisRequest) ([]byte, error) { return nil, errProvider }}
	uc, store := newTestUsecase(testConfig(), p)
	_, err := uc.Synthesize(context.Background(), SynthesizeInput{Ssml: "Hi."})
	if !errors.Is(err, errProvider) || domain.IsValidation(err) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if len(store.files) != 0 {
		t.Fatal("no file should be written on failure")
	}
}

func TestTtsOpenAndVerify(t *testing.T) {
	uc, store := newTestUsecase(testConfig(), &fakeProvider{})
	store.files["tts_x.mp3"] = []byte("abc")
	rc, size, err := uc.Open(context.Background(), "tts_x.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := io.ReadAll(rc)
	if string(data) != "abc" || size != 3 {
		t.Fatalf("unexpected file %q (%d)", data, size)
	}
	if _, _, err := uc.Open(context.Background(), "missing.mp3"); !errors.Is(err, domain.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if id, err := uc.Verify(context.Background()); err != nil || id != "test-project" {
		t.Fatalf("unexpected verify result %q, %v", id, err)
	}
	if len(uc.ListVoices()) != len(testVoices) {
		t.Fatal("expected catalog voices")
	}
}
