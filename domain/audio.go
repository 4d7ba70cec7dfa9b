package domain

import (
	"context"
	"io"
	"strings"
)

// AudioEncoding is the provider output format.
type AudioEncoding string

const (
	EncodingMP3      AudioEncoding = "MP3"
	EncodingLinear16 AudioEncoding = "LINEAR16"
)

// ParseAudioEncoding maps a client format name to an encoding. WAV and
// LINEAR16 (any case) select uncompressed output, everything else MP3.
func ParseAudioEncoding(format string) AudioEncoding {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "WAV", "LINEAR16":
		return EncodingLinear16
	default:
		return EncodingMP3
	}
}

func (e AudioEncoding) Compressed() bool {
	return e != EncodingLinear16
}

func (e AudioEncoding) Extension() string {
	if e == EncodingLinear16 {
		return "wav"
	}
	return "mp3"
}

func (e AudioEncoding) ContentType() string {
	if e == EncodingLinear16 {
		return "audio/wav"
	}
	return "audio/mpeg"
}

// ContentTypeForFile picks the content type from a scratch file name.
func ContentTypeForFile(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".wav") {
		return EncodingLinear16.ContentType()
	}
	return EncodingMP3.ContentType()
}

// AudioStore is the scratch storage that synthesized files are written to and
// served from.
type AudioStore interface {
	Save(ctx context.Context, name string, data []byte) error
	// Open returns the stored file and its size, or ErrFileNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
}
