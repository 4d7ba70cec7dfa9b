package utils

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

var mono24k = WavFormat{SampleRate: 24000, Channels: 1, BitDepth: 16}

func TestWriteWavHeaderLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWavHeader(&buf, mono24k, 4800); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := buf.Bytes()
	if len(h) != WavHeaderSize {
		t.Fatalf("expected %d header bytes, got %d", WavHeaderSize, len(h))
	}
	le32 := func(off int) uint32 { return binary.LittleEndian.Uint32(h[off:]) }
	le16 := func(off int) uint16 { return binary.LittleEndian.Uint16(h[off:]) }

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"riff", string(h[0:4]), "RIFF"},
		{"riff size", le32(4), uint32(36 + 4800)},
		{"wave", string(h[8:12]), "WAVE"},
		{"fmt", string(h[12:16]), "fmt "},
		{"fmt size", le32(16), uint32(16)},
		{"pcm", le16(20), uint16(1)},
		{"channels", le16(22), uint16(1)},
		{"sample rate", le32(24), uint32(24000)},
		{"byte rate", le32(28), uint32(48000)},
		{"block align", le16(32), uint16(2)},
		{"bit depth", le16(34), uint16(16)},
		{"data", string(h[36:40]), "data"},
		{"data size", le32(40), uint32(4800)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestWriteWavHeaderStereo(t *testing.T) {
	var buf bytes.Buffer
	f := WavFormat{SampleRate: 44100, Channels: 2, BitDepth: 16}
	if err := WriteWavHeader(&buf, f, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := buf.Bytes()
	if got := binary.LittleEndian.Uint32(h[28:]); got != 44100*4 {
		t.Fatalf("unexpected byte rate %d", got)
	}
	if got := binary.LittleEndian.Uint16(h[32:]); got != 4 {
		t.Fatalf("unexpected block align %d", got)
	}
	if got := binary.LittleEndian.Uint32(h[4:]); got != 36 {
		t.Fatalf("unexpected riff size for empty payload %d", got)
	}
}

func TestWriteWavHeaderRejects(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWavHeader(&buf, WavFormat{SampleRate: 24000, Channels: 1, BitDepth: 12}, 10); err == nil {
		t.Fatal("expected error for non byte aligned bit depth")
	}
	if err := WriteWavHeader(&buf, mono24k, math.MaxUint32); !errors.Is(err, ErrAudioTooLarge) {
		t.Fatalf("expected ErrAudioTooLarge, got %v", err)
	}
}

func TestStripWavContainer(t *testing.T) {
	pcm := []byte{1, 2, 3, 4, 5, 6}
	var file bytes.Buffer
	if err := WriteWavHeader(&file, mono24k, int64(len(pcm))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	file.Write(pcm)

	got, ok := StripWavContainer(file.Bytes())
	if !ok || !bytes.Equal(got, pcm) {
		t.Fatalf("expected payload %v, got %v (ok=%v)", pcm, got, ok)
	}

	raw := []byte{9, 8, 7}
	got, ok = StripWavContainer(raw)
	if ok || !bytes.Equal(got, raw) {
		t.Fatalf("raw samples should pass through, got %v (ok=%v)", got, ok)
	}
}

func TestStripWavContainerSkipsExtraChunks(t *testing.T) {
	pcm := []byte{10, 20, 30, 40}
	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(0))
	b.WriteString("WAVE")
	b.WriteString("LIST")
	binary.Write(&b, binary.LittleEndian, uint32(3))
	b.Write([]byte{0, 0, 0, 0}) // 3 bytes + pad
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(math.MaxUint32))
	b.Write(pcm)

	got, ok := StripWavContainer(b.Bytes())
	if !ok || !bytes.Equal(got, pcm) {
		t.Fatalf("expected %v, got %v (ok=%v)", pcm, got, ok)
	}
}
