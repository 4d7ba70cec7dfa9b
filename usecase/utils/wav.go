package utils

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const WavHeaderSize = 44

var ErrAudioTooLarge = errors.New("audio payload exceeds wav size limit")

// WavFormat describes linear PCM samples.
type WavFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

func (f WavFormat) Validate() error {
	if f.SampleRate <= 0 || f.Channels <= 0 || f.BitDepth <= 0 || f.BitDepth%8 != 0 {
		return fmt.Errorf("invalid wav format %+v", f)
	}
	return nil
}

func (f WavFormat) BlockAlign() int {
	return f.Channels * f.BitDepth / 8
}

func (f WavFormat) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}

// WriteWavHeader writes the canonical 44-byte RIFF/WAVE header for dataSize
// bytes of PCM payload.
func WriteWavHeader(w io.Writer, f WavFormat, dataSize int64) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if dataSize < 0 || dataSize > math.MaxUint32-36 {
		return fmt.Errorf("%w: %d bytes", ErrAudioTooLarge, dataSize)
	}
	var header [WavHeaderSize]byte
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], uint32(36+dataSize))
	copy(header[8:], "WAVE")
	copy(header[12:], "fmt ")
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], 1)
	binary.LittleEndian.PutUint16(header[22:], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:], uint16(f.BitDepth))
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], uint32(dataSize))
	_, err := w.Write(header[:])
	return err
}

// StripWavContainer returns the data chunk payload when b is a RIFF/WAVE file.
// Anything else is returned unchanged with ok == false.
func StripWavContainer(b []byte) (payload []byte, ok bool) {
	if len(b) < 12 || !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return b, false
	}
	for off := 12; off+8 <= len(b); {
		id := b[off : off+4]
		size := int(binary.LittleEndian.Uint32(b[off+4 : off+8]))
		start := off + 8
		if bytes.Equal(id, []byte("data")) {
			end := start + size
			if size < 0 || end > len(b) {
				end = len(b)
			}
			return b[start:end], true
		}
		if size < 0 || start+size > len(b) {
			break
		}
		off = start + size + size&1
	}
	return b, false
}
