package usecase

import (
	"bytes"

	"ttsserver/domain"
	"ttsserver/usecase/utils"
)

// Assemble merges per-fragment audio in order. Compressed streams are simply
// concatenated. Linear PCM is concatenated as raw samples and gets exactly one
// header sized for the whole payload; a container the provider put around a
// fragment is dropped first.
func Assemble(buffers [][]byte, encoding domain.AudioEncoding, format utils.WavFormat) ([]byte, error) {
	if encoding.Compressed() {
		var out bytes.Buffer
		for _, b := range buffers {
			out.Write(b)
		}
		return out.Bytes(), nil
	}

	var pcm bytes.Buffer
	for _, b := range buffers {
		payload, _ := utils.StripWavContainer(b)
		pcm.Write(payload)
	}
	var out bytes.Buffer
	out.Grow(utils.WavHeaderSize + pcm.Len())
	if err := utils.WriteWavHeader(&out, format, int64(pcm.Len())); err != nil {
		return nil, err
	}
	out.Write(pcm.Bytes())
	return out.Bytes(), nil
}
