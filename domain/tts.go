package domain

import "context"

// SynthesisRequest is one provider call: a single envelope-wrapped fragment.
type SynthesisRequest struct {
	SSML            string
	Voice           Voice
	Encoding        AudioEncoding
	SampleRateHertz int
}

// SpeechProvider is the external text-to-speech service.
type SpeechProvider interface {
	ListVoices(ctx context.Context) ([]Voice, error)
	// Synthesize returns the decoded audio bytes for one request.
	Synthesize(ctx context.Context, req SynthesisRequest) ([]byte, error)
	// Verify confirms the credentials are usable and returns the project id
	// when the provider knows one.
	Verify(ctx context.Context) (string, error)
}

// SynthesizeReq is the body accepted by POST /synthesize. The short aliases
// voice and format are accepted as well.
type SynthesizeReq struct {
	Ssml        string `json:"ssml"`
	Text        string `json:"text"`
	VoiceName   string `json:"voiceName"`
	Voice       string `json:"voice"`
	AudioFormat string `json:"audioFormat"`
	Format      string `json:"format"`
}

type SynthesizeResp struct {
	Message     string `json:"message"`
	DownloadUrl string `json:"downloadUrl"`
	Chunks      int    `json:"chunks"`
	VoiceUsed   string `json:"voiceUsed"`
}

type VerifyResp struct {
	Message   string `json:"message"`
	ProjectId string `json:"projectId,omitempty"`
}

type ErrorResp struct {
	Error        string   `json:"error"`
	Hint         string   `json:"hint,omitempty"`
	SampleVoices []string `json:"sampleVoices,omitempty"`
	Details      string   `json:"details,omitempty"`
}
