package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTextRequired    = errors.New("SSML text is required")
	ErrEmptyInput      = errors.New("input too small after processing")
	ErrNoVoices        = errors.New("no voices available from provider")
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFileName = errors.New("invalid file name")
)

// VoiceNotFoundError is returned for a requested voice the catalog does not know.
type VoiceNotFoundError struct {
	Name   string
	Sample []string
}

func (e *VoiceNotFoundError) Error() string {
	return fmt.Sprintf("Requested voice '%s' not found.", e.Name)
}

// IsValidation reports whether err is caused by bad client input.
func IsValidation(err error) bool {
	var vnf *VoiceNotFoundError
	return errors.Is(err, ErrTextRequired) || errors.Is(err, ErrEmptyInput) || errors.As(err, &vnf)
}
