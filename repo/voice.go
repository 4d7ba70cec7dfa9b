package repo

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"ttsserver/domain"
	"ttsserver/pkg/log"
)

// VoiceCatalog is the provider's voice list, loaded once and read-only
// afterwards, so it can be shared across requests without locking.
type VoiceCatalog struct {
	voices []domain.Voice
	byName map[string]domain.Voice
}

// NewVoiceCatalog loads the voice list from the provider. A failed load is
// logged and leaves the catalog empty; requests then fail with ErrNoVoices.
func NewVoiceCatalog(p domain.SpeechProvider, l *log.Logger) *VoiceCatalog {
	l = l.WithModule("VoiceCatalog")
	voices, err := p.ListVoices(context.Background())
	if err != nil {
		l.Error("failed to load voices", log.Error(err))
		return NewStaticVoiceCatalog(nil)
	}
	l.Info("loaded voices", log.Int("count", len(voices)))
	return NewStaticVoiceCatalog(voices)
}

func NewStaticVoiceCatalog(voices []domain.Voice) *VoiceCatalog {
	voices = lo.Filter(voices, func(v domain.Voice, _ int) bool { return v.Name != "" })
	byName := make(map[string]domain.Voice, len(voices))
	for _, v := range voices {
		key := strings.ToLower(v.Name)
		if _, dup := byName[key]; !dup {
			byName[key] = v
		}
	}
	return &VoiceCatalog{voices: voices, byName: byName}
}

func (c *VoiceCatalog) Len() int {
	return len(c.voices)
}

// List returns a copy of all voices in provider order.
func (c *VoiceCatalog) List() []domain.Voice {
	return append([]domain.Voice(nil), c.voices...)
}

// Find matches a voice name case-insensitively.
func (c *VoiceCatalog) Find(name string) (domain.Voice, bool) {
	v, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return v, ok
}

// Preferred returns the first voice, by language preference, whose name
// contains keyword. With no match it falls back to the first voice.
func (c *VoiceCatalog) Preferred(languages []string, keyword string) (domain.Voice, bool) {
	for _, lang := range languages {
		v, ok := lo.Find(c.voices, func(v domain.Voice) bool {
			return lo.Contains(v.LanguageCodes, lang) && strings.Contains(v.Name, keyword)
		})
		if ok {
			return v, true
		}
	}
	if len(c.voices) == 0 {
		return domain.Voice{}, false
	}
	return c.voices[0], true
}

// SampleNames returns up to n voice names for error hints.
func (c *VoiceCatalog) SampleNames(n int) []string {
	names := lo.Map(c.voices, func(v domain.Voice, _ int) string { return v.Name })
	if n >= 0 && len(names) > n {
		names = names[:n]
	}
	return names
}
