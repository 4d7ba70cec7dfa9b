package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	envelopeOpen  = "<speak>"
	envelopeClose = "</speak>"
	envelopeBytes = len(envelopeOpen) + len(envelopeClose)

	// MinChunkBytes leaves room for the envelope plus one full rune.
	MinChunkBytes = envelopeBytes + utf8.UTFMax
)

var ErrChunkBudget = errors.New("chunk budget too small")

// Fragment is one provider call worth of SSML, envelope included.
type Fragment struct {
	Index int
	Text  string
}

// Content returns the fragment text without the envelope.
func (f Fragment) Content() string {
	return strings.TrimSuffix(strings.TrimPrefix(f.Text, envelopeOpen), envelopeClose)
}

// Chunk splits text into envelope-wrapped fragments of at most maxBytes bytes
// each. Sentences are packed greedily; a sentence that cannot fit on its own is
// cut between tags, entities or runes. Blank input yields no fragments.
func Chunk(text string, maxBytes int) ([]Fragment, error) {
	if maxBytes < MinChunkBytes {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrChunkBudget, maxBytes, MinChunkBytes)
	}
	c := &chunker{budget: maxBytes - envelopeBytes}

	current := ""
	for _, unit := range SplitSentences(text) {
		candidate := unit
		if current != "" {
			candidate = current + " " + unit
		}
		if len(candidate) <= c.budget {
			current = candidate
			continue
		}
		if current != "" {
			c.emit(current)
			current = ""
		}
		if len(unit) > c.budget {
			c.fill(unit)
			continue
		}
		current = unit
	}
	if current = strings.TrimSpace(current); current != "" {
		c.emit(current)
	}
	return c.out, nil
}

type chunker struct {
	budget int
	out    []Fragment
}

func (c *chunker) emit(content string) {
	c.out = append(c.out, Fragment{
		Index: len(c.out),
		Text:  envelopeOpen + content + envelopeClose,
	})
}

// fill packs the atoms of one oversized unit into as many fragments as needed.
func (c *chunker) fill(unit string) {
	var sub strings.Builder
	for _, atom := range splitAtoms(unit, c.budget) {
		if sub.Len()+len(atom) > c.budget {
			if sub.Len() > 0 {
				c.emit(sub.String())
			}
			sub.Reset()
		}
		sub.WriteString(atom)
	}
	if sub.Len() > 0 {
		c.emit(sub.String())
	}
}

// SplitSentences trims text and cuts it after '.', '?' or '!' when followed by
// whitespace. The whitespace between units is dropped.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var units []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '?' && r != '!' {
			continue
		}
		end := i
		for i < len(text) {
			ws, n := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(ws) {
				break
			}
			i += n
		}
		if i > end {
			units = append(units, text[start:end])
			start = i
		}
	}
	if start < len(text) {
		units = append(units, text[start:])
	}
	return units
}

// splitAtoms cuts s into pieces that must stay together: a markup tag, a
// character entity or a single rune. Tags longer than limit decay into runes.
func splitAtoms(s string, limit int) []string {
	var atoms []string
	for i := 0; i < len(s); {
		if n := atomLen(s[i:]); n > 0 && n <= limit {
			atoms = append(atoms, s[i:i+n])
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		atoms = append(atoms, s[i:i+size])
		i += size
	}
	return atoms
}

const maxEntityLen = 12

func atomLen(s string) int {
	switch s[0] {
	case '<':
		if end := strings.IndexByte(s, '>'); end > 0 && !strings.ContainsRune(s[1:end], '<') {
			return end + 1
		}
	case '&':
		end := strings.IndexByte(s, ';')
		if end > 1 && end < maxEntityLen && !strings.ContainsFunc(s[1:end], unicode.IsSpace) {
			return end + 1
		}
	}
	return 0
}
