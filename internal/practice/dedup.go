package practice

import (
	"fmt"
	"strings"

	"github.com/DanRulev/ordkort.git/internal/models"
)

// DedupMode selects when two examples count as the same.
type DedupMode int

const (
	// DedupEither treats examples as duplicates when either normalized
	// sentence matches.
	DedupEither DedupMode = iota
	// DedupBoth requires both normalized sentences to match.
	DedupBoth
)

func ParseDedupMode(s string) (DedupMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "either":
		return DedupEither, nil
	case "both":
		return DedupBoth, nil
	default:
		return DedupEither, fmt.Errorf("unknown dedup mode %q", s)
	}
}

// NormalizeSentence lowercases s, trims it and collapses whitespace runs.
func NormalizeSentence(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

type Deduplicator struct {
	mode DedupMode
}

func NewDeduplicator(mode DedupMode) Deduplicator {
	return Deduplicator{mode: mode}
}

type exampleKey struct {
	danish  string
	english string
}

func keyOf(ex models.Example) exampleKey {
	return exampleKey{danish: NormalizeSentence(ex.Danish), english: NormalizeSentence(ex.English)}
}

type seenSet struct {
	mode    DedupMode
	danish  map[string]struct{}
	english map[string]struct{}
	pairs   map[exampleKey]struct{}
}

func newSeenSet(mode DedupMode, size int) *seenSet {
	return &seenSet{
		mode:    mode,
		danish:  make(map[string]struct{}, size),
		english: make(map[string]struct{}, size),
		pairs:   make(map[exampleKey]struct{}, size),
	}
}

func (s *seenSet) contains(k exampleKey) bool {
	if s.mode == DedupBoth {
		_, ok := s.pairs[k]
		return ok
	}
	if k.danish != "" {
		if _, ok := s.danish[k.danish]; ok {
			return true
		}
	}
	if k.english != "" {
		if _, ok := s.english[k.english]; ok {
			return true
		}
	}
	return false
}

func (s *seenSet) add(k exampleKey) {
	s.pairs[k] = struct{}{}
	if k.danish != "" {
		s.danish[k.danish] = struct{}{}
	}
	if k.english != "" {
		s.english[k.english] = struct{}{}
	}
}

// Dedup drops later duplicates and keeps the first occurrence, preserving
// order. Only kept examples contribute keys, which makes Dedup idempotent.
func (d Deduplicator) Dedup(examples []models.Example) []models.Example {
	seen := newSeenSet(d.mode, len(examples))
	unique := make([]models.Example, 0, len(examples))
	for _, ex := range examples {
		k := keyOf(ex)
		if seen.contains(k) {
			continue
		}
		seen.add(k)
		unique = append(unique, ex)
	}
	return unique
}

// IsDuplicate reports whether candidate collides with any of existing.
func (d Deduplicator) IsDuplicate(existing []models.Example, candidate models.Example) bool {
	k := keyOf(candidate)
	if k.danish == "" && k.english == "" {
		return false
	}
	seen := newSeenSet(d.mode, len(existing))
	for _, ex := range existing {
		seen.add(keyOf(ex))
	}
	return seen.contains(k)
}

func DedupExamples(examples []models.Example) []models.Example {
	return Deduplicator{}.Dedup(examples)
}

func IsDuplicate(existing []models.Example, candidate models.Example) bool {
	return Deduplicator{}.IsDuplicate(existing, candidate)
}

// MergeExample adds ex to the stored list (or replaces the list when
// appendMode is false), deduplicates and keeps the most recent maxKeep
// examples. maxKeep <= 0 keeps everything.
func (d Deduplicator) MergeExample(existing []models.Example, ex models.Example, appendMode bool, maxKeep int) []models.Example {
	current := make([]models.Example, 0, len(existing)+1)
	if appendMode {
		current = append(current, existing...)
	}
	current = append(current, ex)

	unique := d.Dedup(current)
	if maxKeep > 0 && len(unique) > maxKeep {
		unique = unique[len(unique)-maxKeep:]
	}
	return unique
}
