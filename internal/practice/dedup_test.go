package practice

import (
	"testing"

	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSentence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jeg løber hver morgen.", NormalizeSentence("  Jeg   LØBER\thver\nmorgen. "))
	assert.Equal(t, "", NormalizeSentence(" \t "))
}

func TestDedupExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []models.Example
		want  []models.Example
	}{
		{
			name:  "empty",
			input: nil,
			want:  []models.Example{},
		},
		{
			name: "first occurrence wins on danish match",
			input: []models.Example{
				{Danish: "Jeg løber.", English: "I run."},
				{Danish: "Hun går.", English: "She walks."},
				{Danish: " jeg LØBER. ", English: "I am running."},
			},
			want: []models.Example{
				{Danish: "Jeg løber.", English: "I run."},
				{Danish: "Hun går.", English: "She walks."},
			},
		},
		{
			name: "english match alone is a duplicate",
			input: []models.Example{
				{Danish: "Jeg løber.", English: "I run."},
				{Danish: "Jeg spurter.", English: "i  run."},
			},
			want: []models.Example{
				{Danish: "Jeg løber.", English: "I run."},
			},
		},
		{
			name: "empty fields never match",
			input: []models.Example{
				{Danish: "Hej"},
				{Danish: "Farvel"},
				{English: "Hi"},
				{English: "Bye"},
			},
			want: []models.Example{
				{Danish: "Hej"},
				{Danish: "Farvel"},
				{English: "Hi"},
				{English: "Bye"},
			},
		},
		{
			name: "dropped items do not block later ones",
			input: []models.Example{
				{Danish: "A", English: "1"},
				{Danish: "A", English: "2"},
				{Danish: "B", English: "2"},
			},
			want: []models.Example{
				{Danish: "A", English: "1"},
				{Danish: "B", English: "2"},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DedupExamples(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, DedupExamples(got), "dedup must be idempotent")
		})
	}
}

func TestDeduplicator_BothMode(t *testing.T) {
	t.Parallel()

	d := NewDeduplicator(DedupBoth)
	input := []models.Example{
		{Danish: "Jeg løber.", English: "I run."},
		{Danish: "Jeg løber.", English: "I am running."},
		{Danish: "JEG løber.", English: "i run."},
	}

	got := d.Dedup(input)
	assert.Equal(t, input[:2], got)
	assert.True(t, d.IsDuplicate(input[:1], models.Example{Danish: "jeg løber.", English: "I RUN."}))
	assert.False(t, d.IsDuplicate(input[:1], models.Example{Danish: "jeg løber.", English: "Running."}))
}

func TestIsDuplicate(t *testing.T) {
	t.Parallel()

	existing := []models.Example{
		{Danish: "Jeg løber hver morgen.", English: "I run every morning."},
		{Danish: "Kun dansk"},
	}

	tests := []struct {
		name      string
		candidate models.Example
		want      bool
	}{
		{name: "same pair", candidate: existing[0], want: true},
		{name: "danish differs only in case and spaces", candidate: models.Example{Danish: "jeg løber  hver morgen.", English: "x"}, want: true},
		{name: "english match", candidate: models.Example{Danish: "Ny sætning.", English: "I RUN every morning."}, want: true},
		{name: "fresh", candidate: models.Example{Danish: "Vi løber sammen.", English: "We run together."}, want: false},
		{name: "empty candidate", candidate: models.Example{}, want: false},
		{name: "empty english never matches", candidate: models.Example{Danish: "Andet"}, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsDuplicate(existing, tt.candidate))
		})
	}
}

func TestParseDedupMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseDedupMode("")
	require.NoError(t, err)
	assert.Equal(t, DedupEither, mode)

	mode, err = ParseDedupMode("Both")
	require.NoError(t, err)
	assert.Equal(t, DedupBoth, mode)

	_, err = ParseDedupMode("fuzzy")
	require.Error(t, err)
}

func TestMergeExample(t *testing.T) {
	t.Parallel()

	d := NewDeduplicator(DedupEither)
	existing := []models.Example{
		{Danish: "Et.", English: "One."},
		{Danish: "To.", English: "Two."},
	}
	fresh := models.Example{Danish: "Tre.", English: "Three."}

	t.Run("replace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []models.Example{fresh}, d.MergeExample(existing, fresh, false, 0))
	})

	t.Run("append", func(t *testing.T) {
		t.Parallel()
		got := d.MergeExample(existing, fresh, true, 0)
		assert.Equal(t, []models.Example{existing[0], existing[1], fresh}, got)
	})

	t.Run("append keeps most recent", func(t *testing.T) {
		t.Parallel()
		got := d.MergeExample(existing, fresh, true, 2)
		assert.Equal(t, []models.Example{existing[1], fresh}, got)
	})

	t.Run("append duplicate keeps stored copy", func(t *testing.T) {
		t.Parallel()
		got := d.MergeExample(existing, models.Example{Danish: "et.", English: "Uno."}, true, 0)
		assert.Equal(t, existing, got)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()
		in := append([]models.Example(nil), existing...)
		_ = d.MergeExample(in, fresh, true, 1)
		assert.Equal(t, existing, in)
	})
}

func TestDeduplicator_Decode(t *testing.T) {
	t.Parallel()

	notes := `{"examples":[{"danish":"Jeg løber.","english":"I run."},{"danish":"Jeg løber.","english":"I am running."}]}`

	assert.Len(t, NewDeduplicator(DedupEither).Decode(notes), 1)
	assert.Len(t, NewDeduplicator(DedupBoth).Decode(notes), 2)
	assert.Len(t, DecodeExamples(notes), 1)
}
