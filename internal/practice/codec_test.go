package practice

import (
	"testing"

	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		notes string
		want  []models.Example
	}{
		{
			name:  "empty notes",
			notes: "",
			want:  []models.Example{},
		},
		{
			name:  "malformed json",
			notes: "{not json",
			want:  []models.Example{},
		},
		{
			name:  "json array is not a document",
			notes: `[{"danish":"Hej"}]`,
			want:  []models.Example{},
		},
		{
			name:  "canonical list",
			notes: `{"examples":[{"danish":"Jeg løber.","english":"I run."},{"danish":"Hun løber.","english":"She runs."}]}`,
			want: []models.Example{
				{Danish: "Jeg løber.", English: "I run."},
				{Danish: "Hun løber.", English: "She runs."},
			},
		},
		{
			name:  "canonical list with legacy item keys and junk items",
			notes: `{"examples":[{"example_da":" Jeg løber. ","example_en":"I run."},"junk",42,{"danish":"","english":""}]}`,
			want: []models.Example{
				{Danish: "Jeg løber.", English: "I run."},
			},
		},
		{
			name:  "canonical list keeps one-sided examples",
			notes: `{"examples":[{"danish":"Kun dansk"},{"english":"Only English"}]}`,
			want: []models.Example{
				{Danish: "Kun dansk"},
				{English: "Only English"},
			},
		},
		{
			name:  "canonical list drops duplicates",
			notes: `{"examples":[{"danish":"Jeg løber.","english":"I run."},{"danish":"jeg  LØBER.","english":"Something else."}]}`,
			want: []models.Example{
				{Danish: "Jeg løber.", English: "I run."},
			},
		},
		{
			name:  "legacy example_da/example_en object",
			notes: `{"example_da":"Jeg løber hver morgen.","example_en":"I run every morning."}`,
			want: []models.Example{
				{Danish: "Jeg løber hver morgen.", English: "I run every morning."},
			},
		},
		{
			name:  "legacy danish/english object",
			notes: `{"danish":"Jeg løber hver morgen.","english":"I run every morning."}`,
			want: []models.Example{
				{Danish: "Jeg løber hver morgen.", English: "I run every morning."},
			},
		},
		{
			name:  "empty examples list falls back to legacy keys",
			notes: `{"examples":[],"example_da":"Hej","example_en":"Hi"}`,
			want: []models.Example{
				{Danish: "Hej", English: "Hi"},
			},
		},
		{
			name:  "legacy object with blank sentences",
			notes: `{"example_da":"  ","example_en":""}`,
			want:  []models.Example{},
		},
		{
			name:  "non-string values count as empty",
			notes: `{"example_da":12,"example_en":"Twelve"}`,
			want: []models.Example{
				{English: "Twelve"},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DecodeExamples(tt.notes))
		})
	}
}

func TestEncodeExamples(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{"examples":[]}`, EncodeExamples(nil))
	assert.JSONEq(t,
		`{"examples":[{"danish":"Jeg løber.","english":"I run."}]}`,
		EncodeExamples([]models.Example{{Danish: "Jeg løber.", English: "I run."}}),
	)
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	examples := []models.Example{
		{Danish: "Jeg løber hver morgen.", English: "I run every morning."},
		{Danish: "Vi løber sammen.", English: "We run together."},
		{Danish: "Kun dansk"},
	}

	assert.Equal(t, examples, DecodeExamples(EncodeExamples(examples)))
}

func TestLegacyNormalizesOnReencode(t *testing.T) {
	t.Parallel()

	legacy := `{"example_da":"Jeg løber.","example_en":"I run."}`
	decoded := DecodeExamples(legacy)
	require.Len(t, decoded, 1)

	modern := `{"examples":[{"danish":"Jeg løber.","english":"I run."}]}`
	assert.JSONEq(t, modern, EncodeExamples(decoded))
	assert.Equal(t, DecodeExamples(modern), decoded)
}
