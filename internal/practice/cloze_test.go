package practice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCloze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence string
		target   string
		want     string
	}{
		{name: "found", sentence: "Jeg kan se en hund", target: "hund", want: "Jeg kan se en _____"},
		{name: "not found", sentence: "Jeg ser en kat", target: "hund", want: "_____ Jeg ser en kat"},
		{name: "case insensitive", sentence: "Hund er glad", target: "hund", want: "_____ er glad"},
		{name: "only first occurrence", sentence: "en hund og en hund", target: "hund", want: "en _____ og en hund"},
		{name: "multi word phrase", sentence: "Han gik i seng sent.", target: "gik i seng", want: "Han _____ sent."},
		{name: "regex metacharacters are literal", sentence: "Hvad koster det (ca.)?", target: "(ca.)", want: "Hvad koster det _____?"},
		{name: "non ascii case folding", sentence: "Løbe er sundt", target: "løbe", want: "_____ er sundt"},
		{name: "empty sentence", sentence: "  ", target: "hund", want: ""},
		{name: "empty target", sentence: " Jeg ser en kat ", target: "", want: "Jeg ser en kat"},
		{name: "trimmed inputs", sentence: " Jeg kan se en hund ", target: " hund ", want: "Jeg kan se en _____"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MaskCloze(tt.sentence, tt.target))
		})
	}
}

func TestCheckClozeAnswer(t *testing.T) {
	t.Parallel()

	assert.True(t, CheckClozeAnswer("løbe", " Løbe "))
	assert.True(t, CheckClozeAnswer("gå i seng", "gå  i SENG"))
	assert.False(t, CheckClozeAnswer("løbe", "gå"))
	assert.False(t, CheckClozeAnswer("", ""))
}
