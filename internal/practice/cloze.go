package practice

import (
	"regexp"
	"strings"
)

// ClozeBlank replaces the target phrase in a cloze prompt.
const ClozeBlank = "_____"

// MaskCloze blanks the first case-insensitive occurrence of target in
// sentence. When target does not occur the blank is put in front of the
// sentence, so a prompt exists whenever the sentence is non-empty.
func MaskCloze(sentence, target string) string {
	sentence = strings.TrimSpace(sentence)
	target = strings.TrimSpace(target)
	if sentence == "" {
		return ""
	}
	if target == "" {
		return sentence
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(target))
	loc := re.FindStringIndex(sentence)
	if loc == nil {
		return ClozeBlank + " " + sentence
	}
	return sentence[:loc[0]] + ClozeBlank + sentence[loc[1]:]
}

// CheckClozeAnswer compares a learner's answer with the expected phrase,
// ignoring case and surrounding or repeated whitespace.
func CheckClozeAnswer(expected, given string) bool {
	want := NormalizeSentence(expected)
	return want != "" && want == NormalizeSentence(given)
}
