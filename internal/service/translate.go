package service

import (
	"context"
	"strings"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"go.uber.org/zap"
)

const NoTextProvided = "No text provided"

type TranslateS struct {
	myMemory MyMemoryAPII
	fallback TextTranslatorI
	log      *zap.Logger
}

func NewTranslateService(myMemory MyMemoryAPII, fallback TextTranslatorI, log *zap.Logger) *TranslateS {
	return &TranslateS{myMemory: myMemory, fallback: fallback, log: log}
}

// Translate translates text in direction "en-da" (default) or "da-en". The
// translation API is tried first, the language model second.
func (t *TranslateS) Translate(ctx context.Context, text, direction string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return NoTextProvided, nil
	}

	var source, target string
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "en-da":
		source, target = "en", "da"
	case "da-en":
		source, target = "da", "en"
	default:
		return "", apperr.NewValidation("unsupported translation direction")
	}

	res, err := t.myMemory.Translate(ctx, text, source, target)
	switch {
	case err != nil:
		t.log.Warn("translation api failed", zap.String("langpair", source+"|"+target), zap.Error(err))
	case res.Error != "":
		t.log.Warn("translation api refused", zap.String("langpair", source+"|"+target), zap.String("details", res.Error))
	case res.Text != "":
		return res.Text, nil
	}

	translated, err := t.fallback.TranslateText(ctx, text, target)
	if err != nil || strings.TrimSpace(translated) == "" {
		t.log.Error("translation fallback failed", zap.String("langpair", source+"|"+target), zap.Error(err))
		return "", apperr.NewGenerationUnavailable("translation service unavailable")
	}
	return strings.TrimSpace(translated), nil
}
