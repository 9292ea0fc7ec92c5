package service

import (
	"context"
	crypto "crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strings"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/practice"
	"go.uber.org/zap"
)

const (
	defaultClozeMaxKeep = 5
	flashcardOptions    = 4
)

type PracticeS struct {
	examples     *ExampleS
	distractors  DistractorGeneratorI
	metrics      MetricsI
	clozeMaxKeep int
	log          *zap.Logger
}

func NewPracticeService(examples *ExampleS, distractors DistractorGeneratorI, metrics MetricsI, clozeMaxKeep int, log *zap.Logger) *PracticeS {
	if clozeMaxKeep <= 0 {
		clozeMaxKeep = defaultClozeMaxKeep
	}
	return &PracticeS{
		examples:     examples,
		distractors:  distractors,
		metrics:      metrics,
		clozeMaxKeep: clozeMaxKeep,
		log:          log,
	}
}

// BuildCloze produces a fill-in-the-blank exercise from a fresh example of
// the entry. A new example is appended to the entry's stored ones. When
// generation fails a random stored example is used instead.
func (p *PracticeS) BuildCloze(ctx context.Context, userID, entryID int64) (models.Cloze, error) {
	entry, err := p.examples.entry(ctx, userID, entryID)
	if err != nil {
		return models.Cloze{}, err
	}
	if err := requireTranslated(entry); err != nil {
		return models.Cloze{}, err
	}

	existing := p.examples.dedup.Decode(entry.Notes)

	example, err := p.examples.GenerateUnique(ctx, entry, 0, true)
	if err != nil {
		return models.Cloze{}, apperr.NewCanceled(err)
	}

	if example == nil && len(existing) > 0 {
		pos, err := randomPosition(int64(len(existing)))
		if err != nil {
			p.log.Warn("crypto/rand failed, using math/rand fallback", zap.Error(err))
			pos = rand.Intn(len(existing))
		}
		p.metrics.IncClozeFallback()
		p.log.Info("using stored example for cloze", zap.Int64("entry_id", entry.ID))
		example = &existing[pos]
	}
	if example == nil {
		return models.Cloze{}, apperr.NewGenerationUnavailable("unable to create a sentence right now")
	}

	if !p.examples.dedup.IsDuplicate(existing, *example) {
		if _, err := p.examples.saveExample(ctx, entry, *example, true, p.clozeMaxKeep); err != nil {
			return models.Cloze{}, err
		}
	}

	prompt := practice.MaskCloze(example.Danish, entry.Translation)
	if prompt == "" {
		return models.Cloze{}, apperr.NewGenerationUnavailable("unable to prepare a sentence")
	}

	return models.Cloze{
		EntryID: entry.ID,
		Prompt:  prompt,
		Answer:  strings.TrimSpace(entry.Translation),
		Hint:    strings.TrimSpace(entry.Text),
	}, nil
}

// NewFlashcards builds a four-way multiple choice for the entry: its own
// text plus three generated distractors, in random order.
func (p *PracticeS) NewFlashcards(ctx context.Context, userID, entryID int64) (models.Flashcards, error) {
	entry, err := p.examples.entry(ctx, userID, entryID)
	if err != nil {
		return models.Flashcards{}, err
	}
	if err := requireTranslated(entry); err != nil {
		return models.Flashcards{}, err
	}

	text, translation := strings.TrimSpace(entry.Text), strings.TrimSpace(entry.Translation)

	set, err := p.distractors.GenerateDistractors(ctx, text, translation)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Flashcards{}, apperr.NewCanceled(ctxErr)
		}
		p.log.Error("failed to generate distractors", zap.Int64("entry_id", entry.ID), zap.Error(err))
		return models.Flashcards{}, apperr.NewGenerationUnavailable("unable to prepare flashcards right now")
	}

	options := make([]models.FlashcardOption, 0, flashcardOptions)
	options = append(options, models.FlashcardOption{
		ID:        fmt.Sprintf("entry-%d", entry.ID),
		Label:     text,
		IsCorrect: true,
		Metadata:  models.FlashcardMeta{Translation: translation, Source: "saved"},
	})
	for i, d := range set.Distractors {
		label := strings.TrimSpace(d.Text)
		if label == "" || strings.EqualFold(label, text) {
			continue
		}
		options = append(options, models.FlashcardOption{
			ID:    fmt.Sprintf("distractor-%d", i),
			Label: label,
			Metadata: models.FlashcardMeta{
				Translation: strings.TrimSpace(d.Translation),
				Note:        strings.TrimSpace(d.Note),
				Source:      "ai",
			},
		})
	}
	if len(options) < flashcardOptions {
		return models.Flashcards{}, apperr.NewGenerationUnavailable("unable to prepare enough flashcards")
	}

	if err := shuffle(options); err != nil {
		p.log.Warn("crypto/rand failed, keeping option order", zap.Error(err))
	}

	return models.Flashcards{
		EntryID:      entry.ID,
		Prompt:       translation,
		PartOfSpeech: set.PartOfSpeech,
		TargetText:   text,
		Options:      options,
	}, nil
}

func shuffle(options []models.FlashcardOption) error {
	for i := len(options) - 1; i > 0; i-- {
		j, err := randomPosition(int64(i + 1))
		if err != nil {
			return err
		}
		options[i], options[j] = options[j], options[i]
	}
	return nil
}

func randomPosition(max int64) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be greater than 0")
	}

	n, err := crypto.Int(crypto.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}

	return int(n.Int64()), nil
}
