package service

import (
	"context"

	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/practice"
	"go.uber.org/zap"
)

type ExampleGeneratorI interface {
	GenerateExamplePair(ctx context.Context, text, translation string, avoid []string) (models.Example, error)
}

type DistractorGeneratorI interface {
	GenerateDistractors(ctx context.Context, text, translation string) (models.DistractorSet, error)
}

type MyMemoryAPII interface {
	Translate(ctx context.Context, text, source, target string) (models.MyMemoryTranslationResult, error)
}

type TextTranslatorI interface {
	TranslateText(ctx context.Context, text, target string) (string, error)
}

type APII interface {
	ExampleGeneratorI
	DistractorGeneratorI
	MyMemoryAPII
	TextTranslatorI
}

type RepositoryI interface {
	EntryRI
	ExerciseRI
	UserRI
	TransferRI
}

type MetricsI interface {
	ObserveGeneration(outcome string)
	IncClozeFallback()
	IncCASConflict()
	IncExercises()
}

type Service struct {
	*EntryS
	*ExampleS
	*PracticeS
	*ProgressS
	*UserS
	*TranslateS
	*TransferS
}

func InitServices(api APII, repo RepositoryI, metrics MetricsI, cfg config.Config, log *zap.Logger) *Service {
	mode, err := practice.ParseDedupMode(cfg.Examples.DedupMode)
	if err != nil {
		log.Warn("unknown dedup mode, using either", zap.Error(err))
	}

	examples := NewExampleService(api, repo, metrics, ExampleOptions{
		MaxAttempts: cfg.Examples.MaxAttempts,
		MaxKeep:     cfg.Examples.MaxKeep,
		DedupMode:   mode,
	}, log)

	return &Service{
		EntryS:     NewEntryService(repo, examples.dedup, log),
		ExampleS:   examples,
		PracticeS:  NewPracticeService(examples, api, metrics, cfg.Examples.ClozeMaxKeep, log),
		ProgressS:  NewProgressService(repo, repo, metrics, cfg.Progress, log),
		UserS:      NewUserService(repo, log),
		TranslateS: NewTranslateService(api, api, log),
		TransferS:  NewTransferService(repo, log),
	}
}
