package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/practice"
	mock_service "github.com/DanRulev/ordkort.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type practiceMocks struct {
	repo    *mock_service.MockRepositoryI
	api     *mock_service.MockAPII
	metrics *mock_service.MockMetricsI
}

func newPracticeServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(practiceMocks)) *PracticeS {
	m := practiceMocks{
		repo:    mock_service.NewMockRepositoryI(ctrl),
		api:     mock_service.NewMockAPII(ctrl),
		metrics: mock_service.NewMockMetricsI(ctrl),
	}
	m.metrics.EXPECT().ObserveGeneration(gomock.Any()).AnyTimes()
	m.metrics.EXPECT().IncCASConflict().AnyTimes()
	if setupMock != nil {
		setupMock(m)
	}

	examples := NewExampleService(m.api, m.repo, m.metrics, ExampleOptions{}, zap.NewNop())
	return NewPracticeService(examples, m.api, m.metrics, 0, zap.NewNop())
}

func TestPracticeS_BuildCloze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(practiceMocks)
		assertFunc func(t *testing.T, cloze models.Cloze, err error)
	}{
		{
			name: "fresh example is masked and appended",
			f: func(m practiceMocks) {
				entry := runEntry(otherPair)
				m.repo.EXPECT().Entry(gomock.Any(), int64(1), int64(3)).Return(entry, nil)
				m.api.EXPECT().GenerateExamplePair(gomock.Any(), "run", "løbe", gomock.Any()).Return(runPair, nil)
				m.repo.EXPECT().CompareAndSwapNotes(gomock.Any(), int64(1), int64(3), entry.Notes,
					practice.EncodeExamples([]models.Example{otherPair, runPair})).Return(true, nil)
			},
			assertFunc: func(t *testing.T, cloze models.Cloze, err error) {
				require.NoError(t, err)
				assert.Equal(t, models.Cloze{
					EntryID: 3,
					Prompt:  "Jeg kan " + practice.ClozeBlank + " hurtigt.",
					Answer:  "løbe",
					Hint:    "run",
				}, cloze)
			},
		},
		{
			name: "stored example is used when generation fails",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), gomock.Any(), gomock.Any()).Return(runEntry(runPair), nil)
				m.api.EXPECT().GenerateExamplePair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Example{}, errors.New("rate limited")).Times(3)
				m.metrics.EXPECT().IncClozeFallback()
			},
			assertFunc: func(t *testing.T, cloze models.Cloze, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Jeg kan "+practice.ClozeBlank+" hurtigt.", cloze.Prompt)
			},
		},
		{
			name: "only duplicates falls back to a stored example",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), gomock.Any(), gomock.Any()).Return(runEntry(runPair), nil)
				m.api.EXPECT().GenerateExamplePair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(runPair, nil).Times(3)
				m.metrics.EXPECT().IncClozeFallback()
			},
			assertFunc: func(t *testing.T, cloze models.Cloze, err error) {
				require.NoError(t, err)
				assert.Equal(t, "løbe", cloze.Answer)
			},
		},
		{
			name: "nothing to show",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), gomock.Any(), gomock.Any()).Return(runEntry(), nil)
				m.api.EXPECT().GenerateExamplePair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Example{}, errors.New("status 502")).Times(3)
			},
			assertFunc: func(t *testing.T, cloze models.Cloze, err error) {
				assert.True(t, apperr.Is(err, apperr.CodeGenerationUnavailable))
				assert.Equal(t, "unable to create a sentence right now", apperr.MessageOf(err))
			},
		},
		{
			name: "missing translation",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Entry{ID: 3, UserID: 1, Text: "run", Translation: "  "}, nil)
			},
			assertFunc: func(t *testing.T, cloze models.Cloze, err error) {
				assert.True(t, apperr.Is(err, apperr.CodeValidation))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			cloze, err := svc.BuildCloze(context.Background(), 1, 3)
			tt.assertFunc(t, cloze, err)
		})
	}
}

func TestPracticeS_NewFlashcards(t *testing.T) {
	t.Parallel()

	distractors := models.DistractorSet{
		PartOfSpeech: "verb",
		Distractors: []models.Distractor{
			{Text: "walk", Translation: "gå", Note: "slower"},
			{Text: "jump", Translation: "hoppe"},
			{Text: "swim", Translation: "svømme"},
		},
	}

	tests := []struct {
		name       string
		f          func(practiceMocks)
		assertFunc func(t *testing.T, cards models.Flashcards, err error)
	}{
		{
			name: "four options with one correct",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), int64(1), int64(3)).Return(runEntry(), nil)
				m.api.EXPECT().GenerateDistractors(gomock.Any(), "run", "løbe").Return(distractors, nil)
			},
			assertFunc: func(t *testing.T, cards models.Flashcards, err error) {
				require.NoError(t, err)
				assert.Equal(t, "løbe", cards.Prompt)
				assert.Equal(t, "run", cards.TargetText)
				assert.Equal(t, "verb", cards.PartOfSpeech)
				require.Len(t, cards.Options, 4)

				labels := make([]string, 0, 4)
				correct := 0
				for _, opt := range cards.Options {
					labels = append(labels, opt.Label)
					if opt.IsCorrect {
						correct++
						assert.Equal(t, "entry-3", opt.ID)
						assert.Equal(t, "saved", opt.Metadata.Source)
					} else {
						assert.Equal(t, "ai", opt.Metadata.Source)
					}
				}
				assert.Equal(t, 1, correct)
				assert.ElementsMatch(t, []string{"run", "walk", "jump", "swim"}, labels)
			},
		},
		{
			name: "distractor equal to the word is skipped",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), gomock.Any(), gomock.Any()).Return(runEntry(), nil)
				m.api.EXPECT().GenerateDistractors(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.DistractorSet{
					Distractors: []models.Distractor{{Text: "Run"}, {Text: "walk"}, {Text: "jump"}},
				}, nil)
			},
			assertFunc: func(t *testing.T, cards models.Flashcards, err error) {
				assert.True(t, apperr.Is(err, apperr.CodeGenerationUnavailable))
			},
		},
		{
			name: "generator failure",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), gomock.Any(), gomock.Any()).Return(runEntry(), nil)
				m.api.EXPECT().GenerateDistractors(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.DistractorSet{}, errors.New("few distractors"))
			},
			assertFunc: func(t *testing.T, cards models.Flashcards, err error) {
				assert.True(t, apperr.Is(err, apperr.CodeGenerationUnavailable))
			},
		},
		{
			name: "unknown entry",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Entry{}, apperr.ErrRecordNotFound)
			},
			assertFunc: func(t *testing.T, cards models.Flashcards, err error) {
				assert.True(t, apperr.Is(err, apperr.CodeNotFound))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			cards, err := svc.NewFlashcards(context.Background(), 1, 3)
			tt.assertFunc(t, cards, err)
		})
	}
}

func TestRandomPosition(t *testing.T) {
	t.Parallel()

	_, err := randomPosition(0)
	assert.Error(t, err)

	for i := 0; i < 50; i++ {
		pos, err := randomPosition(4)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pos, 0)
		assert.Less(t, pos, 4)
	}
}

func TestPracticeS_CanceledContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(practiceMocks)
		call func(ctx context.Context, svc *PracticeS) error
	}{
		{
			name: "cloze",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), int64(1), int64(3)).Return(runEntry(runPair), nil)
			},
			call: func(ctx context.Context, svc *PracticeS) error {
				_, err := svc.BuildCloze(ctx, 1, 3)
				return err
			},
		},
		{
			name: "flashcards",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), int64(1), int64(3)).Return(runEntry(), nil)
				m.api.EXPECT().GenerateDistractors(gomock.Any(), "run", "løbe").Return(models.DistractorSet{}, context.Canceled)
			},
			call: func(ctx context.Context, svc *PracticeS) error {
				_, err := svc.NewFlashcards(ctx, 1, 3)
				return err
			},
		},
		{
			name: "forced example",
			f: func(m practiceMocks) {
				m.repo.EXPECT().Entry(gomock.Any(), int64(1), int64(3)).Return(runEntry(), nil)
			},
			call: func(ctx context.Context, svc *PracticeS) error {
				_, err := svc.examples.AddExample(ctx, 1, 3, models.AddExampleOptions{Force: true})
				return err
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := tt.call(ctx, svc)
			assert.ErrorIs(t, err, context.Canceled)
			assert.True(t, apperr.Is(err, apperr.CodeGenerationUnavailable))
		})
	}
}
