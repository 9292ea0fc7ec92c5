package bot

import (
	"testing"
	"time"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	mock_bot "github.com/DanRulev/ordkort.git/internal/bot/mock"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	runEntry = models.Entry{ID: 3, UserID: 7, Text: "run", Translation: "løbe"}
	runCloze = models.Cloze{EntryID: 3, Prompt: "Jeg kan _____ hurtigt.", Answer: "løbe", Hint: "run"}
	runCards = models.Flashcards{
		EntryID:      3,
		Prompt:       "løbe",
		PartOfSpeech: "verb",
		TargetText:   "run",
		Options: []models.FlashcardOption{
			{ID: "distractor-0", Label: "walk", Metadata: models.FlashcardMeta{Translation: "gå", Source: "ai"}},
			{ID: "entry-3", Label: "run", IsCorrect: true, Metadata: models.FlashcardMeta{Translation: "løbe", Source: "saved"}},
			{ID: "distractor-1", Label: "jump", Metadata: models.FlashcardMeta{Translation: "hoppe", Source: "ai"}},
			{ID: "distractor-2", Label: "swim", Metadata: models.FlashcardMeta{Translation: "svømme", Source: "ai"}},
		},
	}
)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *QuizT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	cache := cache.NewCache(1, time.Minute)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewQuizTAPI(mockBot, cache, mockService, time.Second, zap.NewNop())
}

func TestQuizT_sendCloze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *QuizT, *mock_bot.MockBot)
	}{
		{
			name: "success: sends prompt and keeps the answer",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RandomEntry(gomock.Any(), int64(7)).Return(runEntry, nil)
				ms.EXPECT().BuildCloze(gomock.Any(), int64(7), int64(3)).Return(runCloze, nil)
			},
			assertFunc: func(t *testing.T, q *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, `Jeg kan \_\_\_\_\_ hurtigt.`)
				assert.Contains(t, msg.Text, "Hint: _run_")
				assert.Equal(t, "markdown", msg.ParseMode)

				cloze, ok := q.cache.GetCloze(7)
				require.True(t, ok)
				assert.Equal(t, runCloze, cloze)

				entryID, ok := q.cache.GetEntry(7)
				require.True(t, ok)
				assert.Equal(t, int64(3), entryID)
			},
		},
		{
			name: "no words yet",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RandomEntry(gomock.Any(), gomock.Any()).Return(models.Entry{}, apperr.NewNotFound("entry"))
			},
			assertFunc: func(t *testing.T, q *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "You have no words to practise yet.")
			},
		},
		{
			name: "store failure",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RandomEntry(gomock.Any(), gomock.Any()).Return(models.Entry{}, apperr.NewPersistence(assert.AnError))
			},
			assertFunc: func(t *testing.T, q *QuizT, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Something went wrong. Please try again later.", msg.Text)
			},
		},
		{
			name: "generation unavailable",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RandomEntry(gomock.Any(), gomock.Any()).Return(runEntry, nil)
				ms.EXPECT().BuildCloze(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Cloze{}, apperr.NewGenerationUnavailable("unable to create a sentence right now"))
			},
			assertFunc: func(t *testing.T, q *QuizT, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "unable to create a sentence right now")

				_, ok := q.cache.GetCloze(7)
				assert.False(t, ok)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			quizT.sendCloze(123, 7)

			tt.assertFunc(t, quizT, mb)
		})
	}
}

func TestQuizT_gradeCloze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pending    bool
		answer     string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		wantGraded bool
		wantText   string
	}{
		{
			name:    "correct answer ignores case and spaces",
			pending: true,
			answer:  "  LØBE ",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RecordExercise(gomock.Any(), int64(7)).Return(nil)
			},
			wantGraded: true,
			wantText:   "✅ Correct! *løbe*",
		},
		{
			name:    "wrong answer still counts as an exercise",
			pending: true,
			answer:  "gå",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RecordExercise(gomock.Any(), int64(7)).Return(apperr.NewPersistence(assert.AnError))
			},
			wantGraded: true,
			wantText:   "❌ Not quite. The answer is *løbe* (run).",
		},
		{
			name:       "nothing pending",
			answer:     "løbe",
			wantGraded: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)
			if tt.pending {
				require.NoError(t, quizT.cache.SetCloze(7, runCloze))
			}

			graded := quizT.gradeCloze(123, 7, tt.answer)
			assert.Equal(t, tt.wantGraded, graded)

			if !tt.wantGraded {
				assert.Empty(t, mb.SentMessages)
				return
			}
			require.Equal(t, 1, len(mb.SentMessages))
			msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
			assert.Equal(t, tt.wantText, msg.Text)

			_, ok := quizT.cache.GetCloze(7)
			assert.False(t, ok)
		})
	}
}

func TestQuizT_sendFlashcards(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().RandomEntry(gomock.Any(), int64(7)).Return(runEntry, nil)
		ms.EXPECT().NewFlashcards(gomock.Any(), int64(7), int64(3)).Return(runCards, nil)
	})
	mb, _ := quizT.bot.(*mock_bot.MockBot)

	quizT.sendFlashcards(123, 7)

	require.Equal(t, 1, len(mb.SentMessages))
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "🃏 Which English word means *løbe*? _(verb)_", msg.Text)

	kb, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard, 2)
	assert.Equal(t, "walk", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "card_1", *kb.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, "card_3", *kb.InlineKeyboard[1][1].CallbackData)

	cards, ok := quizT.cache.GetFlashcards(7)
	require.True(t, ok)
	assert.Equal(t, runCards, cards)
}

func TestQuizT_processFlashcardAnswer(t *testing.T) {
	t.Parallel()

	query := func(data string) *tgbotapi.CallbackQuery {
		return &tgbotapi.CallbackQuery{
			From: &tgbotapi.User{ID: 456},
			Message: &tgbotapi.Message{
				Chat:      &tgbotapi.Chat{ID: 123},
				MessageID: 100,
				Text:      "🃏 Which English word means løbe?",
			},
			Data: data,
		}
	}

	tests := []struct {
		name       string
		pending    bool
		data       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *QuizT, *mock_bot.MockBot)
	}{
		{
			name:    "right card",
			pending: true,
			data:    "card_1",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RecordExercise(gomock.Any(), int64(7)).Return(nil)
			},
			assertFunc: func(t *testing.T, q *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				editMsg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Equal(t, 100, editMsg.MessageID)
				assert.Contains(t, editMsg.Text, "✅ Correct! run = løbe")
				assert.Equal(t, callbackNewCards, *editMsg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)

				_, ok = q.cache.GetFlashcards(7)
				assert.False(t, ok)
			},
		},
		{
			name:    "wrong card",
			pending: true,
			data:    "card_2",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RecordExercise(gomock.Any(), int64(7)).Return(nil)
			},
			assertFunc: func(t *testing.T, q *QuizT, mb *mock_bot.MockBot) {
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, editMsg.Text, "❌ Wrong. *jump* means hoppe. The answer was *run*.")
			},
		},
		{
			name:    "index out of range keeps the card",
			pending: true,
			data:    "card_9",
			assertFunc: func(t *testing.T, q *QuizT, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
				_, ok := q.cache.GetFlashcards(7)
				assert.True(t, ok)
			},
		},
		{
			name: "expired card",
			data: "card_1",
			assertFunc: func(t *testing.T, q *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "⌛ This card has expired. Start a new one.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)
			if tt.pending {
				require.NoError(t, quizT.cache.SetFlashcards(7, runCards))
			}

			quizT.processFlashcardAnswer(query(tt.data), 7)

			tt.assertFunc(t, quizT, mb)
		})
	}
}
