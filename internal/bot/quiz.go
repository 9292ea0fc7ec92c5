package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/practice"
	"github.com/DanRulev/ordkort.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizSI interface {
	RandomEntry(ctx context.Context, userID int64) (models.Entry, error)
	BuildCloze(ctx context.Context, userID, entryID int64) (models.Cloze, error)
	NewFlashcards(ctx context.Context, userID, entryID int64) (models.Flashcards, error)
	RecordExercise(ctx context.Context, userID int64) error
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
	timeout time.Duration
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, timeout time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

// sendCloze picks a random word of the user and asks for the missing Danish
// word in a generated sentence. The answer is expected as the next message.
func (t *QuizT) sendCloze(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	entry, ok := t.randomEntry(ctx, chatID, userID)
	if !ok {
		return
	}

	cloze, err := t.service.BuildCloze(ctx, userID, entry.ID)
	if err != nil {
		t.log.Error("failed to build cloze", zap.Int64("user_id", userID), zap.Int64("entry_id", entry.ID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
		return
	}

	if err := t.cache.SetCloze(userID, cloze); err != nil {
		t.log.Error("failed to keep cloze", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Something went wrong. Please try again later."))
		return
	}
	t.rememberEntry(userID, entry.ID)

	msg := tgbotapi.NewMessage(chatID, formatCloze(cloze))
	msg.ParseMode = "markdown"
	sendMessage(t.bot, t.log, msg)
}

// gradeCloze checks text against the pending cloze. It reports false when
// no cloze is waiting for an answer.
func (t *QuizT) gradeCloze(chatID, userID int64, text string) bool {
	cloze, exists := t.cache.GetCloze(userID)
	if !exists {
		return false
	}

	t.cache.DeleteCloze(userID)

	statusText := "✅ Correct! *" + escapeMarkdown(cloze.Answer) + "*"
	if !practice.CheckClozeAnswer(cloze.Answer, text) {
		statusText = fmt.Sprintf("❌ Not quite. The answer is *%s* (%s).",
			escapeMarkdown(cloze.Answer), escapeMarkdown(cloze.Hint))
	}

	t.recordExercise(userID)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✍️ Next sentence", callbackNewCloze),
			tgbotapi.NewInlineKeyboardButtonData("💬 More examples", callbackMoreExamples),
		),
	)

	msg := tgbotapi.NewMessage(chatID, statusText)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, t.log, msg)

	return true
}

func (t *QuizT) sendFlashcards(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	entry, ok := t.randomEntry(ctx, chatID, userID)
	if !ok {
		return
	}

	cards, err := t.service.NewFlashcards(ctx, userID, entry.ID)
	if err != nil {
		t.log.Error("failed to build flashcards", zap.Int64("user_id", userID), zap.Int64("entry_id", entry.ID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
		return
	}

	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for i, opt := range cards.Options {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(opt.Label, callbackCardPrefix+strconv.Itoa(i)))

		if len(row) == 2 {
			buttons = append(buttons, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	text := "🃏 Which English word means *" + escapeMarkdown(cards.Prompt) + "*?"
	if cards.PartOfSpeech != "" {
		text += " _(" + escapeMarkdown(cards.PartOfSpeech) + ")_"
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	if err := t.cache.SetFlashcards(userID, cards); err != nil {
		t.log.Error("failed to keep flashcards", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "❌ Something went wrong. Please try again later."))
		return
	}
	t.rememberEntry(userID, entry.ID)

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) processFlashcardAnswer(query *tgbotapi.CallbackQuery, userID int64) {
	chatID := query.Message.Chat.ID

	cards, exists := t.cache.GetFlashcards(userID)
	if !exists {
		t.log.Info("no pending flashcards", zap.Int64("user_id", userID))
		msg := tgbotapi.NewMessage(chatID, "⌛ This card has expired. Start a new one.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	index, err := strconv.Atoi(strings.TrimPrefix(query.Data, callbackCardPrefix))
	if err != nil || index < 0 || index >= len(cards.Options) {
		t.log.Warn("invalid flashcard answer", zap.String("data", query.Data))
		return
	}

	t.cache.DeleteFlashcards(userID)

	chosen := cards.Options[index]
	statusText := "✅ Correct! " + escapeMarkdown(cards.TargetText) + " = " + escapeMarkdown(cards.Prompt)
	if !chosen.IsCorrect {
		statusText = fmt.Sprintf("❌ Wrong. *%s* means %s. The answer was *%s*.",
			escapeMarkdown(chosen.Label), escapeMarkdown(chosen.Metadata.Translation), escapeMarkdown(cards.TargetText))
	}

	t.recordExercise(userID)

	fullText := fmt.Sprintf("%s\n\n%s", escapeMarkdown(query.Message.Text), statusText)
	editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, fullText)
	editMsg.ParseMode = "markdown"

	var buttons [][]tgbotapi.InlineKeyboardButton
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🃏 Next card", callbackNewCards),
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", callbackMainMenu),
	})

	editMsg.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}

	sendMessage(t.bot, t.log, editMsg)
}

func (t *QuizT) randomEntry(ctx context.Context, chatID, userID int64) (models.Entry, bool) {
	entry, err := t.service.RandomEntry(ctx, userID)
	if err != nil {
		if !apperr.Is(err, apperr.CodeNotFound) {
			t.log.Error("failed to pick entry", zap.Int64("user_id", userID), zap.Error(err))
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
			return models.Entry{}, false
		}
		msg := tgbotapi.NewMessage(chatID, "📭 You have no words to practise yet.\n\n"+addWordHint)
		msg.ParseMode = "markdown"
		sendMessage(t.bot, t.log, msg)
		return models.Entry{}, false
	}
	return entry, true
}

func (t *QuizT) rememberEntry(userID, entryID int64) {
	if err := t.cache.SetEntry(userID, entryID); err != nil {
		t.log.Warn("failed to remember entry", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (t *QuizT) recordExercise(userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.service.RecordExercise(ctx, userID); err != nil {
		t.log.Error("failed to record exercise", zap.Int64("user_id", userID), zap.Error(err))
	}
}
