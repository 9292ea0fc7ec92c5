package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const wordsPageSize = 10

type UserSI interface {
	EnsureTelegramUser(ctx context.Context, telegramID int64) (models.User, error)
}

type WordSI interface {
	SaveEntry(ctx context.Context, entry models.NewEntry) (models.Entry, error)
	Entries(ctx context.Context, userID int64, offset, limit int) ([]models.EntryView, int, error)
	Entry(ctx context.Context, userID, entryID int64) (models.EntryView, error)
	AddExample(ctx context.Context, userID, entryID int64, opts models.AddExampleOptions) (models.ExampleResult, error)
	Translate(ctx context.Context, text, direction string) (string, error)
}

type ProgressSI interface {
	DailyProgress(ctx context.Context, userID int64, windowDays int) (models.DailyProgress, error)
	DefaultWindow() int
}

type wordService interface {
	WordSI
	ProgressSI
}

type WordT struct {
	bot     BotSender
	cache   *cache.Cache
	service wordService
	timeout time.Duration
	log     *zap.Logger
}

func NewWordTAPI(bot BotSender, cache *cache.Cache, service wordService, timeout time.Duration, log *zap.Logger) *WordT {
	return &WordT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

// addEntry saves "english - danish". A bare English word is translated
// first.
func (t *WordT) addEntry(chatID, userID int64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	entry := models.NewEntry{UserID: userID, IsExternalInput: true}
	english, danish, ok := parseEntryInput(text)
	if ok {
		entry.Text, entry.Translation = english, danish
	} else {
		translation, err := t.service.Translate(ctx, text, "en-da")
		if err != nil {
			t.log.Warn("failed to translate new word", zap.Int64("user_id", userID), zap.Error(err))
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
			return
		}
		entry.Text, entry.Translation, entry.IsExternalInput = text, translation, false
	}

	saved, err := t.service.SaveEntry(ctx, entry)
	if err != nil {
		t.log.Error("failed to save entry", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
		return
	}

	if err := t.cache.SetEntry(userID, saved.ID); err != nil {
		t.log.Warn("failed to remember entry", zap.Int64("user_id", userID), zap.Error(err))
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 Show an example", callbackExample),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Saved: *%s* - %s",
		escapeMarkdown(saved.Text), escapeMarkdown(saved.Translation)))
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

// sendExample shows an example for the entry the user saved last. With
// appendMode a new one is generated and kept next to the stored ones.
func (t *WordT) sendExample(chatID, userID int64, appendMode bool) {
	entryID, ok := t.cache.GetEntry(userID)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, "I do not know which word you mean. Add or pick a word first.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	res, err := t.service.AddExample(ctx, userID, entryID, models.AddExampleOptions{Append: appendMode})
	if err != nil {
		t.log.Error("failed to get example", zap.Int64("user_id", userID), zap.Int64("entry_id", entryID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
		return
	}

	title := "Example"
	if view, err := t.service.Entry(ctx, userID, entryID); err == nil {
		title = view.Text + " - " + view.Translation
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ More examples", callbackMoreExamples),
			tgbotapi.NewInlineKeyboardButtonData("✍️ Practise", callbackNewCloze),
		),
	)

	msg := tgbotapi.NewMessage(chatID, formatExample(title, res.Example, len(res.Examples)))
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

// showEntries sends a page of the user's words, or edits messageID in place
// when it is set.
func (t *WordT) showEntries(chatID int64, messageID int, userID int64, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	views, total, err := t.service.Entries(ctx, userID, page*wordsPageSize, wordsPageSize)
	if err != nil {
		t.log.Error("failed to load entries", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
		return
	}

	text := formatEntries(views, page, total)
	hasNext := (page+1)*wordsPageSize < total
	keyboard := t.entriesPaginationKeyboard(page, hasNext)

	if messageID != 0 {
		editMsg := tgbotapi.NewEditMessageText(chatID, messageID, text)
		editMsg.ParseMode = "markdown"
		editMsg.ReplyMarkup = keyboard
		sendMessage(t.bot, t.log, editMsg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, t.log, msg)
}

func (t *WordT) entriesPagination(query *tgbotapi.CallbackQuery, userID int64) {
	chatID := query.Message.Chat.ID

	page, err := strconv.Atoi(strings.TrimPrefix(query.Data, callbackPagePrefix))
	if err != nil || page < 0 {
		msg := tgbotapi.NewMessage(chatID, "❌ Invalid page number.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	t.showEntries(chatID, query.Message.MessageID, userID, page)
}

func (t *WordT) entriesPaginationKeyboard(page int, hasNext bool) *tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)

	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Back", fmt.Sprintf("%s%d", callbackPagePrefix, page-1)))
	}

	if hasNext {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("%s%d", callbackPagePrefix, page+1)))
	}

	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("✍️ Practise", callbackNewCloze),
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", callbackMainMenu),
	})

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

func (t *WordT) sendProgress(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	progress, err := t.service.DailyProgress(ctx, userID, t.service.DefaultWindow())
	if err != nil {
		t.log.Error("failed to load progress", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatProgress(progress))
	msg.ParseMode = "markdown"
	sendMessage(t.bot, t.log, msg)
}
