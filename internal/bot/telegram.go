package bot

import (
	"context"
	"time"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

type ServiceI interface {
	UserSI
	WordSI
	QuizSI
	ProgressSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api     *tgbotapi.BotAPI
	bot     BotSender
	users   UserSI
	word    *WordT
	quiz    *QuizT
	timeout time.Duration
	log     *zap.Logger
}

func NewTelegramAPI(botToken, env string, timeout time.Duration, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"

	t := newTelegramAPI(api, service, cache, timeout, log)
	t.api = api
	return t, nil
}

func newTelegramAPI(bot BotSender, service ServiceI, cache *cache.Cache, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &TelegramAPI{
		bot:     bot,
		users:   service,
		word:    NewWordTAPI(bot, cache, service, timeout, log),
		quiz:    NewQuizTAPI(bot, cache, service, timeout, log),
		timeout: timeout,
		log:     log,
	}
}

// Start polls for updates until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	t.log.Info("telegram bot started", zap.String("username", t.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

// localUser maps a Telegram account to the local user id, creating the user
// on first contact.
func (t *TelegramAPI) localUser(chatID int64, from *tgbotapi.User) (int64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := t.users.EnsureTelegramUser(ctx, from.ID)
	if err != nil {
		t.log.Error("failed to resolve telegram user", zap.Int64("telegram_id", from.ID), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, userMessage(err)))
		return 0, false
	}
	return user.ID, true
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Error("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

// userMessage turns a service error into something fit for a chat reply.
func userMessage(err error) string {
	switch apperr.CodeOf(err) {
	case apperr.CodeGenerationUnavailable:
		return "⏳ " + apperr.MessageOf(err) + ". Please try again in a moment."
	case apperr.CodeValidation, apperr.CodeConflict:
		return "⚠️ " + apperr.MessageOf(err)
	case apperr.CodeNotFound:
		return "🔍 " + apperr.MessageOf(err)
	default:
		return "❌ Something went wrong. Please try again later."
	}
}
