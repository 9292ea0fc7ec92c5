package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonAddWord    = "➕ Add a word"
	ButtonMyWords    = "📚 My words"
	ButtonCloze      = "✍️ Fill the gap"
	ButtonFlashcards = "🃏 Flashcards"
	ButtonProgress   = "📊 My progress"
	ButtonMainMenu   = "🏠 Main menu"
	ButtonHelp       = "ℹ️ Help"
)

const (
	callbackMainMenu     = "main_menu"
	callbackExample      = "example"
	callbackMoreExamples = "more_examples"
	callbackNewCloze     = "new_cloze"
	callbackNewCards     = "new_cards"
	callbackCardPrefix   = "card_"
	callbackPagePrefix   = "page_"
)

const addWordHint = "Send me a word as `english - danish`, for example `run - løbe`.\n" +
	"If you send only the English word I will translate it for you."

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🇩🇰 Hej! I help you learn Danish words.\n\n" +
		"✨ What I can do:\n" +
		"• ➕ Keep your own word list\n" +
		"• 💬 Write example sentences for every word\n" +
		"• ✍️ Quiz you with fill-the-gap sentences\n" +
		"• 🃏 Run multiple-choice flashcards\n" +
		"• 📊 Track your daily progress\n\n" +
		"Press a button below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Main menu:")
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonAddWord),
			tgbotapi.NewKeyboardButton(ButtonMyWords),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonCloze),
			tgbotapi.NewKeyboardButton(ButtonFlashcards),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProgress),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start - start the bot
/help - this message

🎯 Buttons:
• "Add a word" - save a word with its Danish translation
• "My words" - your list with example sentences
• "Fill the gap" - type the missing Danish word
• "Flashcards" - pick the right English word
• "My progress" - words and exercises per day
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	text := strings.TrimSpace(message.Text)
	chatID := message.Chat.ID

	switch text {
	case ButtonMainMenu:
		t.showMainMenu(chatID)
		return
	case ButtonHelp:
		t.handleHelpCommand(message)
		return
	case ButtonAddWord:
		msg := tgbotapi.NewMessage(chatID, addWordHint)
		msg.ParseMode = "markdown"
		sendMessage(t.bot, t.log, msg)
		return
	}

	userID, ok := t.localUser(chatID, message.From)
	if !ok {
		return
	}

	switch text {
	case ButtonMyWords:
		t.word.showEntries(chatID, 0, userID, 0)
	case ButtonCloze:
		t.quiz.sendCloze(chatID, userID)
	case ButtonFlashcards:
		t.quiz.sendFlashcards(chatID, userID)
	case ButtonProgress:
		t.word.sendProgress(chatID, userID)
	case "":
		msg := tgbotapi.NewMessage(chatID, "I did not get that. Use the buttons below.")
		sendMessage(t.bot, t.log, msg)
	default:
		if t.quiz.gradeCloze(chatID, userID, text) {
			return
		}
		t.word.addEntry(chatID, userID, text)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil || query.From == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}
	chatID := query.Message.Chat.ID
	data := query.Data

	if data == callbackMainMenu {
		t.showMainMenu(chatID)
		return
	}

	userID, ok := t.localUser(chatID, query.From)
	if !ok {
		return
	}

	switch {
	case strings.HasPrefix(data, callbackPagePrefix):
		t.word.entriesPagination(query, userID)
	case data == callbackExample:
		t.word.sendExample(chatID, userID, false)
	case data == callbackMoreExamples:
		t.word.sendExample(chatID, userID, true)
	case data == callbackNewCloze:
		t.quiz.sendCloze(chatID, userID)
	case data == callbackNewCards:
		t.quiz.sendFlashcards(chatID, userID)
	case strings.HasPrefix(data, callbackCardPrefix):
		t.quiz.processFlashcardAnswer(query, userID)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("telegram_id", query.From.ID))
	}
}
