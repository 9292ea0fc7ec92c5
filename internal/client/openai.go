package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	maxAvoidInPrompt    = 10
	distractorCount     = 3
)

var (
	ErrNoAPIKey        = errors.New("generator api key is not configured")
	ErrEmptyCompletion = errors.New("language model returned an empty response")
	ErrFewDistractors  = errors.New("language model returned too few distractors")
)

type OpenAIAPI struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
	log         *zap.Logger
}

func NewOpenAIAPI(cfg config.GeneratorConfig, log *zap.Logger) *OpenAIAPI {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIAPI{
		baseURL:     strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
	}
}

// GenerateExamplePair asks for a Danish example that uses translation, then
// translates that example to English. avoid lists earlier Danish examples the
// model must not repeat.
func (o *OpenAIAPI) GenerateExamplePair(ctx context.Context, text, translation string, avoid []string) (models.Example, error) {
	text, translation = strings.TrimSpace(text), strings.TrimSpace(translation)
	if text == "" || translation == "" {
		return models.Example{}, errors.New("entry needs both text and translation to build an example")
	}

	system := "You are a concise Danish language tutor. Provide only one natural example in Danish " +
		"that uses the target Danish word/phrase at least once exactly as provided and preserves " +
		"the meaning of the supplied English translation. Keep it under 35 words. " +
		"You may use a short two-line dialogue if it feels natural. " +
		"Do not prepend explanations or quotes. Output Danish only."
	if instruction := avoidInstruction(avoid); instruction != "" {
		system += " " + instruction
	}
	user := fmt.Sprintf("TARGET (EN): %s\nTARGET (DA): %s\n\n"+
		"Write a single Danish example (sentence or very short dialogue) that naturally includes "+
		"the Danish target exactly as provided. Keep the tone everyday and concise.", text, translation)

	danish, err := o.chat(ctx, system, user)
	if err != nil {
		return models.Example{}, fmt.Errorf("generate example: %w", err)
	}

	english, err := o.chat(ctx,
		"You are a precise translator. Convert the Danish example into natural English. "+
			"Keep the meaning and tone, and avoid adding explanations.",
		danish)
	if err != nil {
		return models.Example{}, fmt.Errorf("translate example: %w", err)
	}

	return models.Example{Danish: danish, English: english}, nil
}

func avoidInstruction(avoid []string) string {
	items := make([]string, 0, maxAvoidInPrompt)
	for _, a := range avoid {
		if a = strings.TrimSpace(a); a == "" {
			continue
		}
		items = append(items, a)
		if len(items) == maxAvoidInPrompt {
			break
		}
	}
	if len(items) == 0 {
		return ""
	}
	return "Do NOT repeat or paraphrase any of these prior Danish examples: " + strings.Join(items, "; ") + "."
}

// GenerateDistractors returns the part of speech of text and three unrelated
// words of the same part of speech.
func (o *OpenAIAPI) GenerateDistractors(ctx context.Context, text, translation string) (models.DistractorSet, error) {
	system := "You are a careful language tutor helping English speakers learn Danish words. " +
		"Given an English target word/phrase and its Danish translation, produce JSON describing " +
		"the target's part of speech and three fresh distractor words in English that share the " +
		"same part of speech. Each distractor must have a distinct meaning, be of similar language " +
		"level and not share a clear thematic association with the target. If the target is a " +
		"multi-word phrase, each distractor should contain the same number of words (plus or minus one)."
	user := fmt.Sprintf("TARGET_ENGLISH: %s\nTARGET_DANISH: %s\n\n"+
		"Return JSON with the shape:\n"+
		`{"part_of_speech": "noun|verb|adjective|phrase|expression|other", `+
		`"distractors": [{"text": "...", "translation": "...", "note": "short description"}]}`+"\n"+
		"- Provide exactly three distractors.\n"+
		"- Distractor texts must be different from the target and from each other.\n"+
		"- Keep the translation concise Danish and the note within 12 words.\n"+
		"- Respond with JSON only.", strings.TrimSpace(text), strings.TrimSpace(translation))

	content, err := o.chat(ctx, system, user)
	if err != nil {
		return models.DistractorSet{}, fmt.Errorf("generate distractors: %w", err)
	}

	var raw models.DistractorSet
	if err := decodeJSONObject(content, &raw); err != nil {
		return models.DistractorSet{}, fmt.Errorf("parse distractors: %w", err)
	}

	set := models.DistractorSet{
		PartOfSpeech: strings.ToLower(strings.TrimSpace(raw.PartOfSpeech)),
	}
	if set.PartOfSpeech == "" {
		set.PartOfSpeech = "word"
	}
	for _, d := range raw.Distractors {
		d.Text = strings.TrimSpace(d.Text)
		if d.Text == "" {
			continue
		}
		d.Translation = strings.TrimSpace(d.Translation)
		d.Note = strings.TrimSpace(d.Note)
		set.Distractors = append(set.Distractors, d)
		if len(set.Distractors) == distractorCount {
			break
		}
	}
	if len(set.Distractors) < distractorCount {
		return models.DistractorSet{}, ErrFewDistractors
	}

	return set, nil
}

// TranslateText is the model-backed translation used when the translation
// API is unavailable. target is "da" or "en".
func (o *OpenAIAPI) TranslateText(ctx context.Context, text, target string) (string, error) {
	var instruction string
	switch target {
	case "da":
		instruction = "Translate the following English text into natural Danish. " +
			"Respond with Danish only and keep punctuation consistent."
	case "en":
		instruction = "Translate the following Danish text into natural English. " +
			"Respond with English only and keep punctuation consistent."
	default:
		instruction = fmt.Sprintf("Translate the following text into %s. Respond with the translation only.", target)
	}
	return o.chat(ctx, instruction, strings.TrimSpace(text))
}

func (o *OpenAIAPI) chat(ctx context.Context, system, user string) (string, error) {
	if o.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(models.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages: []models.ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	start := time.Now()
	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	o.log.Debug("chat completion",
		zap.String("model", o.model),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	var data models.ChatCompletionResponse
	decodeErr := json.Unmarshal(raw, &data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && data.Error != nil && data.Error.Message != "" {
			return "", fmt.Errorf("chat completion status %d: %s", resp.StatusCode, data.Error.Message)
		}
		return "", fmt.Errorf("chat completion status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode chat completion: %w", decodeErr)
	}
	if len(data.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(data.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

var fencePrefix = regexp.MustCompile("(?i)^```(?:json)?")

// decodeJSONObject reads the first JSON object out of a model reply, which
// may be wrapped in a code fence or surrounded by prose.
func decodeJSONObject(content string, v any) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ErrEmptyCompletion
	}
	if strings.HasPrefix(trimmed, "```") {
		trimmed = fencePrefix.ReplaceAllString(trimmed, "")
		if i := strings.LastIndex(trimmed, "```"); i >= 0 {
			trimmed = trimmed[:i]
		}
		trimmed = strings.TrimSpace(trimmed)
	}

	err := json.Unmarshal([]byte(trimmed), v)
	if err == nil {
		return nil
	}

	start, end := strings.Index(trimmed, "{"), strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return err
	}
	return json.Unmarshal([]byte(trimmed[start:end+1]), v)
}
