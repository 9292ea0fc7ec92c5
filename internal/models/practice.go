package models

type Cloze struct {
	EntryID int64  `json:"entry_id"`
	Prompt  string `json:"prompt"`
	Answer  string `json:"answer"`
	Hint    string `json:"hint_en"`
}

type Distractor struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Note        string `json:"note"`
}

type DistractorSet struct {
	PartOfSpeech string       `json:"part_of_speech"`
	Distractors  []Distractor `json:"distractors"`
}

type FlashcardMeta struct {
	Translation string `json:"translation"`
	Note        string `json:"note"`
	Source      string `json:"source"`
}

type FlashcardOption struct {
	ID        string        `json:"id"`
	Label     string        `json:"label"`
	IsCorrect bool          `json:"is_correct"`
	Metadata  FlashcardMeta `json:"metadata"`
}

type Flashcards struct {
	EntryID      int64             `json:"entry_id"`
	Prompt       string            `json:"prompt"`
	PartOfSpeech string            `json:"part_of_speech"`
	TargetText   string            `json:"target_text"`
	Options      []FlashcardOption `json:"options"`
}
