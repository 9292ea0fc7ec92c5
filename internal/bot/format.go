package bot

import (
	"fmt"
	"strings"

	"github.com/DanRulev/ordkort.git/internal/models"
)

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escapeMarkdown escapes the characters legacy Telegram markdown treats as
// entity delimiters.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// parseEntryInput splits "english - danish". Dashes of any width and "="
// are accepted as the separator.
func parseEntryInput(text string) (english, danish string, ok bool) {
	for _, sep := range []string{" - ", " – ", " — ", "="} {
		if left, right, found := strings.Cut(text, sep); found {
			english, danish = strings.TrimSpace(left), strings.TrimSpace(right)
			return english, danish, english != "" && danish != ""
		}
	}
	return "", "", false
}

func formatEntries(views []models.EntryView, page, total int) string {
	if total == 0 {
		return "📭 Your list is empty.\n\n" + addWordHint
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 *Your words* (page %d of %d, %d total)\n", page+1, pageCount(total), total)

	for i, view := range views {
		fmt.Fprintf(&b, "\n%d. *%s* - %s", page*wordsPageSize+i+1,
			escapeMarkdown(view.Text), escapeMarkdown(view.Translation))
		if view.Example != nil {
			fmt.Fprintf(&b, "\n    _%s_", escapeMarkdown(view.Example.Danish))
		}
	}
	return b.String()
}

func formatExample(entry string, ex models.Example, count int) string {
	return fmt.Sprintf("💬 *%s*\n\n🇩🇰 %s\n🇬🇧 _%s_\n\n%d example(s) saved.",
		escapeMarkdown(entry), escapeMarkdown(ex.Danish), escapeMarkdown(ex.English), count)
}

func formatCloze(cloze models.Cloze) string {
	return fmt.Sprintf("✍️ Fill in the gap:\n\n%s\n\nHint: _%s_\nReply with the missing Danish word.",
		escapeMarkdown(cloze.Prompt), escapeMarkdown(cloze.Hint))
}

func formatProgress(p models.DailyProgress) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *Your progress* (%s to %s)\n\n", p.StartDate, p.EndDate)
	fmt.Fprintf(&b, "📚 Words saved: %d\n", p.TotalEntries)
	fmt.Fprintf(&b, "🧠 Exercises done: %d\n\n", p.TotalExercises)

	for i, day := range p.Words {
		exercises := 0
		if i < len(p.Exercises) {
			exercises = p.Exercises[i].Count
		}
		fmt.Fprintf(&b, "`%s`  ➕ %d  ✅ %d\n", day.Date, day.Count, exercises)
	}
	return b.String()
}

func pageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + wordsPageSize - 1) / wordsPageSize
}
