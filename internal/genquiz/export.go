package genquiz

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown produces the human-readable export of a quiz: questions
// grouped by topic (global numbering preserved inside groups), options
// annotated as correct or not, matching questions as an enumerated list
// with their correct matches, and a flat answer key at the end.
func RenderMarkdown(questions []Question, generatedAt time.Time) string {
	var lines []string

	topics := firstSeenTopics(questions)
	switch {
	case len(questions) == 0:
		lines = append(lines, "# Quiz")
	case len(topics) == 1:
		lines = append(lines, fmt.Sprintf("# %s Quiz", topics[0]))
	default:
		lines = append(lines, fmt.Sprintf("# Multi-Topic Quiz (%s)", strings.Join(topics, ", ")))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("**Generated:** %s", generatedAt.Format("January 02, 2006 at 03:04 PM")),
		fmt.Sprintf("**Total Questions:** %d", len(questions)),
		"",
	)

	grouped := map[string][]int{}
	for i, q := range questions {
		grouped[q.Topic] = append(grouped[q.Topic], i)
	}

	for _, topic := range topics {
		lines = append(lines, fmt.Sprintf("## %s", topic), "")

		for _, idx := range grouped[topic] {
			q := questions[idx]
			lines = append(lines,
				fmt.Sprintf("### Question %d", idx+1),
				fmt.Sprintf("**Level:** %s | **Type:** %s", q.Level, titleCaseType(q.Type)),
				"",
				fmt.Sprintf("**Q:** %s", q.Text),
				"",
			)

			switch q.Type {
			case TypeMultipleChoice:
				for i, opt := range q.Options {
					letter := string(rune('A' + i))
					lines = append(lines, fmt.Sprintf("%s **%s.** %s", correctMarker(opt == q.Answer), letter, opt))
				}
			case TypeTrueFalse:
				for _, opt := range q.Options {
					lines = append(lines, fmt.Sprintf("%s **%s**", correctMarker(opt == q.Answer), opt))
				}
			case TypeMatching:
				lines = append(lines, "**Match the items:**")
				for i, opt := range q.Options {
					if item, desc, found := strings.Cut(opt, "|"); found {
						lines = append(lines, fmt.Sprintf("%d. %s -> %s", i+1, item, desc))
					} else {
						lines = append(lines, fmt.Sprintf("%d. %s", i+1, opt))
					}
				}
				lines = append(lines, fmt.Sprintf("**Correct Matches:** %s", q.Answer))
			}

			lines = append(lines,
				"",
				fmt.Sprintf("**Correct Answer:** %s", q.Answer),
				"",
				"---",
				"",
			)
		}
	}

	lines = append(lines, "## Answer Key", "")
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("%d. %s (%s - %s)", i+1, q.Answer, q.Level, q.Topic))
	}

	return strings.Join(lines, "\n")
}

func firstSeenTopics(questions []Question) []string {
	var topics []string
	for _, q := range questions {
		if !containsString(topics, q.Topic) {
			topics = append(topics, q.Topic)
		}
	}
	return topics
}

func correctMarker(correct bool) string {
	if correct {
		return "[CORRECT]"
	}
	return "[OPTION]"
}

// titleCaseType renders "multiple-choice" as "Multiple Choice".
func titleCaseType(t string) string {
	words := strings.Split(t, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
