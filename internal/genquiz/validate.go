package genquiz

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
)

// candidate is a parsed but not yet validated question record. Options stays
// raw because matching questions sometimes arrive with a comma-joined string
// instead of an array.
type candidate struct {
	Question string          `json:"question"`
	Options  json.RawMessage `json:"options"`
	Answer   string          `json:"answer"`
	Type     string          `json:"type"`
	Level    string          `json:"level"`
	Topic    string          `json:"topic"`
}

// buildQuestion validates one candidate and applies defaults. Failures are
// per-candidate: the question is dropped with a warning and processing
// continues.
func buildQuestion(raw json.RawMessage, log *logrus.Entry) (Question, bool) {
	var c candidate
	if err := json.Unmarshal(raw, &c); err != nil {
		log.WithError(err).Warn("skipping candidate with unexpected structure")
		return Question{}, false
	}

	if c.Question == "" || len(c.Options) == 0 || string(c.Options) == "null" || c.Answer == "" {
		log.Warnf("skipping candidate missing required fields: %s", raw)
		return Question{}, false
	}

	if c.Type == "" {
		c.Type = TypeMultipleChoice
	}
	if c.Level == "" {
		c.Level = DefaultLevel
	}
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}

	if c.Type == TypeMatching {
		return reconstructMatching(c, log)
	}

	var options []string
	if err := json.Unmarshal(c.Options, &options); err != nil {
		log.Warnf("skipping question with invalid options format: %s", raw)
		return Question{}, false
	}

	answer := c.Answer
	if c.Type == TypeMultipleChoice {
		answer = resolveLetterAnswer(answer, options, log)
	}

	if c.Type == TypeMultipleChoice || c.Type == TypeTrueFalse {
		if !containsString(options, answer) {
			log.Warnf("skipping question with answer not in options: %s", raw)
			return Question{}, false
		}
	}

	return Question{
		Text:    c.Question,
		Options: options,
		Answer:  answer,
		Type:    c.Type,
		Level:   c.Level,
		Topic:   c.Topic,
	}, true
}

// resolveLetterAnswer maps a single-letter answer (A-D) to the option at
// the corresponding index. Out-of-range letters are kept as-is and validated
// against the options normally.
func resolveLetterAnswer(answer string, options []string, log *logrus.Entry) string {
	if len(answer) != 1 {
		return answer
	}
	upper := strings.ToUpper(answer)
	if upper < "A" || upper > "D" {
		return answer
	}
	idx := int(upper[0] - 'A')
	if idx >= len(options) {
		return answer
	}
	log.Infof("resolved letter answer %s -> %s", answer, options[idx])
	return options[idx]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
