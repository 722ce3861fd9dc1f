package genquiz

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxQuestions caps a generated batch; extras are dropped from the tail.
const maxQuestions = 6

// Normalize converts raw LLM output into validated questions. Individual
// malformed candidates are logged and skipped; only a wholly unparseable
// response or an empty post-filter batch fails the call.
func Normalize(raw string, log *logrus.Entry) ([]Question, error) {
	payload := stripEnvelope(raw)
	if payload == "" {
		return nil, ErrUnparseableResponse
	}

	candidates, ok := recoverCandidates(payload, log)
	if !ok {
		return nil, ErrUnparseableResponse
	}

	var questions []Question
	for _, c := range candidates {
		q, valid := buildQuestion(c, log)
		if !valid {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) > maxQuestions {
		log.Infof("trimming response to %d questions (was %d)", maxQuestions, len(questions))
		questions = questions[:maxQuestions]
	}
	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return questions, nil
}

// stripEnvelope removes a fenced code block wrapper when present, otherwise
// returns the trimmed text. With no closing fence the content runs to the
// end of the text.
func stripEnvelope(raw string) string {
	content := strings.TrimSpace(raw)

	idx := strings.Index(content, "```")
	if idx == -1 {
		return content
	}

	start := idx + 3
	// Skip the language tag line (e.g. "json").
	if nl := strings.Index(content[start:], "\n"); nl != -1 {
		start += nl + 1
	}
	if end := strings.Index(content[start:], "```"); end != -1 {
		return strings.TrimSpace(content[start : start+end])
	}
	return strings.TrimSpace(content[start:])
}

// recoverFunc is one structural recovery strategy: it either extracts a
// list of candidate fragments from the text or reports failure.
type recoverFunc func(text string, log *logrus.Entry) ([]json.RawMessage, bool)

// recoveryChain is tried in order; the first strategy that succeeds wins.
var recoveryChain = []struct {
	name string
	fn   recoverFunc
}{
	{"array", recoverArray},
	{"objects", recoverLineObjects},
	{"bracket-slice", recoverBracketSlice},
	{"bracket-slice-comma-fix", recoverBracketSliceFixed},
	{"single-object", recoverSingleObject},
}

func recoverCandidates(text string, log *logrus.Entry) ([]json.RawMessage, bool) {
	for _, strategy := range recoveryChain {
		if candidates, ok := strategy.fn(text, log); ok {
			log.Debugf("recovered %d candidates via %s strategy", len(candidates), strategy.name)
			return candidates, true
		}
	}
	return nil, false
}

// recoverArray parses the text directly when it is syntactically a single
// JSON array.
func recoverArray(text string, _ *logrus.Entry) ([]json.RawMessage, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// recoverLineObjects scans line by line, accumulating a fragment while
// tracking brace depth; whenever depth returns to zero the fragment is
// parsed. Objects become one candidate each, arrays are flattened, and
// unparseable fragments are dropped.
func recoverLineObjects(text string, log *logrus.Entry) ([]json.RawMessage, bool) {
	var out []json.RawMessage
	var current strings.Builder
	depth := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		current.WriteString(line)
		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if depth == 0 && strings.TrimSpace(current.String()) != "" {
			appendFragment(&out, current.String(), log)
			current.Reset()
		}
	}
	if depth == 0 && strings.TrimSpace(current.String()) != "" {
		appendFragment(&out, current.String(), log)
	}

	return out, len(out) > 0
}

// appendFragment parses one accumulated fragment, retrying once with
// trailing commas stripped before giving up on it.
func appendFragment(out *[]json.RawMessage, frag string, log *logrus.Entry) {
	items, err := parseFragment(frag)
	if err != nil {
		items, err = parseFragment(stripTrailingCommas(frag))
	}
	if err != nil {
		log.WithField("fragment", frag).Warn("could not parse JSON fragment, dropping it")
		return
	}
	*out = append(*out, items...)
}

func parseFragment(frag string) ([]json.RawMessage, error) {
	frag = strings.TrimSpace(frag)
	if strings.HasPrefix(frag, "[") {
		var arr []json.RawMessage
		if err := json.Unmarshal([]byte(frag), &arr); err != nil {
			return nil, err
		}
		return arr, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(frag), &obj); err != nil {
		return nil, err
	}
	return []json.RawMessage{json.RawMessage(frag)}, nil
}

// recoverBracketSlice parses the substring between the first "[" and the
// last "]".
func recoverBracketSlice(text string, _ *logrus.Entry) ([]json.RawMessage, bool) {
	sliced, ok := sliceBrackets(text)
	if !ok {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(sliced), &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// recoverBracketSliceFixed retries the bracket slice with trailing commas
// stripped globally.
func recoverBracketSliceFixed(text string, _ *logrus.Entry) ([]json.RawMessage, bool) {
	sliced, ok := sliceBrackets(text)
	if !ok {
		sliced = text
	}
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(stripTrailingCommas(sliced)), &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// recoverSingleObject locates the first balanced {...} span and treats it
// as a single-question list.
func recoverSingleObject(text string, _ *logrus.Entry) ([]json.RawMessage, bool) {
	cleaned := stripTrailingCommas(text)

	start := strings.Index(cleaned, "{")
	if start == -1 {
		return nil, false
	}

	depth := 0
	end := -1
	for i := start; i < len(cleaned); i++ {
		switch cleaned[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return nil, false
	}

	frag := cleaned[start:end]
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(frag), &obj); err != nil {
		return nil, false
	}
	return []json.RawMessage{json.RawMessage(frag)}, true
}

func sliceBrackets(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

var trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)

func stripTrailingCommas(s string) string {
	return trailingCommaRe.ReplaceAllString(s, "$1")
}
