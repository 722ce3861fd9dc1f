package genquiz

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// A matching question needs at least 2 items and 2 zones.
const minMatchingOptions = 4

// reconstructMatching rebuilds the drag/drop structure of a matching
// candidate from whichever encoding the model chose: DRAG:/DROP: prefixed
// options, an answer-derivable partition, or — failing both — a positional
// half-split of the option pool.
func reconstructMatching(c candidate, log *logrus.Entry) (Question, bool) {
	opts, ok := matchingOptions(c.Options, log)
	if !ok {
		log.Warnf("skipping matching question with invalid options format: %q", c.Question)
		return Question{}, false
	}
	if len(opts) < minMatchingOptions {
		log.Warnf("skipping matching question with insufficient options: %q", c.Question)
		return Question{}, false
	}

	cleaned, dragItems, dropZones := partitionOptions(opts)

	if len(dragItems) == 0 && len(dropZones) == 0 && c.Answer != "" {
		dragItems, dropZones = inferPartition(c.Answer, cleaned)
		if dragItems != nil {
			log.Debugf("inferred matching partition from answer: items=%v zones=%v", dragItems, dropZones)
		}
	}

	answer := c.Answer
	var mapping map[string]string

	if len(dragItems) > 0 && len(dropZones) > 0 {
		mapping = deriveMapping(answer, dragItems, dropZones)
	} else {
		// Positional fallback: first half of the pool are items, the rest
		// zones, matched index by index.
		mid := len(cleaned) / 2
		dragItems, dropZones = cleaned[:mid], cleaned[mid:]
		mapping = positionalMapping(dragItems, dropZones)
		log.Debugf("positional matching fallback: items=%v zones=%v", dragItems, dropZones)
	}

	answer, mapping = repairMultiDashAnswer(answer, cleaned, dragItems, mapping, log)

	return Question{
		Text:    c.Question,
		Options: cleaned,
		Answer:  answer,
		Type:    TypeMatching,
		Level:   c.Level,
		Topic:   c.Topic,
		MatchingDetail: &MatchingDetail{
			DragCount:     len(dragItems),
			DropCount:     len(dropZones),
			DragItems:     dragItems,
			DropZones:     dropZones,
			AnswerMapping: mapping,
		},
	}, true
}

// matchingOptions accepts either an array of strings or a single
// comma-joined string.
func matchingOptions(raw json.RawMessage, log *logrus.Entry) ([]string, bool) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, true
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err != nil {
		return nil, false
	}
	var opts []string
	for _, part := range strings.Split(joined, ",") {
		opts = append(opts, strings.TrimSpace(part))
	}
	log.Infof("split comma-joined matching options: %v", opts)
	return opts, true
}

// partitionOptions routes DRAG:/DROP: prefixed options into their
// partitions while building the flattened pool in original order. Options
// like "1-Paris" have the leading index stripped.
func partitionOptions(opts []string) (cleaned, dragItems, dropZones []string) {
	for _, opt := range opts {
		switch {
		case strings.HasPrefix(opt, "DRAG:"):
			v := strings.TrimSpace(opt[len("DRAG:"):])
			dragItems = append(dragItems, v)
			cleaned = append(cleaned, v)
		case strings.HasPrefix(opt, "DROP:"):
			v := strings.TrimSpace(opt[len("DROP:"):])
			dropZones = append(dropZones, v)
			cleaned = append(cleaned, v)
		case opt != "" && unicode.IsDigit(rune(opt[0])) && strings.Contains(opt, "-"):
			cleaned = append(cleaned, strings.TrimSpace(strings.SplitN(opt, "-", 2)[1]))
		default:
			cleaned = append(cleaned, opt)
		}
	}
	return cleaned, dragItems, dropZones
}

// inferPartition derives the item/zone partition from the answer string:
// left-hand tokens found in the pool become drag items, right-hand tokens
// drop zones, first-seen order, deduplicated. Returns nils when either side
// comes up empty.
func inferPartition(answer string, cleaned []string) ([]string, []string) {
	var items, zones []string
	for _, pair := range splitAnswerPairs(answer) {
		if containsString(cleaned, pair[0]) && !containsString(items, pair[0]) {
			items = append(items, pair[0])
		}
		if containsString(cleaned, pair[1]) && !containsString(zones, pair[1]) {
			zones = append(zones, pair[1])
		}
	}
	if len(items) == 0 || len(zones) == 0 {
		return nil, nil
	}
	return items, zones
}

// splitAnswerPairs parses comma-separated "item-zone" pairs. A comma
// segment without a dash extends the previous pair's zone, so zones
// containing commas followed by dash-free text survive.
func splitAnswerPairs(answer string) [][2]string {
	var pairs [][2]string
	for _, part := range strings.Split(answer, ",") {
		if i := strings.Index(part, "-"); i >= 0 {
			pairs = append(pairs, [2]string{
				strings.TrimSpace(part[:i]),
				strings.TrimSpace(part[i+1:]),
			})
		} else if n := len(pairs); n > 0 {
			pairs[n-1][1] = pairs[n-1][1] + "," + strings.TrimSpace(part)
		}
	}
	return pairs
}

// deriveMapping builds the item->zone mapping from the answer string,
// keeping only pairs whose sides belong to the partition.
func deriveMapping(answer string, items, zones []string) map[string]string {
	mapping := map[string]string{}
	for _, part := range strings.Split(answer, ",") {
		i := strings.Index(part, "-")
		if i < 0 {
			continue
		}
		item := strings.TrimSpace(part[:i])
		zone := strings.TrimSpace(part[i+1:])
		if containsString(items, item) && containsString(zones, zone) {
			mapping[item] = zone
		}
	}
	return mapping
}

func positionalMapping(items, zones []string) map[string]string {
	mapping := map[string]string{}
	for i, item := range items {
		if i < len(zones) {
			mapping[item] = zones[i]
		}
	}
	return mapping
}

// repairMultiDashAnswer collapses answer tokens carrying two or more dashes
// (e.g. "Name-Role-Extra") to their first and last segments. When the
// repaired pair count matches the drag items, the answer is rewritten
// positionally and the mapping values take the "item-role" form. The
// heuristic targets one observed model failure mode and is deliberately not
// extended further.
func repairMultiDashAnswer(answer string, cleaned, dragItems []string, mapping map[string]string, log *logrus.Entry) (string, map[string]string) {
	if !strings.Contains(answer, ",") {
		return answer, mapping
	}

	repairNeeded := false
	var fixed []string
	for _, part := range strings.Split(answer, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segs := dashSegments(part)
		switch {
		case len(segs) >= 3:
			repairNeeded = true
			fixed = append(fixed, segs[0]+"-"+segs[len(segs)-1])
		case len(segs) == 2:
			fixed = append(fixed, part)
		}
	}
	if !repairNeeded {
		return answer, mapping
	}

	if len(dragItems) > 0 && len(dragItems) == len(fixed) {
		final := make([]string, len(dragItems))
		for i, item := range dragItems {
			final[i] = item + "-" + lastDashSegment(fixed[i])
		}
		answer = strings.Join(final, ",")
		log.Infof("repaired matching answer format: %s", answer)

		rewritten := map[string]string{}
		for _, item := range dragItems {
			if zone, ok := mapping[item]; ok {
				rewritten[item] = item + "-" + lastDashSegment(zone)
			}
		}
		return answer, rewritten
	}

	if len(cleaned) >= minMatchingOptions && len(fixed) >= 2 {
		items := cleaned[:len(cleaned)/2]
		if len(items) == len(fixed) {
			final := make([]string, len(items))
			for i := range items {
				final[i] = items[i] + "-" + fixed[i]
			}
			answer = strings.Join(final, ",")
			log.Infof("repaired matching answer format: %s", answer)
		}
	}
	return answer, mapping
}

// dashSegments splits on dashes, trimming and dropping empty segments.
func dashSegments(s string) []string {
	var segs []string
	for _, seg := range strings.Split(s, "-") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

func lastDashSegment(s string) string {
	parts := strings.Split(s, "-")
	return strings.TrimSpace(parts[len(parts)-1])
}
