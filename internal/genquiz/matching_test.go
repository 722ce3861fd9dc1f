package genquiz

import (
	"encoding/json"
	"reflect"
	"testing"
)

func matchingCandidate(options json.RawMessage, answer string) candidate {
	return candidate{
		Question: "Match the items",
		Options:  options,
		Answer:   answer,
		Type:     TypeMatching,
		Level:    DefaultLevel,
		Topic:    DefaultTopic,
	}
}

func TestReconstructMatching(t *testing.T) {
	t.Run("drag and drop prefixes", func(t *testing.T) {
		c := matchingCandidate(
			json.RawMessage(`["DRAG: Paris","DRAG: London","DROP: France","DROP: England"]`),
			"Paris-France,London-England",
		)

		q, ok := reconstructMatching(c, testLog())
		if !ok {
			t.Fatal("expected question to be reconstructed")
		}
		d := q.MatchingDetail
		if d == nil {
			t.Fatal("expected matching detail")
		}
		if !reflect.DeepEqual(d.DragItems, []string{"Paris", "London"}) {
			t.Errorf("unexpected drag items: %v", d.DragItems)
		}
		if !reflect.DeepEqual(d.DropZones, []string{"France", "England"}) {
			t.Errorf("unexpected drop zones: %v", d.DropZones)
		}
		if !reflect.DeepEqual(q.Options, []string{"Paris", "London", "France", "England"}) {
			t.Errorf("prefixes should be stripped from options: %v", q.Options)
		}
		want := map[string]string{"Paris": "France", "London": "England"}
		if !reflect.DeepEqual(d.AnswerMapping, want) {
			t.Errorf("unexpected mapping: %v", d.AnswerMapping)
		}
		if d.DragCount != 2 || d.DropCount != 2 {
			t.Errorf("unexpected counts: drag=%d drop=%d", d.DragCount, d.DropCount)
		}
	})

	t.Run("partition inferred from answer", func(t *testing.T) {
		c := matchingCandidate(
			json.RawMessage(`["Paris","London","France","England"]`),
			"Paris-France,London-England",
		)

		q, ok := reconstructMatching(c, testLog())
		if !ok {
			t.Fatal("expected question to be reconstructed")
		}
		d := q.MatchingDetail
		if !reflect.DeepEqual(d.DragItems, []string{"Paris", "London"}) {
			t.Errorf("unexpected drag items: %v", d.DragItems)
		}
		if !reflect.DeepEqual(d.DropZones, []string{"France", "England"}) {
			t.Errorf("unexpected drop zones: %v", d.DropZones)
		}
		want := map[string]string{"Paris": "France", "London": "England"}
		if !reflect.DeepEqual(d.AnswerMapping, want) {
			t.Errorf("unexpected mapping: %v", d.AnswerMapping)
		}
		if q.Answer != "Paris-France,London-England" {
			t.Errorf("well-formed answer should be preserved, got %q", q.Answer)
		}
	})

	t.Run("comma joined options string", func(t *testing.T) {
		c := matchingCandidate(
			json.RawMessage(`"Paris, London, France, England"`),
			"Paris-France,London-England",
		)

		q, ok := reconstructMatching(c, testLog())
		if !ok {
			t.Fatal("expected question to be reconstructed")
		}
		if !reflect.DeepEqual(q.Options, []string{"Paris", "London", "France", "England"}) {
			t.Errorf("unexpected options: %v", q.Options)
		}
		want := map[string]string{"Paris": "France", "London": "England"}
		if !reflect.DeepEqual(q.MatchingDetail.AnswerMapping, want) {
			t.Errorf("unexpected mapping: %v", q.MatchingDetail.AnswerMapping)
		}
	})

	t.Run("numeric index prefixes stripped", func(t *testing.T) {
		c := matchingCandidate(
			json.RawMessage(`["1-Paris","2-London","France","England"]`),
			"Paris-France,London-England",
		)

		q, ok := reconstructMatching(c, testLog())
		if !ok {
			t.Fatal("expected question to be reconstructed")
		}
		if !reflect.DeepEqual(q.Options, []string{"Paris", "London", "France", "England"}) {
			t.Errorf("index prefixes should be stripped: %v", q.Options)
		}
	})

	t.Run("positional fallback without derivable partition", func(t *testing.T) {
		c := matchingCandidate(
			json.RawMessage(`["Alpha","Beta","One","Two"]`),
			"",
		)

		q, ok := reconstructMatching(c, testLog())
		if !ok {
			t.Fatal("expected question to be reconstructed")
		}
		d := q.MatchingDetail
		if !reflect.DeepEqual(d.DragItems, []string{"Alpha", "Beta"}) {
			t.Errorf("unexpected drag items: %v", d.DragItems)
		}
		if !reflect.DeepEqual(d.DropZones, []string{"One", "Two"}) {
			t.Errorf("unexpected drop zones: %v", d.DropZones)
		}
		want := map[string]string{"Alpha": "One", "Beta": "Two"}
		if !reflect.DeepEqual(d.AnswerMapping, want) {
			t.Errorf("unexpected mapping: %v", d.AnswerMapping)
		}
	})

	t.Run("too few options dropped", func(t *testing.T) {
		c := matchingCandidate(json.RawMessage(`["Paris","France"]`), "Paris-France")

		if _, ok := reconstructMatching(c, testLog()); ok {
			t.Fatal("expected candidate with fewer than 4 options to be dropped")
		}
	})

	t.Run("multi dash answer repaired", func(t *testing.T) {
		c := matchingCandidate(
			json.RawMessage(`["Dr. Smith","Mary Jones","CEO","CTO"]`),
			"Dr. Smith-Smith-CEO,Mary Jones-Jones-CTO",
		)

		q, ok := reconstructMatching(c, testLog())
		if !ok {
			t.Fatal("expected question to be reconstructed")
		}
		if q.Answer != "Dr. Smith-CEO,Mary Jones-CTO" {
			t.Errorf("expected repaired answer, got %q", q.Answer)
		}
		d := q.MatchingDetail
		want := map[string]string{
			"Dr. Smith":  "Dr. Smith-CEO",
			"Mary Jones": "Mary Jones-CTO",
		}
		if !reflect.DeepEqual(d.AnswerMapping, want) {
			t.Errorf("unexpected rewritten mapping: %v", d.AnswerMapping)
		}
	})

	t.Run("repair is idempotent on clean answers", func(t *testing.T) {
		c := matchingCandidate(
			json.RawMessage(`["Paris","London","France","England"]`),
			"Paris-France,London-England",
		)

		q1, _ := reconstructMatching(c, testLog())
		c.Answer = q1.Answer
		q2, _ := reconstructMatching(c, testLog())
		if q2.Answer != q1.Answer {
			t.Errorf("answer changed on second pass: %q vs %q", q1.Answer, q2.Answer)
		}
		if !reflect.DeepEqual(q2.MatchingDetail.AnswerMapping, q1.MatchingDetail.AnswerMapping) {
			t.Errorf("mapping changed on second pass")
		}
	})
}

func TestSplitAnswerPairs(t *testing.T) {
	t.Run("simple pairs", func(t *testing.T) {
		got := splitAnswerPairs("A-X,B-Y")
		want := [][2]string{{"A", "X"}, {"B", "Y"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("dashless segment extends previous zone", func(t *testing.T) {
		got := splitAnswerPairs("A-X, extra,B-Y")
		if len(got) != 2 {
			t.Fatalf("expected 2 pairs, got %v", got)
		}
		if got[0][1] != "X,extra" {
			t.Errorf("expected glued zone X,extra, got %q", got[0][1])
		}
	})
}
