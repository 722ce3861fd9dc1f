package leaderboard

import (
	"context"
	"fmt"
	"testing"
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("derives rounded percentage", func(t *testing.T) {
		svc := NewService(NewMemoryStore())

		if err := svc.Submit(ctx, Submission{PlayerName: "ana", Score: 2, TotalQuestions: 3, TimeTaken: 60}); err != nil {
			t.Fatal(err)
		}

		entries, err := svc.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if entries[0].Percentage != 66.7 {
			t.Errorf("expected 66.7, got %v", entries[0].Percentage)
		}
	})

	t.Run("ranks by percentage then time", func(t *testing.T) {
		svc := NewService(NewMemoryStore())

		subs := []Submission{
			{PlayerName: "slow-perfect", Score: 10, TotalQuestions: 10, TimeTaken: 300},
			{PlayerName: "fast-eight", Score: 8, TotalQuestions: 10, TimeTaken: 120},
			{PlayerName: "fast-perfect", Score: 10, TotalQuestions: 10, TimeTaken: 90},
		}
		for _, s := range subs {
			if err := svc.Submit(ctx, s); err != nil {
				t.Fatal(err)
			}
		}

		entries, err := svc.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		got := []string{entries[0].PlayerName, entries[1].PlayerName, entries[2].PlayerName}
		want := []string{"fast-perfect", "slow-perfect", "fast-eight"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("unexpected ranking: got %v, want %v", got, want)
			}
		}
	})

	t.Run("evicts beyond capacity", func(t *testing.T) {
		svc := NewService(NewMemoryStore())

		for i := 0; i < maxEntries; i++ {
			sub := Submission{
				PlayerName:     fmt.Sprintf("player-%d", i),
				Score:          5,
				TotalQuestions: 10,
				TimeTaken:      100,
			}
			if err := svc.Submit(ctx, sub); err != nil {
				t.Fatal(err)
			}
		}

		// A perfect score bumps the worst entry off the board.
		if err := svc.Submit(ctx, Submission{PlayerName: "champion", Score: 10, TotalQuestions: 10, TimeTaken: 50}); err != nil {
			t.Fatal(err)
		}

		entries, err := svc.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != maxEntries {
			t.Fatalf("expected %d entries, got %d", maxEntries, len(entries))
		}
		if entries[0].PlayerName != "champion" {
			t.Errorf("expected champion on top, got %q", entries[0].PlayerName)
		}
	})

	t.Run("list on empty board returns empty slice", func(t *testing.T) {
		svc := NewService(NewMemoryStore())

		entries, err := svc.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if entries == nil || len(entries) != 0 {
			t.Fatalf("expected empty non-nil slice, got %v", entries)
		}
	})
}
