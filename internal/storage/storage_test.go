package storage

import (
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := openTestStore(t)

	prefs := &Preferences{
		SearchMode:  "greedy",
		SearchDepth: 5,
		TimeControl: "3m",
	}
	if err := store.SavePreferences(prefs); err != nil {
		t.Fatalf("save preferences: %v", err)
	}

	loaded, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("load preferences: %v", err)
	}
	if loaded.SearchMode != "greedy" || loaded.SearchDepth != 5 || loaded.TimeControl != "3m" {
		t.Errorf("loaded preferences = %+v", loaded)
	}
	if loaded.LastPlayed.IsZero() {
		t.Error("save should stamp LastPlayed")
	}
}

func TestLoadPreferencesDefaults(t *testing.T) {
	store := openTestStore(t)

	prefs, err := store.LoadPreferences()
	if err != nil {
		t.Fatalf("load preferences: %v", err)
	}
	if prefs.SearchMode != "minimax" || prefs.SearchDepth != 3 {
		t.Errorf("defaults = %+v", prefs)
	}
}

func TestSaveGameAssignsID(t *testing.T) {
	store := openTestStore(t)

	rec := &GameRecord{
		Moves:  []string{"e2e4", "e7e5", "g1f3"},
		Result: "draw",
	}
	if err := store.SaveGame(rec); err != nil {
		t.Fatalf("save game: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("SaveGame should assign an ID")
	}
	if rec.PlayedAt.IsZero() {
		t.Error("SaveGame should stamp PlayedAt")
	}

	loaded, err := store.LoadGame(rec.ID)
	if err != nil {
		t.Fatalf("load game: %v", err)
	}
	if len(loaded.Moves) != 3 || loaded.Moves[0] != "e2e4" {
		t.Errorf("loaded moves = %v", loaded.Moves)
	}
	if loaded.Result != "draw" {
		t.Errorf("loaded result = %q", loaded.Result)
	}
}

func TestLoadGameMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadGame("no-such-game"); err == nil {
		t.Error("expected an error for a missing game")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v", err)
	}
}

func TestListGamesMostRecentFirst(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	for i, result := range []string{"white", "black", "draw"} {
		rec := &GameRecord{
			Moves:    []string{"e2e4"},
			Result:   result,
			PlayedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.SaveGame(rec); err != nil {
			t.Fatalf("save game %d: %v", i, err)
		}
	}

	games, err := store.ListGames()
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("listed %d games, want 3", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i].PlayedAt.After(games[i-1].PlayedAt) {
			t.Fatalf("games out of order: %v before %v", games[i-1].PlayedAt, games[i].PlayedAt)
		}
	}
}

func TestStatsAccumulate(t *testing.T) {
	store := openTestStore(t)

	records := []*GameRecord{
		{Moves: make([]string, 40), Result: "white", Duration: 10 * time.Minute},
		{Moves: make([]string, 62), Result: "black", Duration: 20 * time.Minute},
		{Moves: make([]string, 12), Result: "draw", Duration: 5 * time.Minute},
	}
	for _, rec := range records {
		if err := store.SaveGame(rec); err != nil {
			t.Fatalf("save game: %v", err)
		}
	}

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("load stats: %v", err)
	}
	if stats.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d", stats.GamesPlayed)
	}
	if stats.WhiteWins != 1 || stats.BlackWins != 1 || stats.Draws != 1 {
		t.Errorf("results = %d/%d/%d", stats.WhiteWins, stats.BlackWins, stats.Draws)
	}
	if stats.TotalPlayTime != 35*time.Minute {
		t.Errorf("TotalPlayTime = %v", stats.TotalPlayTime)
	}
	if stats.LongestGameLen != 62 {
		t.Errorf("LongestGameLen = %d", stats.LongestGameLen)
	}
}

func TestLoadStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatalf("load stats: %v", err)
	}
	if *stats != (Stats{}) {
		t.Errorf("stats = %+v, want zero", stats)
	}
}
