package stats

import (
	"context"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dafoma/lingualearn/internal/data"
	"github.com/dafoma/lingualearn/internal/remote"
	"github.com/dafoma/lingualearn/internal/store"
)

func openTestService(t *testing.T) *data.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc, err := data.NewService(context.Background(), st)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func testScreen(t *testing.T) *StatsScreen {
	t.Helper()
	return New(openTestService(t), remote.NewClient(remote.Config{LatencyScale: 0}))
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestLeaderboardFetchLands(t *testing.T) {
	s := testScreen(t)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a fetch command from Init")
	}
	if !s.loading {
		t.Fatal("expected loading state after Init")
	}

	s.Update(cmd())
	if s.loading {
		t.Error("expected loading cleared after the fetch response")
	}
	if len(s.entries) == 0 {
		t.Error("expected leaderboard entries")
	}
}

func TestSyncDoesNotStrandInFlightFetch(t *testing.T) {
	s := testScreen(t)

	fetchCmd := s.Init()
	if fetchCmd == nil {
		t.Fatal("expected a fetch command from Init")
	}

	// Start a sync while the leaderboard fetch is still in flight.
	_, syncCmd := s.Update(keyPress('s'))
	if syncCmd == nil {
		t.Fatal("expected a sync command")
	}

	// The fetch response arrives after the sync began; it must still land.
	s.Update(fetchCmd())
	if s.loading {
		t.Fatal("expected the fetch response to land, still loading")
	}
	if len(s.entries) == 0 {
		t.Error("expected leaderboard entries")
	}

	// The sync response lands on its own counter.
	s.Update(syncCmd())
	if s.syncing {
		t.Error("expected syncing cleared")
	}
	if !s.synced {
		t.Error("expected synced state")
	}

	// Reload must not be wedged.
	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Error("expected reload to start")
	}
}

func TestStaleLeaderboardResponseDropped(t *testing.T) {
	s := testScreen(t)

	firstCmd := s.Init()

	// A reload supersedes the first fetch.
	s.loading = false
	_, secondCmd := s.Update(keyPress('r'))
	if secondCmd == nil {
		t.Fatal("expected a reload command")
	}

	s.Update(firstCmd())
	if !s.loading {
		t.Error("expected the stale response to be dropped")
	}

	s.Update(secondCmd())
	if s.loading {
		t.Error("expected the fresh response to land")
	}
}
