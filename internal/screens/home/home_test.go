package home

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

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

func TestMenuDetailsRefreshWithProgress(t *testing.T) {
	svc := openTestService(t)
	h := New(svc, remote.NewClient(remote.Config{LatencyScale: 0}))
	ctx := context.Background()

	view := h.View(100, 40)
	if !strings.Contains(view, "0/3 played") {
		t.Fatalf("expected fresh hub to show 0/3 played")
	}

	// Finish a challenge and a course while the hub screen stays alive.
	if err := svc.AddChallengeScore(ctx, svc.Challenges()[0].ID, 120); err != nil {
		t.Fatalf("add score: %v", err)
	}
	if err := svc.UpdateCourseProgress(ctx, svc.Courses()[0].ID, 1.0); err != nil {
		t.Fatalf("update course: %v", err)
	}

	view = h.View(100, 40)
	if !strings.Contains(view, "1/3 played") {
		t.Error("expected challenge count to refresh")
	}
	if !strings.Contains(view, "1/3 completed") {
		t.Error("expected course count to refresh")
	}
}
