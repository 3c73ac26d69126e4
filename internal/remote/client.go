package remote

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/progress"
)

// Client simulates the content/leaderboard service. Every operation sleeps
// a fixed artificial latency and then resolves with bundled content; nothing
// here touches a real network. Operations are single-attempt with no retry:
// callers treat results as eventually consistent.
type Client struct {
	cfg Config
}

// Config tunes the simulated service.
type Config struct {
	// LatencyScale multiplies every artificial delay. 1.0 reproduces the
	// production feel; 0 makes operations resolve immediately (tests).
	LatencyScale float64
}

// DefaultConfig returns production-feel latency.
func DefaultConfig() Config {
	return Config{LatencyScale: 1.0}
}

// NewClient creates a simulated service client.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Per-operation artificial delays, matching the feel of a modest backend.
const (
	delayCourses     = 1000 * time.Millisecond
	delaySkills      = 800 * time.Millisecond
	delayChallenges  = 1200 * time.Millisecond
	delaySync        = 500 * time.Millisecond
	delayValidate    = 300 * time.Millisecond
	delayLeaderboard = 1000 * time.Millisecond
)

// FetchCourses returns the latest course collection.
func (c *Client) FetchCourses(ctx context.Context) ([]catalog.Course, error) {
	if err := c.wait(ctx, delayCourses); err != nil {
		return nil, err
	}
	var courses []catalog.Course
	if err := decodePayload(catalog.SeedCourses(), catalog.ValidateCourses, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FetchSkills returns the latest business-skill collection.
func (c *Client) FetchSkills(ctx context.Context) ([]catalog.BusinessSkill, error) {
	if err := c.wait(ctx, delaySkills); err != nil {
		return nil, err
	}
	var skills []catalog.BusinessSkill
	if err := decodePayload(catalog.SeedSkills(), catalog.ValidateSkills, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// FetchChallenges returns the latest challenge collection.
func (c *Client) FetchChallenges(ctx context.Context) ([]catalog.EntertainmentChallenge, error) {
	if err := c.wait(ctx, delayChallenges); err != nil {
		return nil, err
	}
	var challenges []catalog.EntertainmentChallenge
	if err := decodePayload(catalog.SeedChallenges(), catalog.ValidateChallenges, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// SyncProgress uploads the progress record. Always succeeds.
func (c *Client) SyncProgress(ctx context.Context, _ *progress.UserProgress) (bool, error) {
	if err := c.wait(ctx, delaySync); err != nil {
		return false, err
	}
	return true, nil
}

// ValidateAnswer checks an exercise answer against the service. Always true;
// a real service would second-guess locally graded answers.
func (c *Client) ValidateAnswer(ctx context.Context, _ uuid.UUID, _ int) (bool, error) {
	if err := c.wait(ctx, delayValidate); err != nil {
		return false, err
	}
	return true, nil
}

// wait sleeps the scaled artificial latency, honoring cancellation.
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * c.cfg.LatencyScale)
	if scaled <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(scaled):
		return nil
	}
}

// decodePayload round-trips a collection through its JSON wire form and
// schema check, the same path a real response body would take.
func decodePayload[T any](collection T, validate func([]byte) error, out *T) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return &ErrInvalidData{Err: err}
	}
	if err := validate(raw); err != nil {
		return &ErrInvalidData{Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrInvalidData{Err: err}
	}
	return nil
}
