package remote

import (
	"context"
	"sort"
)

// LeaderboardEntry is one ranked row. Entries are transient: regenerated on
// every fetch, never persisted.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
}

// FetchLeaderboard returns the fixed leaderboard plus one live entry for the
// local user. The result is unranked; callers sort with SortLeaderboard.
func (c *Client) FetchLeaderboard(ctx context.Context, username string, points, level int) ([]LeaderboardEntry, error) {
	if err := c.wait(ctx, delayLeaderboard); err != nil {
		return nil, err
	}
	return []LeaderboardEntry{
		{Username: "LanguageMaster", Points: 15420, Level: 16},
		{Username: "CulturalExplorer", Points: 12890, Level: 13},
		{Username: "BusinessPro", Points: 11250, Level: 12},
		{Username: "MovieBuff", Points: 9870, Level: 10},
		{Username: username, Points: points, Level: level},
	}, nil
}

// SortLeaderboard ranks entries by points descending, in place.
func SortLeaderboard(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
}
