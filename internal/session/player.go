package session

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Player is a leaderboard record.
type Player struct {
	Nickname  string    `json:"nickname"`
	HighScore int       `json:"highscore"`
	CreatedAt time.Time `json:"createdAt"`
	IsSeeded  bool      `json:"isSeeded,omitempty"`
}

// seededPlayers are merged into every collection so a fresh install has a
// leaderboard to beat.
var seededPlayers = []Player{
	{Nickname: "BADcrafter", HighScore: 88, IsSeeded: true},
	{Nickname: "Tailone", HighScore: 82, IsSeeded: true},
}

// storedPlayer is the lenient wire form of a Player. Records written by
// older clients may carry a date-only or otherwise odd createdAt, and a
// fractional highscore.
type storedPlayer struct {
	Nickname  string  `json:"nickname"`
	HighScore float64 `json:"highscore"`
	CreatedAt string  `json:"createdAt"`
	IsSeeded  bool    `json:"isSeeded"`
}

// createdAtLayouts are tried in order; anything else reads as the zero time.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func parseCreatedAt(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// decodePlayers parses a stored collection. The collection must be a JSON
// array; a malformed element is skipped and counted in dropped without
// affecting the others. Blank nicknames are dropped and duplicates collapse
// onto the higher score.
func decodePlayers(data []byte) (players []Player, dropped int, err error) {
	if len(data) == 0 {
		return nil, 0, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, err
	}

	for _, elem := range raw {
		var sp storedPlayer
		if err := json.Unmarshal(elem, &sp); err != nil {
			dropped++
			continue
		}
		p := Player{
			Nickname:  strings.TrimSpace(sp.Nickname),
			HighScore: max(int(sp.HighScore), 0),
			CreatedAt: parseCreatedAt(sp.CreatedAt),
			IsSeeded:  sp.IsSeeded,
		}
		if p.Nickname == "" {
			dropped++
			continue
		}
		players = upsert(players, p)
	}
	return players, dropped, nil
}

func encodePlayers(players []Player) ([]byte, error) {
	if players == nil {
		players = []Player{}
	}
	return json.Marshal(players)
}

// upsert adds p, or raises the existing record's highscore to p's.
// An existing record keeps its creation time and seeded flag.
func upsert(players []Player, p Player) []Player {
	for i := range players {
		if players[i].Nickname == p.Nickname {
			if p.HighScore > players[i].HighScore {
				players[i].HighScore = p.HighScore
			}
			return players
		}
	}
	return append(players, p)
}

func find(players []Player, nickname string) (Player, bool) {
	for _, p := range players {
		if p.Nickname == nickname {
			return p, true
		}
	}
	return Player{}, false
}

// sortPlayers returns a copy ordered by highscore, best first. Ties go to
// the older record, then to the nickname.
func sortPlayers(players []Player) []Player {
	out := append([]Player(nil), players...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HighScore != b.HighScore {
			return a.HighScore > b.HighScore
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.Nickname < b.Nickname
	})
	return out
}
