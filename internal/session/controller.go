// Package session connects a player to the simulation: it owns the player
// records and the remembered nickname, routes input to the simulation and
// persists results when a run ends.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lilyhop/internal/game"
	"github.com/vovakirdan/lilyhop/internal/storage"
)

// Storage keys
const (
	PlayersKey  = "frogGamePlayers"
	NicknameKey = "frogGameNickname"
)

// MaxNicknameLen is the longest accepted nickname, in runes.
const MaxNicknameLen = 20

var (
	ErrEmptyNickname   = errors.New("session: nickname is empty")
	ErrNicknameTooLong = fmt.Errorf("session: nickname longer than %d characters", MaxNicknameLen)
)

// RunRecorder stores the history of finished runs.
type RunRecorder interface {
	SaveRun(nickname string, score int) (string, error)
}

// LastRun describes the most recently finished run.
type LastRun struct {
	Score   int
	NewBest bool
}

// Controller is the session layer for one player. It is a game.Sink and
// registers itself on the simulation it is given.
type Controller struct {
	game.NopSink

	store    storage.KV
	sim      *game.Simulation
	logger   *log.Logger
	now      func() time.Time
	recorder RunRecorder

	players  []Player
	nickname string
	fixed    bool // Nickname comes from the caller, not the store
	last     LastRun
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithClock sets the time source used for new player records.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithRecorder records every finished run.
func WithRecorder(r RunRecorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithFixedNickname plays as nickname without reading or writing the
// remembered nickname. SSH sessions use it so players on one server do not
// share an identity.
func WithFixedNickname(nickname string) Option {
	return func(c *Controller) {
		c.nickname = strings.TrimSpace(nickname)
		c.fixed = true
	}
}

// New creates a controller for sim backed by store. Call Init before use.
func New(store storage.KV, sim *game.Simulation, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		sim:    sim,
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	sim.AddSink(c)
	return c
}

// Init loads the player records, merges the seeded players and makes sure
// the remembered nickname has a record. Storage problems are logged and
// leave the session usable with whatever could be loaded.
func (c *Controller) Init() {
	if !c.fixed {
		data, err := c.store.Load(NicknameKey)
		if err != nil {
			c.logger.Warn("could not load nickname", "error", err)
		}
		c.nickname = strings.TrimSpace(string(data))
	}

	now := c.now()
	c.updatePlayers(func(players []Player) []Player {
		for _, seed := range seededPlayers {
			seed.CreatedAt = now
			players = upsert(players, seed)
		}
		if c.nickname != "" {
			players = upsert(players, Player{Nickname: c.nickname, CreatedAt: now})
		}
		return players
	})

	c.logger.Debug("session ready", "nickname", c.nickname, "players", len(c.players))
}

// ValidateNickname trims nickname and checks it can be registered.
func ValidateNickname(nickname string) (string, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return "", ErrEmptyNickname
	}
	if utf8.RuneCountInString(nickname) > MaxNicknameLen {
		return "", ErrNicknameTooLong
	}
	return nickname, nil
}

// Register validates and remembers nickname, then starts a run.
func (c *Controller) Register(nickname string) error {
	nickname, err := ValidateNickname(nickname)
	if err != nil {
		return err
	}

	c.Remember(nickname)
	c.sim.Start()
	return nil
}

// Remember stores nickname and gives it a record without starting a run.
// The nickname must already be valid.
func (c *Controller) Remember(nickname string) {
	c.nickname = nickname
	if !c.fixed {
		if err := c.store.Save(NicknameKey, []byte(nickname)); err != nil {
			c.logger.Warn("could not save nickname", "error", err)
		}
	}

	now := c.now()
	c.updatePlayers(func(players []Player) []Player {
		return upsert(players, Player{Nickname: nickname, CreatedAt: now})
	})
	c.logger.Info("player registered", "nickname", nickname)
}

// HandleInput is the single jump-requested signal. Outside a run it starts
// a new one, provided a nickname is registered; during a run it jumps.
// It reports whether the input did anything.
func (c *Controller) HandleInput() bool {
	if c.sim.Phase() == game.PhaseRunning {
		if c.sim.Airborne() {
			return false
		}
		c.sim.RequestJump()
		return true
	}

	if c.nickname == "" {
		return false
	}
	c.sim.Start()
	return true
}

// OnRunEnded raises the player's highscore and records the run.
func (c *Controller) OnRunEnded(score int) {
	best := c.HighScore()
	c.last = LastRun{Score: score, NewBest: c.nickname != "" && score > best}

	if c.last.NewBest {
		nickname := c.nickname
		now := c.now()
		c.updatePlayers(func(players []Player) []Player {
			return upsert(players, Player{Nickname: nickname, HighScore: score, CreatedAt: now})
		})
		c.logger.Info("new highscore", "nickname", nickname, "score", score, "previous", best)
	}

	if c.recorder != nil {
		runID, err := c.recorder.SaveRun(c.nickname, score)
		if err != nil {
			c.logger.Warn("could not record run", "error", err)
		} else {
			c.logger.Debug("run recorded", "run_id", runID, "score", score)
		}
	}
}

// updatePlayers applies fn to the stored collection and keeps the result.
// On a storage failure fn is applied to the in-memory copy instead.
func (c *Controller) updatePlayers(fn func([]Player) []Player) {
	var merged []Player
	err := storage.Update(c.store, PlayersKey, func(old []byte) ([]byte, error) {
		players, dropped, err := decodePlayers(old)
		if err != nil {
			c.logger.Warn("discarding unreadable player records", "error", err)
			players = nil
		} else if dropped > 0 {
			c.logger.Warn("skipped malformed player records", "count", dropped)
		}
		merged = fn(players)
		return encodePlayers(merged)
	})
	if err != nil {
		c.logger.Warn("could not save players", "error", err)
		merged = fn(append([]Player(nil), c.players...))
	}
	c.players = merged
}

// Reload merges the stored records into the session's copy, picking up
// highscores written by other sessions sharing the store. On a storage
// failure the session keeps what it has.
func (c *Controller) Reload() {
	data, err := c.store.Load(PlayersKey)
	if err != nil {
		c.logger.Warn("could not reload players", "error", err)
		return
	}
	players, _, err := decodePlayers(data)
	if err != nil {
		c.logger.Warn("could not reload players", "error", err)
		return
	}
	for _, p := range c.players {
		players = upsert(players, p)
	}
	c.players = players
}

// Leaderboard reloads the records and returns the best n players.
// n <= 0 means 10.
func (c *Controller) Leaderboard(n int) []Player {
	if n <= 0 {
		n = 10
	}
	c.Reload()
	sorted := sortPlayers(c.players)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Players returns every record, best first.
func (c *Controller) Players() []Player {
	return sortPlayers(c.players)
}

// Nickname returns the registered nickname, empty if none.
func (c *Controller) Nickname() string {
	return c.nickname
}

// HighScore returns the registered player's highscore.
func (c *Controller) HighScore() int {
	p, _ := find(c.players, c.nickname)
	return p.HighScore
}

// LastRun returns the outcome of the most recent run in this session.
func (c *Controller) LastRun() LastRun {
	return c.last
}

// Simulation returns the simulation this controller drives.
func (c *Controller) Simulation() *game.Simulation {
	return c.sim
}
