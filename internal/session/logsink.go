package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lilyhop/internal/game"
)

// LogSink logs simulation events. Lifecycle events go out at info level,
// per-tick noise at debug.
type LogSink struct {
	Logger *log.Logger
}

var _ game.Sink = LogSink{}

func (s LogSink) OnRunStarted(run uint64) {
	s.Logger.Info("run started", "run", run)
}

func (s LogSink) OnScoreChanged(score int) {
	s.Logger.Debug("score", "score", score)
}

func (s LogSink) OnPadSpawned(pad game.PadView) {
	s.Logger.Debug("pad spawned", "kind", pad.Kind, "x", pad.X, "dir", pad.Dir, "speed", pad.Speed)
}

func (s LogSink) OnPadMoved(game.PadView) {}

func (s LogSink) OnPadTransformed(pad game.PadView) {
	s.Logger.Debug("pad transformed", "kind", pad.Kind, "x", pad.X)
}

func (s LogSink) OnPadRemoved() {
	s.Logger.Debug("pad removed")
}

func (s LogSink) OnRunEnded(score int) {
	s.Logger.Info("run ended", "score", score)
}

func (s LogSink) OnFrogJumped() {
	s.Logger.Debug("frog jumped")
}

func (s LogSink) OnFrogLanded() {
	s.Logger.Debug("frog landed")
}
