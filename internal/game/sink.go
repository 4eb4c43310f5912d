package game

// Sink receives simulation events. The simulation never renders; the
// platform and the session controller observe it through a Sink.
// Methods are called synchronously from inside the simulation and must not
// call back into it.
type Sink interface {
	OnRunStarted(run uint64)
	OnScoreChanged(score int)
	OnPadSpawned(pad PadView)
	OnPadMoved(pad PadView)
	OnPadTransformed(pad PadView)
	OnPadRemoved()
	OnRunEnded(finalScore int)
	OnFrogJumped()
	OnFrogLanded()
}

// NopSink ignores every event. Embed it to implement only some methods.
type NopSink struct{}

func (NopSink) OnRunStarted(uint64)      {}
func (NopSink) OnScoreChanged(int)       {}
func (NopSink) OnPadSpawned(PadView)     {}
func (NopSink) OnPadMoved(PadView)       {}
func (NopSink) OnPadTransformed(PadView) {}
func (NopSink) OnPadRemoved()            {}
func (NopSink) OnRunEnded(int)           {}
func (NopSink) OnFrogJumped()            {}
func (NopSink) OnFrogLanded()            {}

// Sinks fans every event out to each sink in order.
type Sinks []Sink

func (s Sinks) OnRunStarted(run uint64) {
	for _, k := range s {
		k.OnRunStarted(run)
	}
}

func (s Sinks) OnScoreChanged(score int) {
	for _, k := range s {
		k.OnScoreChanged(score)
	}
}

func (s Sinks) OnPadSpawned(pad PadView) {
	for _, k := range s {
		k.OnPadSpawned(pad)
	}
}

func (s Sinks) OnPadMoved(pad PadView) {
	for _, k := range s {
		k.OnPadMoved(pad)
	}
}

func (s Sinks) OnPadTransformed(pad PadView) {
	for _, k := range s {
		k.OnPadTransformed(pad)
	}
}

func (s Sinks) OnPadRemoved() {
	for _, k := range s {
		k.OnPadRemoved()
	}
}

func (s Sinks) OnRunEnded(finalScore int) {
	for _, k := range s {
		k.OnRunEnded(finalScore)
	}
}

func (s Sinks) OnFrogJumped() {
	for _, k := range s {
		k.OnFrogJumped()
	}
}

func (s Sinks) OnFrogLanded() {
	for _, k := range s {
		k.OnFrogLanded()
	}
}
