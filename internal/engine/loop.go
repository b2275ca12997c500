package engine

import "time"

// Loop drives the engine with self-rescheduling ticks. Every mutation
// — tick, direction change, pause toggle, reset — runs as a command on
// one goroutine, giving the serialization the engine relies on. A
// generation counter invalidates stale timers: a fire scheduled before
// a cancel or an input-triggered immediate advance is a no-op.
type Loop struct {
	eng  *Engine
	emit func(Snapshot)

	cmds chan func()
	done chan struct{}

	// Scheduler state, touched only from the command goroutine.
	timer   *time.Timer
	gen     uint64
	armed   bool
	stopped bool
}

// NewLoop creates a loop around eng and starts its command goroutine.
// The loop is idle until Start; register a snapshot callback first.
func NewLoop(eng *Engine) *Loop {
	l := &Loop{
		eng:  eng,
		cmds: make(chan func(), 16),
		done: make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		select {
		case fn := <-l.cmds:
			fn()
		case <-l.done:
			return
		}
	}
}

// enqueue submits a command for serialized execution. Commands
// submitted after Stop are dropped.
func (l *Loop) enqueue(fn func()) {
	select {
	case l.cmds <- fn:
	case <-l.done:
	}
}

// OnSnapshot registers the callback invoked after every state-affecting
// tick or command. The snapshot is a value; the callback may retain it.
func (l *Loop) OnSnapshot(fn func(Snapshot)) {
	l.enqueue(func() { l.emit = fn })
}

func (l *Loop) publish(snap Snapshot) {
	if l.emit != nil {
		l.emit(snap)
	}
}

// arm schedules the next tick after the current speed interval.
func (l *Loop) arm() {
	l.gen++
	g := l.gen
	l.armed = true
	l.timer = time.AfterFunc(l.eng.Interval(), func() {
		l.enqueue(func() { l.fire(g) })
	})
}

// cancel invalidates the outstanding schedule. Any already-queued fire
// for an older generation becomes a no-op.
func (l *Loop) cancel() {
	l.gen++
	l.armed = false
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

// fire runs one scheduled tick. Stale generations and non-running
// states do nothing and do not reschedule.
func (l *Loop) fire(g uint64) {
	if g != l.gen || l.eng.State() != StateRunning {
		return
	}
	l.armed = false
	snap := l.eng.Advance()
	l.publish(snap)
	if snap.State == StateRunning {
		l.arm()
	}
}

// Start transitions the engine to Running and arms the tick schedule.
func (l *Loop) Start() {
	l.enqueue(func() {
		l.eng.Start()
		l.publish(l.eng.Snapshot())
		if l.eng.State() == StateRunning {
			l.cancel()
			l.arm()
		}
	})
}

// SetDirection forwards a direction command. An accepted change cancels
// the pending tick, advances immediately, and reschedules — input takes
// priority over waiting out the tick boundary. Rejected changes (wrong
// state, 180° reversal) are dropped silently.
func (l *Loop) SetDirection(d Direction) {
	l.enqueue(func() {
		if !l.eng.SetDirection(d) {
			return
		}
		l.cancel()
		snap := l.eng.Advance()
		l.publish(snap)
		if snap.State == StateRunning {
			l.arm()
		}
	})
}

// TogglePause flips Running/Paused. Pausing cancels the outstanding
// schedule synchronously; resuming re-arms it.
func (l *Loop) TogglePause() {
	l.enqueue(func() {
		l.eng.TogglePause()
		snap := l.eng.Snapshot()
		l.publish(snap)
		l.cancel()
		if snap.State == StateRunning {
			l.arm()
		}
	})
}

// NewGame cancels any schedule and re-seeds a fresh Idle session.
func (l *Loop) NewGame(seed int64) {
	l.enqueue(func() {
		l.cancel()
		l.eng.Reset(seed)
		l.publish(l.eng.Snapshot())
	})
}

// Stop cancels the schedule and shuts down the command goroutine.
// Subsequent commands are dropped.
func (l *Loop) Stop() {
	l.enqueue(func() {
		if l.stopped {
			return
		}
		l.stopped = true
		l.cancel()
		close(l.done)
	})
}
