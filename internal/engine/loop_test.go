package engine

import (
	"testing"
	"time"
)

func loopTestConfig() Config {
	return Config{
		Dimension:         20,
		CellGrowthPerFood: 1,
		ScorePerFood:      1,
		InitialSpeedMs:    5,
		MinSpeedMs:        1,
		SpeedDecayPercent: 0,
		FoodPerSpeedStep:  10,
	}
}

// collect drains snapshots into a buffered channel for assertions.
func collect(l *Loop) chan Snapshot {
	ch := make(chan Snapshot, 256)
	l.OnSnapshot(func(s Snapshot) {
		ch <- s
	})
	return ch
}

func waitSnapshot(t *testing.T, ch chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
		return Snapshot{}
	}
}

func TestLoopTicksWhileRunning(t *testing.T) {
	eng := New(loopTestConfig(), 1)
	l := NewLoop(eng)
	defer l.Stop()

	ch := collect(l)
	l.Start()

	snap := waitSnapshot(t, ch)
	if snap.State != StateRunning {
		t.Fatalf("first snapshot state = %v, expected running", snap.State)
	}

	// The loop must keep rescheduling itself: ticks advance.
	var last uint64
	for i := 0; i < 5; i++ {
		snap = waitSnapshot(t, ch)
		if snap.Tick <= last && snap.Tick != 0 {
			t.Fatalf("tick did not advance: %d after %d", snap.Tick, last)
		}
		last = snap.Tick
	}
}

func TestLoopPauseCancelsSchedule(t *testing.T) {
	eng := New(loopTestConfig(), 1)
	l := NewLoop(eng)
	defer l.Stop()

	ch := collect(l)
	l.Start()
	waitSnapshot(t, ch)

	l.TogglePause()

	// Drain until the paused snapshot arrives (ticks already in
	// flight may precede it).
	var snap Snapshot
	for {
		snap = waitSnapshot(t, ch)
		if snap.State == StatePaused {
			break
		}
	}
	pausedTick := snap.Tick

	// No further snapshots may fire while paused; a stale scheduled
	// tick must be a no-op.
	select {
	case s := <-ch:
		t.Fatalf("snapshot emitted while paused: tick %d, state %v", s.Tick, s.State)
	case <-time.After(100 * time.Millisecond):
	}

	// Resuming picks up where the session left off.
	l.TogglePause()
	snap = waitSnapshot(t, ch)
	if snap.State != StateRunning {
		t.Fatalf("state after resume = %v, expected running", snap.State)
	}
	snap = waitSnapshot(t, ch)
	if snap.Tick <= pausedTick {
		t.Errorf("tick = %d after resume, expected > %d", snap.Tick, pausedTick)
	}
}

func TestLoopDirectionAdvancesImmediately(t *testing.T) {
	cfg := loopTestConfig()
	cfg.InitialSpeedMs = 500 // Long natural tick so the immediate advance is observable
	eng := New(cfg, 1)
	l := NewLoop(eng)
	defer l.Stop()

	ch := collect(l)
	l.Start()
	started := waitSnapshot(t, ch)

	l.SetDirection(DirLeft)

	// The advance must arrive well before the 500ms tick boundary.
	select {
	case snap := <-ch:
		if snap.Tick != started.Tick+1 {
			t.Errorf("tick = %d after direction change, expected %d", snap.Tick, started.Tick+1)
		}
		if snap.Direction != DirLeft {
			t.Errorf("direction = %v, expected left", snap.Direction)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("direction change did not trigger an immediate advance")
	}
}

func TestLoopRejectedDirectionIsSilent(t *testing.T) {
	cfg := loopTestConfig()
	cfg.InitialSpeedMs = 500
	eng := New(cfg, 1)
	l := NewLoop(eng)
	defer l.Stop()

	ch := collect(l)
	l.Start()
	waitSnapshot(t, ch)

	// Reversal from up to down: ignored, no tick, no snapshot.
	l.SetDirection(DirDown)

	select {
	case snap := <-ch:
		t.Fatalf("rejected direction emitted a snapshot: tick %d", snap.Tick)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLoopStopsOnGameOver(t *testing.T) {
	eng := New(loopTestConfig(), 1)
	l := NewLoop(eng)
	defer l.Stop()

	ch := collect(l)
	l.Start()

	// Hold left until the snake hits the wall.
	waitSnapshot(t, ch)
	l.SetDirection(DirLeft)

	var snap Snapshot
	for {
		snap = waitSnapshot(t, ch)
		if snap.State == StateOver {
			break
		}
	}

	// Terminal state: the loop must not reschedule.
	select {
	case s := <-ch:
		t.Fatalf("snapshot emitted after game over: tick %d", s.Tick)
	case <-time.After(100 * time.Millisecond):
	}

	// NewGame re-seeds a fresh idle session.
	l.NewGame(2)
	snap = waitSnapshot(t, ch)
	if snap.State != StateIdle {
		t.Fatalf("state after NewGame = %v, expected idle", snap.State)
	}
	if snap.Score != 0 || snap.Tick != 0 {
		t.Error("NewGame did not reset score and tick")
	}
}
