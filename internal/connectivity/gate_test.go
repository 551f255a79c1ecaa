package connectivity

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/akhmetov/go-remind-sync/internal/logger"
)

// stubProber flips between reachable and unreachable under test control.
type stubProber struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (s *stubProber) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubProber) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubProber) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestIsConnected_ProbesEveryCall(t *testing.T) {
	prober := &stubProber{}
	gate := NewGate(prober, logger.Nop())

	if !gate.IsConnected(context.Background()) {
		t.Error("expected online verdict")
	}
	if !gate.IsConnected(context.Background()) {
		t.Error("expected online verdict")
	}
	// no cached answers, both calls reached the prober
	if prober.callCount() != 2 {
		t.Errorf("expected 2 probes, got %d", prober.callCount())
	}
}

func TestIsConnected_Offline(t *testing.T) {
	prober := &stubProber{err: errors.New("connection refused")}
	gate := NewGate(prober, logger.Nop())

	if gate.IsConnected(context.Background()) {
		t.Error("expected offline verdict")
	}
}

func TestOnChange_FiresOnTransitionsOnly(t *testing.T) {
	prober := &stubProber{}
	gate := NewGate(prober, logger.Nop())

	var transitions []bool
	gate.OnChange(func(online bool) {
		transitions = append(transitions, online)
	})

	ctx := context.Background()

	gate.IsConnected(ctx) // first observation: online
	gate.IsConnected(ctx) // still online, no callback

	prober.setErr(errors.New("connection refused"))
	gate.IsConnected(ctx) // online -> offline
	gate.IsConnected(ctx) // still offline, no callback

	prober.setErr(nil)
	gate.IsConnected(ctx) // offline -> online

	want := []bool{true, false, true}
	if len(transitions) != len(want) {
		t.Fatalf("expected %d transitions, got %d: %v", len(want), len(transitions), transitions)
	}
	for i, v := range want {
		if transitions[i] != v {
			t.Errorf("transition %d: expected %v, got %v", i, v, transitions[i])
		}
	}
}

func TestOnChange_MultipleSubscribers(t *testing.T) {
	prober := &stubProber{}
	gate := NewGate(prober, logger.Nop())

	first, second := 0, 0
	gate.OnChange(func(bool) { first++ })
	gate.OnChange(func(bool) { second++ })

	gate.IsConnected(context.Background())

	if first != 1 || second != 1 {
		t.Errorf("expected both subscribers notified once, got %d and %d", first, second)
	}
}

func TestStop_WithoutStart(t *testing.T) {
	gate := NewGate(&stubProber{}, logger.Nop())

	// must not panic or block
	gate.Stop()
}
