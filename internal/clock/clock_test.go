package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualAdvanceFiresInOrder(t *testing.T) {
	m := NewManual(epoch)
	var fired []string

	m.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "c") })
	m.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	m.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "b") })

	m.Advance(200 * time.Millisecond)
	if len(fired) != 2 || fired[0] != "a" || fired[1] != "b" {
		t.Fatalf("after 200ms fired = %v, expected [a b]", fired)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", m.Pending())
	}

	m.Advance(100 * time.Millisecond)
	if len(fired) != 3 || fired[2] != "c" {
		t.Errorf("after 300ms fired = %v, expected [a b c]", fired)
	}
}

func TestManualCallbackSeesDeadline(t *testing.T) {
	m := NewManual(epoch)
	var at time.Time

	m.AfterFunc(2*time.Second, func() { at = m.Now() })
	m.Advance(5 * time.Second)

	if !at.Equal(epoch.Add(2 * time.Second)) {
		t.Errorf("callback saw %v, expected deadline %v", at, epoch.Add(2*time.Second))
	}
	if !m.Now().Equal(epoch.Add(5 * time.Second)) {
		t.Errorf("Now() = %v after advance, expected %v", m.Now(), epoch.Add(5*time.Second))
	}
}

func TestManualChainedTimers(t *testing.T) {
	m := NewManual(epoch)
	count := 0

	var rearm func()
	rearm = func() {
		count++
		m.AfterFunc(time.Second, rearm)
	}
	m.AfterFunc(time.Second, rearm)

	m.Advance(3500 * time.Millisecond)
	if count != 3 {
		t.Errorf("chained timer fired %d times in 3.5s, expected 3", count)
	}
}
