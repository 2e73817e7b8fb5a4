package cache

import (
	"testing"
	"time"
)

// fixedClock lets tests move "now" without sleeping.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore() (*Store, *fixedClock) {
	clock := &fixedClock{t: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	s := New()
	s.now = clock.now
	return s, clock
}

func TestStore_GetMissOnEmpty(t *testing.T) {
	s, _ := newTestStore()
	if v, ok := s.Get("zone-list"); ok {
		t.Fatalf("expected miss on empty store, got %v", v)
	}
}

func TestStore_SetThenGet(t *testing.T) {
	s, _ := newTestStore()
	s.Set("water-pressure", 1.6, 5*time.Minute)

	v, ok := s.Get("water-pressure")
	if !ok {
		t.Fatalf("expected hit")
	}
	if v.(float64) != 1.6 {
		t.Fatalf("expected 1.6, got %v", v)
	}
}

func TestStore_ExpiryIsExclusive(t *testing.T) {
	s, clock := newTestStore()
	s.Set("k", "v", 5*time.Minute)

	// one instant before expiry: still fresh
	clock.advance(5*time.Minute - time.Nanosecond)
	if _, ok := s.Get("k"); !ok {
		t.Fatalf("expected hit just before expiry")
	}

	// exactly at expiry: treated as absent
	clock.advance(time.Nanosecond)
	if _, ok := s.Get("k"); ok {
		t.Fatalf("expected miss at expiry instant")
	}
}

func TestStore_ExpiredEntryStaysUntilOverwritten(t *testing.T) {
	s, clock := newTestStore()
	s.Set("k", "old", time.Minute)
	clock.advance(2 * time.Minute)

	if _, ok := s.Get("k"); ok {
		t.Fatalf("expected expired entry to behave as absent")
	}
	if s.Len() != 1 {
		t.Fatalf("expected expired entry to remain in the map, len=%d", s.Len())
	}

	s.Set("k", "new", time.Minute)
	v, ok := s.Get("k")
	if !ok || v.(string) != "new" {
		t.Fatalf("expected overwritten value, got %v (ok=%v)", v, ok)
	}
	if s.Len() != 1 {
		t.Fatalf("overwrite must not grow the map, len=%d", s.Len())
	}
}

func TestStore_ZeroTTLIsImmediatelyExpired(t *testing.T) {
	s, _ := newTestStore()
	s.Set("k", "v", 0)
	if _, ok := s.Get("k"); ok {
		t.Fatalf("zero TTL entry must behave as absent")
	}
}

func TestStore_SetOverwritesUnconditionally(t *testing.T) {
	s, clock := newTestStore()
	s.Set("k", 1, time.Hour)
	s.Set("k", 2, time.Minute)

	v, _ := s.Get("k")
	if v.(int) != 2 {
		t.Fatalf("expected latest value, got %v", v)
	}

	// the second Set's TTL governs
	clock.advance(2 * time.Minute)
	if _, ok := s.Get("k"); ok {
		t.Fatalf("expected entry expired per the overwriting TTL")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			s.Set("k", i, time.Minute)
		}
	}()
	for i := 0; i < 1000; i++ {
		s.Get("k")
	}
	<-done
}
