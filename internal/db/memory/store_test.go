package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/navigator/internal/db"
)

func TestStore_SetGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.SetNX(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "v" {
		t.Errorf("expected v, got %q", data)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestStore_Expiry(t *testing.T) {
	clock := NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewStore(WithClock(clock.Now))
	ctx := context.Background()

	_ = s.SetNX(ctx, "k", []byte("v"), time.Hour)

	clock.Advance(59 * time.Minute)
	if _, err := s.Get(ctx, "k"); err != nil {
		t.Fatalf("entry should still be live: %v", err)
	}

	clock.Advance(time.Minute)
	if _, err := s.Get(ctx, "k"); !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected entry to expire, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected 0 live entries, got %d", s.Len())
	}
}

func TestStore_SetNXFirstWriterWins(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.SetNX(ctx, "k", []byte("first"), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetNX(ctx, "k", []byte("second"), time.Hour); !errors.Is(err, db.ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}
	data, _ := s.Get(ctx, "k")
	if string(data) != "first" {
		t.Errorf("expected first writer to win, got %q", data)
	}
}

func TestStore_SetNXAfterExpiry(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	s := NewStore(WithClock(clock.Now))
	ctx := context.Background()

	_ = s.SetNX(ctx, "k", []byte("old"), time.Second)
	clock.Advance(2 * time.Second)

	if err := s.SetNX(ctx, "k", []byte("new"), time.Second); err != nil {
		t.Fatalf("expected write after expiry, got %v", err)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.SetNX(ctx, "k", []byte("abc"), 0)

	data, _ := s.Get(ctx, "k")
	data[0] = 'z'

	again, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated: %q", again)
	}
}

func TestStore_Del(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.SetNX(ctx, "k", []byte("v"), time.Minute)

	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Del(ctx, "absent"); err != nil {
		t.Errorf("deleting an absent key should succeed: %v", err)
	}
	if err := s.SetNX(ctx, "k", []byte("again"), time.Minute); err != nil {
		t.Errorf("expected write after delete, got %v", err)
	}
}
