package redis

import (
	"context"
	"testing"
	"time"
)

func TestSessionLock_AcquireAndRelease(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	lock := NewSessionLock(client)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "txn-1", time.Minute)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !ok {
		t.Fatal("expected first acquire to succeed")
	}

	ok, err = lock.Acquire(ctx, "txn-1", time.Minute)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if ok {
		t.Fatal("expected second acquire to fail while held")
	}

	// A different transaction is unaffected.
	ok, err = lock.Acquire(ctx, "txn-2", time.Minute)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !ok {
		t.Fatal("expected acquire on other transaction to succeed")
	}

	if err := lock.Release(ctx, "txn-1"); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	ok, err = lock.Acquire(ctx, "txn-1", time.Minute)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !ok {
		t.Fatal("expected acquire after release to succeed")
	}
}

func TestSessionLock_ExpiresWithTTL(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	lock := NewSessionLock(client)
	ctx := context.Background()

	if ok, err := lock.Acquire(ctx, "txn-1", time.Second); err != nil || !ok {
		t.Fatalf("Acquire failed: ok=%v err=%v", ok, err)
	}

	mr.FastForward(2 * time.Second)

	ok, err := lock.Acquire(ctx, "txn-1", time.Second)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if !ok {
		t.Fatal("expected acquire to succeed after TTL expiry")
	}
}

func TestSessionLock_ReleaseUnheld(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	lock := NewSessionLock(client)

	if err := lock.Release(context.Background(), "txn-unknown"); err != nil {
		t.Fatalf("Release of unheld slot failed: %v", err)
	}
}
