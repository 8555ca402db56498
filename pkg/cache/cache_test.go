package cache

import "testing"

func TestNewCache_DisabledModeIsInert(t *testing.T) {
	c, err := NewCache("", false)
	if err != nil {
		t.Fatalf("disabled cache must not error: %v", err)
	}
	if c.Enabled() {
		t.Fatal("cache must report disabled")
	}

	if err := c.Set("key", "value", 0); err != nil {
		t.Fatalf("set on disabled cache must be a no-op: %v", err)
	}
	if err := c.Delete("key"); err != nil {
		t.Fatalf("delete on disabled cache must be a no-op: %v", err)
	}
	if err := c.DeletePattern("key:*"); err != nil {
		t.Fatalf("delete pattern on disabled cache must be a no-op: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close on disabled cache must be a no-op: %v", err)
	}

	var dest string
	if err := c.Get("key", &dest); err == nil {
		t.Fatal("get on disabled cache must report an error")
	}
}

func TestNewCache_UnreachableServerReturnsError(t *testing.T) {
	c, err := NewCache("127.0.0.1:1", true)
	if err == nil {
		t.Fatal("expected a connection error")
	}
	if c != nil {
		t.Fatal("failed construction must not return a cache")
	}
}

func TestEnabled_NilReceiver(t *testing.T) {
	var c *Cache
	if c.Enabled() {
		t.Fatal("nil cache must report disabled")
	}
}
