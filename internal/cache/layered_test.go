package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey_StableAndPrefixed(t *testing.T) {
	k1 := Key("summarize|hf|model|text")
	k2 := Key("summarize|hf|model|text")
	if k1 != k2 {
		t.Errorf("Key not stable: %s != %s", k1, k2)
	}
	if !strings.HasPrefix(k1, "textdigest:v1:") {
		t.Errorf("Unexpected key prefix: %s", k1)
	}
	if Key("other") == k1 {
		t.Error("Different identifiers produced the same key")
	}
}

func TestLayeredCache_PromotesFromDisk(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	key := Key("dataset")
	if err := c.Set(key, []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Fresh layered cache over the same dir: memory is cold, disk hits
	c2 := NewLayeredCache(time.Minute, dir, time.Hour)
	got, found := c2.Get(key)
	if !found {
		t.Fatal("Expected disk hit")
	}
	if string(got) != "payload" {
		t.Errorf("Unexpected payload: %s", got)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	key := Key("expired")
	if err := c.Set(key, []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Noop cache should never hit")
	}
}
