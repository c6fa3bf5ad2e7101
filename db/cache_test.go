package db

import "testing"

func TestCacheKey(t *testing.T) {
	key := CacheKey("some text", "magic", "en")

	if key != CacheKey("some text", "magic", "en") {
		t.Error("identical inputs must produce identical keys")
	}
	if len(key) != 64 {
		t.Errorf("expected hex sha-256 key, got length %d", len(key))
	}

	// Any field change produces a different key
	variants := []string{
		CacheKey("some other text", "magic", "en"),
		CacheKey("some text", "shorten", "en"),
		CacheKey("some text", "magic", "de"),
	}
	for i, v := range variants {
		if v == key {
			t.Errorf("variant %d should differ from the base key", i)
		}
	}
}
