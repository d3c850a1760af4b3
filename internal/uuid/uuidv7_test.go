package uuid

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("generates_valid_uuids", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			id := New()
			if !IsValid(id) {
				t.Fatalf("generated invalid UUID: %s", id)
			}
			if id[14] != '7' {
				t.Fatalf("expected version 7, got %s", id)
			}
		}
	})

	t.Run("unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			id := New()
			if _, ok := seen[id]; ok {
				t.Fatalf("duplicate UUID generated: %s", id)
			}
			seen[id] = struct{}{}
		}
	})

	t.Run("time_ordered_across_milliseconds", func(t *testing.T) {
		first := New()
		time.Sleep(2 * time.Millisecond)
		second := New()
		if !(first < second) {
			t.Errorf("expected %s to sort before %s", first, second)
		}
	})
}

func TestIsValid(t *testing.T) {
	if !IsValid("0190a8f0-1234-7abc-8def-0123456789ab") {
		t.Error("expected well-formed UUID to be valid")
	}
	for _, s := range []string{"", "not-a-uuid", "0190a8f0-1234-7abc-8def"} {
		if IsValid(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
