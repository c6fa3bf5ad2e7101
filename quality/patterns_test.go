package quality

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPatternSetDefaults(t *testing.T) {
	ps := NewPatternSet()

	tests := []struct {
		output   string
		wantHits int
	}{
		{"Sure, here it is", 1},
		{"Let us delve into the tapestry of ideas", 2},
		{"A perfectly normal sentence about lunch plans.", 0},
		{"In conclusion, hope this helps", 2},
	}

	for _, tt := range tests {
		hits := ps.Match(tt.output)
		if len(hits) != tt.wantHits {
			t.Errorf("Match(%q) = %d hits %v, want %d", tt.output, len(hits), hits, tt.wantHits)
		}
	}
}

func TestPatternSetLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	if err := os.WriteFile(path, []byte(`["(?i)\\bparadigm shift\\b"]`), 0644); err != nil {
		t.Fatal(err)
	}

	ps := NewPatternSet()
	if err := ps.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	// File patterns extend the defaults rather than replacing them
	if hits := ps.Match("this paradigm shift changes everything"); len(hits) != 1 {
		t.Errorf("file pattern should fire, got %v", hits)
	}
	if hits := ps.Match("let me delve deeper"); len(hits) != 1 {
		t.Errorf("builtin pattern should survive a file load, got %v", hits)
	}
}

func TestPatternSetLoadFileErrors(t *testing.T) {
	ps := NewPatternSet()

	if err := ps.LoadFile("/nonexistent/patterns.json"); err == nil {
		t.Error("missing file should error")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ps.LoadFile(path); err == nil {
		t.Error("malformed file should error")
	}

	// Errors leave the previous set usable
	if hits := ps.Match("delve"); len(hits) != 1 {
		t.Errorf("defaults should survive failed loads, got %v", hits)
	}
}

func TestPatternSetSkipsInvalidRegex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	if err := os.WriteFile(path, []byte(`["[unclosed", "(?i)\\bvalid\\b"]`), 0644); err != nil {
		t.Fatal(err)
	}

	ps := NewPatternSet()
	if err := ps.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if hits := ps.Match("a valid hit"); len(hits) != 1 {
		t.Errorf("valid pattern should compile despite a broken sibling, got %v", hits)
	}
}
