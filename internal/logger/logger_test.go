package logger

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
		{"panic", LevelPanic},
		{" Info ", LevelInfo},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseLevel(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSetLevelRoundTrip(t *testing.T) {
	old := GetLevel()
	defer SetLevel(old)

	SetLevel(LevelError)
	if got := GetLevel(); got != LevelError {
		t.Fatalf("GetLevel() = %d, want %d", got, LevelError)
	}
}
