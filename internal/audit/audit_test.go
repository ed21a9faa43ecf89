package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gaurabsaha12345/master-prompter/internal/config"
	"github.com/gaurabsaha12345/master-prompter/internal/prompt"
)

func TestRecordWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	l := New(config.AuditConfig{Enabled: true, Dir: dir, RetentionDays: 7, FilePrefix: "optimize"})

	fields := prompt.Fields{Category: prompt.CategoryCode, Idea: "Build a URL shortener"}
	if err := l.Record("http", fields, "final prompt text"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	name := "optimize-" + time.Now().Format("2006-01-02") + ".jsonl"
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("expected audit file %s: %v", name, err)
	}

	var record struct {
		Timestamp     string   `json:"timestamp"`
		Source        string   `json:"source"`
		Category      string   `json:"category"`
		RequestDigest string   `json:"request_digest"`
		FinalPrompt   string   `json:"final_prompt"`
		Sections      []string `json:"sections"`
		PromptChars   int      `json:"prompt_chars"`
	}
	if err := json.Unmarshal(data[:len(data)-1], &record); err != nil {
		t.Fatalf("unmarshal audit line: %v", err)
	}
	if record.Source != "http" {
		t.Fatalf("unexpected source: %q", record.Source)
	}
	if record.Category != prompt.CategoryCode {
		t.Fatalf("unexpected category: %q", record.Category)
	}
	if len(record.RequestDigest) != 64 {
		t.Fatalf("expected sha256 hex digest, got %q", record.RequestDigest)
	}
	if record.FinalPrompt != "final prompt text" || record.PromptChars != len("final prompt text") {
		t.Fatalf("unexpected record: %#v", record)
	}
	if len(record.Sections) == 0 || record.Sections[0] != "Goal" || record.Sections[len(record.Sections)-1] != "Success Checklist" {
		t.Fatalf("unexpected sections: %v", record.Sections)
	}
}

func TestRecordDisabledWritesNothing(t *testing.T) {
	dir := t.TempDir()
	l := New(config.AuditConfig{Enabled: false, Dir: dir})

	if err := l.Record("cli", prompt.Fields{Category: prompt.CategoryDesign, Idea: "x"}, "text"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no audit files, got %d", len(entries))
	}
}

func TestCleanupRemovesExpiredFiles(t *testing.T) {
	dir := t.TempDir()
	l := New(config.AuditConfig{Enabled: true, Dir: dir, RetentionDays: 7, FilePrefix: "optimize"})

	old := filepath.Join(dir, "optimize-2020-01-01.jsonl")
	if err := os.WriteFile(old, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("write old file: %v", err)
	}
	recent := filepath.Join(dir, "optimize-"+time.Now().Format("2006-01-02")+".jsonl")
	if err := os.WriteFile(recent, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("write recent file: %v", err)
	}
	unrelated := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep"), 0644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}

	if err := l.CleanupOldFiles(); err != nil {
		t.Fatalf("CleanupOldFiles failed: %v", err)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected expired file removed, stat err: %v", err)
	}
	if _, err := os.Stat(recent); err != nil {
		t.Fatalf("expected recent file kept: %v", err)
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Fatalf("expected unrelated file kept: %v", err)
	}
}

func TestRequestDigestStable(t *testing.T) {
	a := prompt.Fields{Category: prompt.CategoryCode, Idea: "same length!", Provider: prompt.ProviderGrok}
	b := prompt.Fields{Category: prompt.CategoryCode, Idea: "same length!", Provider: prompt.ProviderGrok}
	if requestDigest(a) != requestDigest(b) {
		t.Fatalf("expected identical shapes to share a digest")
	}

	c := prompt.Fields{Category: prompt.CategoryCode, Idea: "same length!", Provider: prompt.ProviderGemini}
	if requestDigest(a) == requestDigest(c) {
		t.Fatalf("expected different shapes to differ")
	}
}
