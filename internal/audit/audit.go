// Package audit appends a JSONL record for every assembled prompt so
// operators can trace what the service produced and when.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gaurabsaha12345/master-prompter/internal/config"
	"github.com/gaurabsaha12345/master-prompter/internal/prompt"
)

// Logger writes daily audit files under the configured directory. The
// zero retention disables cleanup; a disabled logger writes nothing.
type Logger struct {
	cfg config.AuditConfig
	mu  sync.Mutex
}

func New(cfg config.AuditConfig) *Logger {
	return &Logger{cfg: cfg}
}

// Enabled reports whether records will be written.
func (l *Logger) Enabled() bool {
	return l.cfg.Enabled
}

type auditRecord struct {
	Timestamp     string   `json:"timestamp"`
	Source        string   `json:"source"`
	Category      string   `json:"category"`
	RequestDigest string   `json:"request_digest"`
	FinalPrompt   string   `json:"final_prompt"`
	Sections      []string `json:"sections"`
	PromptChars   int      `json:"prompt_chars"`
}

// Record appends one line for an assembled prompt. Source names the
// entry point ("http", "cli" or "mcp").
func (l *Logger) Record(source string, fields prompt.Fields, finalPrompt string) error {
	if !l.cfg.Enabled {
		return nil
	}

	if err := os.MkdirAll(l.cfg.Dir, 0755); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}

	now := time.Now()
	record := auditRecord{
		Timestamp:     now.Format(time.RFC3339),
		Source:        source,
		Category:      fields.Category,
		RequestDigest: requestDigest(fields),
		FinalPrompt:   finalPrompt,
		Sections:      prompt.SectionTitles(fields),
		PromptChars:   len(finalPrompt),
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal audit record: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := appendJSONL(l.filePath(now), line); err != nil {
		return err
	}

	return l.cleanupOldFilesWithNow(now)
}

func (l *Logger) filePath(now time.Time) string {
	return filepath.Join(l.cfg.Dir, fmt.Sprintf("%s-%s.jsonl", l.prefix(), now.Format("2006-01-02")))
}

func (l *Logger) prefix() string {
	prefix := strings.TrimSpace(l.cfg.FilePrefix)
	if prefix == "" {
		prefix = "optimize"
	}
	return prefix
}

func appendJSONL(filePath string, line []byte) error {
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open audit file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write audit file: %w", err)
	}
	return nil
}

// CleanupOldFiles removes audit files older than the retention window.
func (l *Logger) CleanupOldFiles() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cleanupOldFilesWithNow(time.Now())
}

func (l *Logger) cleanupOldFilesWithNow(now time.Time) error {
	if !l.cfg.Enabled || l.cfg.RetentionDays <= 0 {
		return nil
	}

	entries, err := os.ReadDir(l.cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("list audit dir: %w", err)
	}

	prefix := l.prefix()
	cutoff := now.AddDate(0, 0, -l.cfg.RetentionDays)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix+"-") || !strings.HasSuffix(name, ".jsonl") {
			continue
		}

		filePath := filepath.Join(l.cfg.Dir, name)
		fileDate, ok := parseAuditDate(name, prefix)
		if ok {
			if fileDate.Before(startOfDay(cutoff)) {
				if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("remove old audit file %s: %w", filePath, err)
				}
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat audit file %s: %w", filePath, err)
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove old audit file %s: %w", filePath, err)
			}
		}
	}

	return nil
}

func parseAuditDate(filename, prefix string) (time.Time, bool) {
	raw := strings.TrimSuffix(filename, ".jsonl")
	raw = strings.TrimPrefix(raw, prefix+"-")
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// requestDigest fingerprints the shape of a request. Lengths and counts
// go into the hash rather than raw field values so identical shapes can
// be correlated across the log.
func requestDigest(f prompt.Fields) string {
	digestInput := struct {
		Category        string `json:"category"`
		IdeaLen         int    `json:"idea_len"`
		HasRole         bool   `json:"has_role"`
		SourceCount     int    `json:"source_count"`
		ToneCount       int    `json:"tone_count"`
		ExtraCount      int    `json:"extra_count"`
		HasImage        bool   `json:"has_image"`
		HasTemperature  bool   `json:"has_temperature"`
		MediaResolution string `json:"media_resolution,omitempty"`
		Model           string `json:"model,omitempty"`
		Provider        string `json:"provider,omitempty"`
	}{
		Category:        f.Category,
		IdeaLen:         len(strings.TrimSpace(f.Idea)),
		HasRole:         strings.TrimSpace(f.Role) != "",
		SourceCount:     len(f.Sources),
		ToneCount:       len(f.Tones),
		ExtraCount:      len(f.Extras),
		HasImage:        strings.TrimSpace(f.Image) != "",
		HasTemperature:  f.Temperature != nil,
		MediaResolution: f.MediaResolution,
		Model:           f.Model,
		Provider:        f.Provider,
	}
	payload, _ := json.Marshal(digestInput)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
