package webui

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/yuin/goldmark"

	"github.com/gaurabsaha12345/master-prompter/internal/audit"
	"github.com/gaurabsaha12345/master-prompter/internal/enhance"
	"github.com/gaurabsaha12345/master-prompter/internal/logger"
	"github.com/gaurabsaha12345/master-prompter/internal/persist"
	"github.com/gaurabsaha12345/master-prompter/internal/prompt"
	"github.com/gaurabsaha12345/master-prompter/internal/tokens"
)

// Server exposes the prompt assembly API over HTTP. Store, Enhancer and
// Auditor are optional; endpoints that need a missing dependency answer
// service-unavailable instead of failing at startup.
type Server struct {
	store     *persist.Store
	enhancer  *enhance.Client
	auditor   *audit.Logger
	cors      bool
	startedAt time.Time
}

type Options struct {
	Store    *persist.Store
	Enhancer *enhance.Client
	Auditor  *audit.Logger
	CORS     bool
}

func NewServer(opts Options) *Server {
	return &Server{
		store:     opts.Store,
		enhancer:  opts.Enhancer,
		auditor:   opts.Auditor,
		cors:      opts.CORS,
		startedAt: time.Now().UTC(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/optimize", s.handleOptimize)
	mux.HandleFunc("/tokens", s.handleTokens)
	mux.HandleFunc("/subscribe", s.handleSubscribe)
	mux.HandleFunc("/enhance", s.handleEnhance)

	var handler http.Handler = mux
	if s.cors {
		handler = corsMiddleware(handler)
	}
	return requestLogMiddleware(handler)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(defaultIndexHTML))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	payload := map[string]any{
		"status":     "ok",
		"started_at": s.startedAt.Format(time.RFC3339),
		"uptime_sec": int(time.Since(s.startedAt).Seconds()),
	}
	if s.store != nil {
		if count, err := s.store.CountSubscribers(); err == nil {
			payload["subscribers"] = count
		}
	}
	if rss, ok := processRSS(); ok {
		payload["rss_bytes"] = rss
	}
	writeJSON(w, http.StatusOK, payload)
}

type optimizeRequest struct {
	Category        string   `json:"category"`
	Idea            string   `json:"idea"`
	Role            string   `json:"role"`
	Sources         []string `json:"sources"`
	Image           string   `json:"image"`
	Tones           []string `json:"tones"`
	OutputLength    string   `json:"output_length"`
	OutputFormat    string   `json:"output_format"`
	Extras          []string `json:"extras"`
	Temperature     *float64 `json:"temperature"`
	MediaResolution string   `json:"media_resolution"`
	Model           string   `json:"model"`
	Provider        string   `json:"provider"`
	HTML            bool     `json:"html"`
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	if !prompt.ValidCategory(req.Category) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid category"})
		return
	}

	fields := prompt.Fields{
		Category:        req.Category,
		Idea:            req.Idea,
		Role:            req.Role,
		Sources:         prompt.NormalizeList(req.Sources),
		Image:           req.Image,
		Tones:           prompt.NormalizeList(req.Tones),
		OutputLength:    req.OutputLength,
		OutputFormat:    req.OutputFormat,
		Extras:          prompt.NormalizeList(req.Extras),
		Temperature:     req.Temperature,
		MediaResolution: req.MediaResolution,
		Model:           req.Model,
		Provider:        req.Provider,
	}

	text, err := prompt.Assemble(fields)
	if err != nil {
		var verr *prompt.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if s.auditor != nil {
		if err := s.auditor.Record("http", fields, text); err != nil {
			logger.Warn("Audit record failed: %v", err)
		}
	}

	payload := map[string]any{"prompt": text}
	if req.HTML {
		html, err := mdToHTML(text)
		if err != nil {
			logger.Warn("Markdown rendering failed: %v", err)
		} else {
			payload["html"] = html
		}
	}
	writeJSON(w, http.StatusOK, payload)
}

type tokensRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req tokensRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"tokens": tokens.Estimate(req.Text)})
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "subscriptions are not available"})
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid email"})
		return
	}

	added, err := s.store.AddSubscriber(email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	status := "already_subscribed"
	if added {
		status = "subscribed"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

type enhanceRequest struct {
	Prompt      string   `json:"prompt"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
}

func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if s.enhancer == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "enhance provider not configured"})
		return
	}

	var req enhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "prompt is required"})
		return
	}

	enhanced, err := s.enhancer.Enhance(r.Context(), req.Prompt, req.Model, req.Temperature)
	if err != nil {
		if errors.Is(err, enhance.ErrNotConfigured) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"enhanced": enhanced,
		"provider": s.enhancer.Label(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func mdToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// processRSS reports the resident memory of this process for /health.
func processRSS() (uint64, bool) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, false
	}
	info, err := proc.MemoryInfo()
	if err != nil || info == nil {
		return 0, false
	}
	return info.RSS, true
}

const defaultIndexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Master Prompter</title>
  <style>
    body { font-family: "Segoe UI", sans-serif; margin: 0; background: linear-gradient(145deg,#f7fafc,#e9eef7); color: #1f2937; }
    .wrap { max-width: 900px; margin: 0 auto; padding: 20px; }
    .panel { background: #fff; border-radius: 12px; box-shadow: 0 8px 30px rgba(15,23,42,.08); padding: 16px; }
    #out { min-height: 320px; max-height: 60vh; overflow: auto; white-space: pre-wrap; border: 1px solid #d1d5db; border-radius: 8px; padding: 12px; background: #f9fafb; }
    .row { display: flex; gap: 8px; margin-top: 10px; }
    input, select, textarea { flex: 1; padding: 10px; border: 1px solid #cbd5e1; border-radius: 8px; font: inherit; }
    textarea { min-height: 70px; resize: vertical; }
    button { padding: 10px 16px; border: 0; border-radius: 8px; background: #0f766e; color: #fff; cursor: pointer; }
    button:hover { background: #0d9488; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="panel">
      <h2>Master Prompter</h2>
      <div class="row">
        <select id="category">
          <option>Content Writing</option>
          <option>Design</option>
          <option>Code</option>
          <option>Image Generation</option>
        </select>
        <input id="provider" placeholder="Provider (optional)" />
      </div>
      <div class="row">
        <textarea id="idea" placeholder="Describe your idea..."></textarea>
      </div>
      <div class="row">
        <button id="go">Optimize</button>
        <span id="tokens"></span>
      </div>
      <div class="row">
        <div id="out"></div>
      </div>
    </div>
  </div>
  <script>
    const out = document.getElementById('out');
    const tokens = document.getElementById('tokens');
    async function optimize() {
      const body = {
        category: document.getElementById('category').value,
        idea: document.getElementById('idea').value,
        provider: document.getElementById('provider').value || undefined
      };
      const resp = await fetch('/optimize', { method:'POST', headers:{'Content-Type':'application/json'}, body: JSON.stringify(body)});
      const data = await resp.json();
      out.textContent = data.prompt || data.error || '(empty)';
      if (data.prompt) {
        const tr = await fetch('/tokens', { method:'POST', headers:{'Content-Type':'application/json'}, body: JSON.stringify({ text: data.prompt })});
        const td = await tr.json();
        tokens.textContent = '~' + td.tokens + ' tokens';
      }
    }
    document.getElementById('go').addEventListener('click', optimize);
  </script>
</body>
</html>`
