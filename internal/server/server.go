package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/go-viet-tts/internal/config"
	"github.com/example/go-viet-tts/internal/segment"
	"github.com/example/go-viet-tts/internal/text"
	"github.com/example/go-viet-tts/internal/tts"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Synthesizer renders raw text to WAV bytes. Satisfied by *tts.Service.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, p tts.Params) ([]byte, error)
	Defaults() tts.Params
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes   int
	workers        int
	requestTimeout time.Duration
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes:   4096,
		workers:        2,
		requestTimeout: 60 * time.Second,
		logger:         slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithWorkers sets the maximum number of concurrent synthesis calls.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRequestTimeout sets the per-request synthesis deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	synth Synthesizer
	seg   text.Segmenter
	opts  options
	sem   chan struct{} // semaphore for worker pool
	log   *slog.Logger
}

// NewHandler returns an http.Handler serving /health, POST /normalize, and
// POST /tts. seg may be nil when the segmentation capability is absent.
func NewHandler(synth Synthesizer, seg text.Segmenter, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		synth: synth,
		seg:   seg,
		opts:  opts,
		log:   opts.logger,
	}
	if opts.workers > 0 {
		h.sem = make(chan struct{}, opts.workers)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/normalize", h.handleNormalize)
	mux.HandleFunc("/tts", h.handleTTS)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type normalizeRequest struct {
	Text                string `json:"text"`
	ExpandAbbreviations *bool  `json:"expand_abbreviations"`
	Segment             bool   `json:"segment"`
}

type normalizeResponse struct {
	Text  string `json:"text"`
	Valid bool   `json:"valid"`
}

func (h *handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if !h.decodeRequest(w, r, &req.Text, func() error {
		return json.NewDecoder(r.Body).Decode(&req)
	}) {
		return
	}

	expand := true
	if req.ExpandAbbreviations != nil {
		expand = *req.ExpandAbbreviations
	}

	out := text.Preprocess(req.Text, expand)
	if req.Segment {
		out = text.SegmentWords(r.Context(), h.seg, out)
	}

	writeJSON(w, http.StatusOK, normalizeResponse{
		Text:  out,
		Valid: text.ValidateVietnamese(req.Text),
	})
}

type ttsRequest struct {
	Text         string   `json:"text"`
	VoicePrompt  string   `json:"voice_prompt"`
	Exaggeration *float64 `json:"exaggeration"`
	CFGWeight    *float64 `json:"cfg_weight"`
	Temperature  *float64 `json:"temperature"`
}

// params merges per-request overrides onto the configured defaults.
func (req ttsRequest) params(defaults tts.Params) tts.Params {
	p := defaults
	if req.VoicePrompt != "" {
		p.VoicePrompt = req.VoicePrompt
	}
	if req.Exaggeration != nil {
		p.Exaggeration = *req.Exaggeration
	}
	if req.CFGWeight != nil {
		p.CFGWeight = *req.CFGWeight
	}
	if req.Temperature != nil {
		p.Temperature = *req.Temperature
	}
	return p
}

func (h *handler) handleTTS(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if !h.decodeRequest(w, r, &req.Text, func() error {
		return json.NewDecoder(r.Body).Decode(&req)
	}) {
		return
	}

	p := req.params(h.synth.Defaults())
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Acquire a worker slot — honour context cancellation while waiting.
	if h.sem != nil {
		select {
		case h.sem <- struct{}{}:
			// slot acquired
		case <-r.Context().Done():
			writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for worker")
			return
		}
		defer func() { <-h.sem }()
	}

	// Apply per-request timeout.
	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	start := time.Now()
	wavData, err := h.synth.Synthesize(ctx, req.Text, p)
	durationMS := time.Since(start).Milliseconds()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			h.log.WarnContext(r.Context(), "synthesis timed out",
				slog.Int("text_len", len(req.Text)),
				slog.Int64("duration_ms", durationMS),
				slog.String("error", err.Error()),
			)
			writeError(w, http.StatusGatewayTimeout, "synthesis timed out")
			return
		}
		h.log.ErrorContext(r.Context(), "synthesis failed",
			slog.Int("text_len", len(req.Text)),
			slog.Int64("duration_ms", durationMS),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.InfoContext(r.Context(), "synthesis complete",
		slog.Int("text_len", len(req.Text)),
		slog.Int64("duration_ms", durationMS),
		slog.Int("wav_bytes", len(wavData)),
	)

	w.Header().Set("Content-Type", "audio/wav")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(wavData)
}

// decodeRequest performs the shared method/body/size validation for the two
// POST endpoints. It reports whether the handler should continue.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, textField *string, decode func() error) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return false
	}

	if err := decode(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}

	if *textField == "" {
		writeError(w, http.StatusBadRequest, "text field is required")
		return false
	}

	if len(*textField) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server — wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	cfg             config.Config
	tts             *tts.Service
	shutdownTimeout time.Duration
}

func New(cfg config.Config, svc *tts.Service) *Server {
	return &Server{
		cfg:             cfg,
		tts:             svc,
		shutdownTimeout: 30 * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

func (s *Server) Start(ctx context.Context) error {
	svc := s.tts
	if svc == nil {
		svc = tts.NewService(s.cfg)
	}

	// The /normalize endpoint segments independently of the synthesis
	// path, so it gets its own capability probe.
	var seg text.Segmenter
	if c := segment.Detect(s.cfg.Text.SegmenterPath); c != nil {
		seg = c
	}

	h := NewHandler(svc, seg,
		WithWorkers(s.cfg.Server.Workers),
		WithMaxTextBytes(s.cfg.Server.MaxTextBytes),
		WithRequestTimeout(time.Duration(s.cfg.Server.RequestTimeout)*time.Second),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

// ProbeHTTP checks the /health endpoint of a running server.
func ProbeHTTP(addr string) error {
	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %s", resp.Status)
	}
	return nil
}
