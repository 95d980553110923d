package httpadapter

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tianji-app/fortune-api/internal/app/reading"
	"github.com/tianji-app/fortune-api/internal/domain"
	"github.com/tianji-app/fortune-api/internal/i18n"
	"github.com/tianji-app/fortune-api/internal/observability"
)

type Server struct {
	svc         *reading.Service
	tr          *i18n.Translator
	defaultLang domain.Language
}

func NewServer(svc *reading.Service, tr *i18n.Translator, defaultLang domain.Language) http.Handler {
	s := &Server{svc: svc, tr: tr, defaultLang: defaultLang}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/fortune", s.handleFortune)
	mux.HandleFunc("/api/divination", s.handleDivination)
	mux.HandleFunc("/api/physiognomy", s.handlePhysiognomy)

	return chainMiddlewares(mux,
		withMetrics,
		withLogging,
		withCORS,
		withRequestID,
	)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type fortuneRequest struct {
	domain.FortuneRequest
	Language string `json:"language"`
}

type divinationRequest struct {
	domain.DivinationRequest
	Language string `json:"language"`
}

type imagePayload struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type physiognomyRequest struct {
	Images   []imagePayload `json:"images"`
	Language string         `json:"language"`
}

type pillarColumn struct {
	Label  string `json:"label"`
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
	NaYin  string `json:"na_yin,omitempty"`
}

type scoreBadge struct {
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
	Tier    string `json:"tier"`
}

type readingResponse struct {
	Body      string         `json:"body"`
	Chart     []pillarColumn `json:"chart,omitempty"`
	Score     *scoreBadge    `json:"score,omitempty"`
	LatencyMS int64          `json:"latency_ms"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFortune(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req fortuneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}

	lang := s.resolveLanguage(r, req.Language)

	out, err := s.svc.Fortune(r.Context(), req.FortuneRequest, lang)
	if err != nil {
		s.writeError(w, r, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, toReadingResponse(out))
}

func (s *Server) handleDivination(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req divinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}

	lang := s.resolveLanguage(r, req.Language)

	out, err := s.svc.Divine(r.Context(), req.DivinationRequest, lang)
	if err != nil {
		s.writeError(w, r, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, toReadingResponse(out))
}

func (s *Server) handlePhysiognomy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req physiognomyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, r, "invalid JSON body")
		return
	}

	lang := s.resolveLanguage(r, req.Language)

	images := make([]domain.Image, 0, len(req.Images))
	for _, p := range req.Images {
		data, err := base64.StdEncoding.DecodeString(p.Data)
		if err != nil {
			s.badRequest(w, r, "image data is not valid base64")
			return
		}
		images = append(images, domain.Image{MIMEType: p.MIMEType, Data: data})
	}

	out, err := s.svc.Physiognomy(r.Context(), images, lang)
	if err != nil {
		s.writeError(w, r, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, toReadingResponse(out))
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// resolveLanguage is strict about the closed language set but forgiving
// in serving: an unknown tag falls back to the configured default with a
// warning rather than failing the request.
func (s *Server) resolveLanguage(r *http.Request, tag string) domain.Language {
	if tag == "" {
		return s.defaultLang
	}
	lang, err := domain.ParseLanguage(tag)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn("unsupported language tag, using default",
			"tag", tag, "default", s.defaultLang)
		return s.defaultLang
	}
	return lang
}

func toReadingResponse(out reading.Reading) readingResponse {
	resp := readingResponse{
		Body:      out.View.Body,
		LatencyMS: out.LatencyMS,
	}

	for _, col := range out.View.Columns {
		resp.Chart = append(resp.Chart, pillarColumn(col))
	}

	if sc := out.View.Score; sc != nil {
		resp.Score = &scoreBadge{Score: sc.Score, Verdict: sc.Verdict, Tier: string(sc.Tier)}
	}

	return resp
}

// writeError maps domain failures onto status codes and a single
// localized user-visible message; raw transport errors never reach the
// client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, lang domain.Language, err error) {
	log := observability.LoggerFromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnsupportedLanguage):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  s.tr.Message(lang, i18n.MsgInvalidRequest),
			Detail: err.Error(),
		})
	case errors.Is(err, domain.ErrOracleUnavailable):
		log.Error("oracle unavailable", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: s.tr.Message(lang, i18n.MsgOracleUnavailable),
		})
	default:
		log.Error("unexpected failure", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: s.tr.Message(lang, i18n.MsgInternal),
		})
	}
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, detail string) {
	lang := s.resolveLanguage(r, "")
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  s.tr.Message(lang, i18n.MsgInvalidRequest),
		Detail: detail,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
