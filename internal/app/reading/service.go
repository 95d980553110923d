// Package reading orchestrates a single oracle exchange: validate the
// request, shape the prompt, consult the oracle once, and turn the reply
// into a renderable view.
package reading

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tianji-app/fortune-api/internal/domain"
	"github.com/tianji-app/fortune-api/internal/observability"
	"github.com/tianji-app/fortune-api/internal/prompt"
	"github.com/tianji-app/fortune-api/internal/report"
)

// maxImages bounds a physiognomy upload (face plus both hands, with one
// spare, is the realistic ceiling).
const maxImages = 4

// Service owns no state beyond its collaborators; every reading is
// request-scoped and discarded once the response is written.
type Service struct {
	oracle         domain.Oracle
	thinkingBudget int32
	now            func() time.Time
}

func NewService(oracle domain.Oracle, thinkingBudget int32) *Service {
	return &Service{
		oracle:         oracle,
		thinkingBudget: thinkingBudget,
		now:            time.Now,
	}
}

// Reading is the application-level output shared by all three request
// families.
type Reading struct {
	View      report.View
	LatencyMS int64
}

// Fortune performs a destiny reading in the requested mode.
func (s *Service) Fortune(ctx context.Context, req domain.FortuneRequest, lang domain.Language) (Reading, error) {
	if err := req.Validate(); err != nil {
		return Reading{}, err
	}

	log := observability.LoggerFromContext(ctx).With("mode", req.Mode, "lang", lang)

	p, err := prompt.Fortune(req, lang, s.now())
	if err != nil {
		return Reading{}, fmt.Errorf("build prompt: %w", err)
	}

	q := domain.Query{System: p.System, User: p.User}
	if req.Mode == domain.ModeFullReport {
		q.ThinkingBudget = s.thinkingBudget
	}

	return s.consult(ctx, log, q)
}

// Divine runs one of the static divination tools.
func (s *Service) Divine(ctx context.Context, req domain.DivinationRequest, lang domain.Language) (Reading, error) {
	if err := req.Validate(); err != nil {
		return Reading{}, err
	}

	log := observability.LoggerFromContext(ctx).With("tool", req.Tool, "lang", lang)

	p, err := prompt.Divination(req, lang)
	if err != nil {
		return Reading{}, fmt.Errorf("build prompt: %w", err)
	}

	return s.consult(ctx, log, domain.Query{System: p.System, User: p.User})
}

// Physiognomy performs a face/palm reading over the uploaded images.
func (s *Service) Physiognomy(ctx context.Context, images []domain.Image, lang domain.Language) (Reading, error) {
	if len(images) == 0 {
		return Reading{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, domain.ErrNoImages)
	}
	if len(images) > maxImages {
		return Reading{}, fmt.Errorf("%w: %w (max %d)", domain.ErrInvalidRequest, domain.ErrTooManyImages, maxImages)
	}
	for _, img := range images {
		if len(img.Data) == 0 || img.MIMEType == "" {
			return Reading{}, fmt.Errorf("%w: image payload missing data or mime type", domain.ErrInvalidRequest)
		}
	}

	log := observability.LoggerFromContext(ctx).With("images", len(images), "lang", lang)

	p, err := prompt.Physiognomy(len(images), lang)
	if err != nil {
		return Reading{}, fmt.Errorf("build prompt: %w", err)
	}

	return s.consult(ctx, log, domain.Query{System: p.System, User: p.User, Images: images})
}

// consult is the single suspension point: one oracle call, awaited to
// completion or failure.
func (s *Service) consult(ctx context.Context, log *slog.Logger, q domain.Query) (Reading, error) {
	start := s.now()
	raw, err := s.oracle.Generate(ctx, q)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		log.Error("oracle call failed", "error", err, "latency_ms", latency)
		return Reading{}, err
	}

	rep := report.Extract(raw)
	view := report.Present(rep)

	log.Info("reading completed", "latency_ms", latency, "chart", rep.Chart != nil)

	return Reading{View: view, LatencyMS: latency}, nil
}
