package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/bilingual-portfolio-backend/database"
	"github.com/rpupo63/bilingual-portfolio-backend/errs"
	"github.com/rpupo63/bilingual-portfolio-backend/models"
)

// VisitorService records public page views and serves the admin analytics
// page. Recording never fails the surrounding request.
type VisitorService struct {
	db     database.Database
	logger zerolog.Logger
}

func NewVisitorService(db database.Database) *VisitorService {
	return &VisitorService{
		db:     db,
		logger: log.With().Str("serviceName", "visitorService").Logger(),
	}
}

// Record appends one visit row. Failures are logged and swallowed: analytics
// must never block or break a public page render. Duration is not tracked
// and stays 0.
func (s *VisitorService) Record(ip, lang string) {
	visit := &models.Visitor{
		IP:        ip,
		VisitTime: time.Now().UTC(),
		Duration:  0,
		Lang:      lang,
	}
	if err := s.db.VisitorRepo().Add(visit); err != nil {
		s.logger.Warn().Err(err).Str("ip", ip).Msg("Failed to record visit")
	}
}

// AnalyticsReport is the admin dashboard view of the visit log.
type AnalyticsReport struct {
	Total     int64             `json:"total"`
	Languages map[string]int64  `json:"languages"`
	Visitors  []*models.Visitor `json:"visitors"`
}

// Analytics returns the visit log (most recent first) with per-language
// counts.
func (s *VisitorService) Analytics(ctx context.Context) (*AnalyticsReport, error) {
	visitors, err := s.db.VisitorRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "visitors", err)
	}

	languages, err := s.db.VisitorRepo().CountByLang()
	if err != nil {
		return nil, errs.NewDatabaseError("count", "visitors", err)
	}

	return &AnalyticsReport{
		Total:     int64(len(visitors)),
		Languages: languages,
		Visitors:  visitors,
	}, nil
}
