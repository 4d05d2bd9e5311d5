package app

import (
	"context"

	"adlens/domain/creative"
	"adlens/domain/dataset"
	"adlens/internal/logging"
	"adlens/ports"

	"go.uber.org/zap"
)

// CreativeService filters underperforming rows and synthesizes replacement
// copy for them.
type CreativeService struct {
	recommender ports.RecommenderPort
	lowCTR      float64
	lowROAS     float64
	log         *logging.Logger
}

// NewCreativeService creates the service with the underperformance
// thresholds.
func NewCreativeService(recommender ports.RecommenderPort, lowCTR, lowROAS float64, log *logging.Logger) *CreativeService {
	return &CreativeService{recommender: recommender, lowCTR: lowCTR, lowROAS: lowROAS, log: log}
}

// Generate returns recommendations for every row below either threshold,
// preserving row order. A zero count is logged like any other.
func (s *CreativeService) Generate(ctx context.Context, table *dataset.Table) ([]creative.Recommendation, error) {
	recs, err := s.recommender.Recommend(ctx, table, s.lowCTR, s.lowROAS)
	if err != nil {
		return nil, err
	}
	s.log.Event("CreativeAgent", "generate", "generated_creatives",
		zap.Int("count", len(recs)))
	return recs, nil
}
