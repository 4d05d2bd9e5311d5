package ports

import (
	"context"

	"adlens/domain/creative"
	"adlens/domain/dataset"
)

// RecommenderPort synthesizes replacement ad copy for rows that fall below
// either performance threshold, preserving table row order.
type RecommenderPort interface {
	Recommend(ctx context.Context, table *dataset.Table, lowCTR, lowROAS float64) ([]creative.Recommendation, error)
}
