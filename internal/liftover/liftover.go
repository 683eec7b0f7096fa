// Package liftover translates variant coordinates between genome builds.
// There is no chain-file machinery here: the synVep table is the only one
// indexed in both builds, so it acts as the bridge, and translation
// coverage is limited to the positions it carries.
package liftover

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/symetrics/internal/score"
	"github.com/inodb/symetrics/internal/store"
	"github.com/inodb/symetrics/internal/variant"
)

// Resolver translates variants through the bridge table. Like the score
// resolver it holds only a connection descriptor and opens the store per
// call.
type Resolver struct {
	path   string
	logger *zap.Logger
}

// New creates a Resolver over the score database holding the bridge table.
func New(scoresPath string) *Resolver {
	return &Resolver{path: scoresPath, logger: zap.NewNop()}
}

// SetLogger sets the logger for store-boundary failures.
func (r *Resolver) SetLogger(l *zap.Logger) {
	r.logger = l
}

// Translate returns the variant re-keyed to the opposite genome build.
// Both directions use the same bridge schema: the source build selects
// the position column to match on, the opposite build the one to read.
// Positions absent from the bridge table yield store.ErrNotFound; with
// multiple bridge rows for one key the first wins, so round trips are
// only position-stable when the mapping is unique.
func (r *Resolver) Translate(v variant.Variant) (variant.Variant, error) {
	if !v.Build.Valid() {
		return variant.Variant{}, fmt.Errorf("unknown genome build %q", v.Build)
	}

	target := v.Build.Opposite()
	query := fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s WHERE %s = ? AND %s = ? AND %s = ? AND %s = ? LIMIT 1",
		store.QuoteIdent(score.Bridge.Chrom),
		store.QuoteIdent(score.Bridge.Pos[target]),
		store.QuoteIdent(score.Bridge.Ref),
		store.QuoteIdent(score.Bridge.Alt),
		store.QuoteIdent(score.Bridge.Table),
		store.QuoteIdent(score.Bridge.Chrom),
		store.QuoteIdent(score.Bridge.Pos[v.Build]),
		store.QuoteIdent(score.Bridge.Ref),
		store.QuoteIdent(score.Bridge.Alt))

	s, err := store.Open(r.path)
	if err != nil {
		r.logger.Error("open bridge store failed", zap.String("path", r.path), zap.Error(err))
		return variant.Variant{}, fmt.Errorf("open bridge store: %w", errors.Join(store.ErrUnavailable, err))
	}
	defer s.Close()

	out := variant.Variant{Build: target}
	row := s.DB().QueryRow(query, v.NormalizeChrom(), v.Pos, v.Ref, v.Alt)
	if err := row.Scan(&out.Chrom, &out.Pos, &out.Ref, &out.Alt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return variant.Variant{}, store.ErrNotFound
		}
		r.logger.Error("bridge lookup failed", zap.String("variant", v.ID()), zap.Error(err))
		return variant.Variant{}, fmt.Errorf("query %s: %w", score.Bridge.Table, errors.Join(store.ErrUnavailable, err))
	}
	return out, nil
}
