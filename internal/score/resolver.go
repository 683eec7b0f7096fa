package score

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/symetrics/internal/store"
	"github.com/inodb/symetrics/internal/variant"
)

// Resolver dispatches lookups to the adapter for the requested family.
// It holds only connection descriptors: each call opens its own store,
// queries once and closes it, so concurrent callers share no state.
type Resolver struct {
	scoresPath string // SILVA/SURF/SYNVEP/SPLICEAI database
	freqPath   string // gnomAD allele-frequency database
	adapters   map[Family]Adapter
	logger     *zap.Logger
}

// NewResolver creates a Resolver over the two score databases.
func NewResolver(scoresPath, frequencyPath string) *Resolver {
	return &Resolver{
		scoresPath: scoresPath,
		freqPath:   frequencyPath,
		adapters:   adapters(),
		logger:     zap.NewNop(),
	}
}

// SetLogger sets the logger for store-boundary failures.
func (r *Resolver) SetLogger(l *zap.Logger) {
	r.logger = l
}

// Resolve looks up the variant in the table family's store.
// Outcomes: a fully populated Record; store.ErrNotFound when the query
// matched nothing; ErrBuildMismatch / ErrUnsupportedBuild before any I/O
// when the table does not index the variant's build; store.ErrUnavailable
// when the store cannot be reached.
func (r *Resolver) Resolve(family Family, v variant.Variant) (*Record, error) {
	ad, ok := r.adapters[family]
	if !ok {
		return nil, fmt.Errorf("unknown score family %q", family)
	}

	// Build checks happen before the store is touched.
	if err := ad.SupportsBuild(v.Build); err != nil {
		return nil, err
	}

	path := r.scoresPath
	if family == FamilyFrequency {
		path = r.freqPath
	}

	s, err := store.Open(path)
	if err != nil {
		r.logger.Error("open score store failed",
			zap.String("family", string(family)),
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("open store for %s: %w", family, errors.Join(store.ErrUnavailable, err))
	}
	defer s.Close()

	rec, err := ad.Lookup(s, v)
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			r.logger.Error("score lookup failed",
				zap.String("family", string(family)),
				zap.String("variant", v.ID()),
				zap.Error(err))
		}
		return nil, err
	}
	return rec, nil
}
