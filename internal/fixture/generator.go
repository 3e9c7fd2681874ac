package fixture

import (
	"context"
	"math/rand/v2"

	"github.com/MKhiriev/go-pass-fixtures/internal/logger"
	"github.com/MKhiriev/go-pass-fixtures/models"
)

// MaxDepth is the deepest level Populate still fills. Calls with a larger
// depth return without touching the database.
const MaxDepth = 5

// Name shapes used for generated records.
const (
	nameMaxLength     = 10
	passwordMaxLength = 100
	nameTagPercent    = 20
)

// Stats counts what a generator has created so far.
type Stats struct {
	Groups   int
	Entries  int
	MaxDepth int
}

// Generator populates a [Database] with random groups and entries.
type Generator struct {
	db     Database
	rand   *rand.Rand
	logger *logger.Logger
	stats  Stats
}

// NewGenerator returns a Generator mutating db and drawing every random value
// from r. Passing a seeded source makes the generated tree reproducible.
func NewGenerator(db Database, r *rand.Rand, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}

	return &Generator{
		db:     db,
		rand:   r,
		logger: log,
	}
}

// NewSeededRand returns a PCG-backed source for seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Stats returns the totals accumulated by previous Populate calls.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Populate fills group with between 1 and maxEntries entries and, when a draw
// in [1, 100] is below descentProbability, with between 1 and maxEntries child
// groups. Each child is populated recursively with half the descent
// probability and depth+1. Nothing happens once depth exceeds [MaxDepth].
//
// descentProbability is not clamped: values of 101 and above always descend,
// values of 1 and below never do.
//
// Errors returned by the database are passed back unchanged.
func (g *Generator) Populate(ctx context.Context, group models.Group, maxEntries, descentProbability, depth int) error {
	if depth > MaxDepth {
		return nil
	}
	if depth > g.stats.MaxDepth {
		g.stats.MaxDepth = depth
	}

	entries := g.fanOut(maxEntries)
	for range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := g.db.AddEntry(group,
			RandomName(g.rand, nameMaxLength, nameTagPercent, true),
			RandomName(g.rand, nameMaxLength, nameTagPercent, false),
			RandomName(g.rand, passwordMaxLength, 0, false),
		)
		if err != nil {
			return err
		}
		g.stats.Entries++
	}

	if g.descentDraw() >= descentProbability {
		g.logger.Debug().
			Str("group_id", group.ID).
			Int("depth", depth).
			Int("entries", entries).
			Msg("group populated without descent")
		return nil
	}

	children := g.fanOut(maxEntries)
	g.logger.Debug().
		Str("group_id", group.ID).
		Int("depth", depth).
		Int("entries", entries).
		Int("children", children).
		Msg("descending into child groups")

	for range children {
		if err := ctx.Err(); err != nil {
			return err
		}

		child, err := g.db.AddGroup(group, RandomName(g.rand, nameMaxLength, 0, false))
		if err != nil {
			return err
		}
		g.stats.Groups++

		if err = g.Populate(ctx, child, maxEntries, descentProbability/2, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// descentDraw draws uniformly from [1, 100].
func (g *Generator) descentDraw() int {
	return g.rand.IntN(100) + 1
}

// fanOut draws a count uniformly from [1, maxEntries].
func (g *Generator) fanOut(maxEntries int) int {
	if maxEntries < 1 {
		return 1
	}
	return g.rand.IntN(maxEntries) + 1
}
