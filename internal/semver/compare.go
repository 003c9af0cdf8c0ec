package semver

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Strategy is one rung of the comparison ladder. Compare returns ok=false
// when the strategy does not apply to the pair and the next rung must decide.
type Strategy interface {
	Name() string
	Compare(a, b Version) (result int, ok bool)
}

// ConventionalStrategy orders dotted numeric versions numerically. When only
// one side is conventional, that side is greater.
type ConventionalStrategy struct{}

func (ConventionalStrategy) Name() string { return "conventional" }

func (ConventionalStrategy) Compare(a, b Version) (int, bool) {
	return tierCompare(a, b, KindConventional, func(a, b Version) int {
		return compareParts(a.Parts, b.Parts)
	})
}

// SemanticStrategy orders versions with an optional pre-release label:
// numeric components first, then a version without a label above one with a
// label, then labels case-insensitively.
type SemanticStrategy struct{}

func (SemanticStrategy) Name() string { return "semantic" }

func (SemanticStrategy) Compare(a, b Version) (int, bool) {
	return tierCompare(a, b, KindSemantic, func(a, b Version) int {
		if c := compareParts(a.Parts, b.Parts); c != 0 {
			return c
		}
		switch {
		case !a.HasLabel() && !b.HasLabel():
			return 0
		case !a.HasLabel():
			return 1
		case !b.HasLabel():
			return -1
		default:
			return compareFold(a.Label, b.Label)
		}
	})
}

// TextStrategy compares texts case-insensitively. It always applies.
type TextStrategy struct{}

func (TextStrategy) Name() string { return "text" }

func (TextStrategy) Compare(a, b Version) (int, bool) {
	return compareFold(a.Core, b.Core), true
}

// tierCompare applies cmp when both sides are at least as strict as tier.
// A pair where only one side qualifies is decided in favor of that side, so
// the ladder as a whole stays transitive.
func tierCompare(a, b Version, tier Kind, cmp func(a, b Version) int) (int, bool) {
	aIn, bIn := a.Kind <= tier, b.Kind <= tier
	switch {
	case aIn && bIn:
		return cmp(a, b), true
	case aIn:
		return 1, true
	case bIn:
		return -1, true
	default:
		return 0, false
	}
}

// DefaultStrategies returns the standard ladder: conventional, semantic, text.
func DefaultStrategies() []Strategy {
	return []Strategy{ConventionalStrategy{}, SemanticStrategy{}, TextStrategy{}}
}

// DefaultCacheSize is the number of parsed versions a Comparator keeps.
const DefaultCacheSize = 512

// Comparator composes strategies into a total order over version texts.
// It is safe for concurrent use.
type Comparator struct {
	strategies []Strategy
	cache      *lru.Cache[string, Version]
}

// ComparatorOption configures a Comparator.
type ComparatorOption func(*Comparator)

// WithStrategies replaces the comparison ladder.
func WithStrategies(s ...Strategy) ComparatorOption {
	return func(c *Comparator) {
		c.strategies = s
	}
}

// WithCacheSize sets the parsed-version cache size. Sizes below one disable
// the cache.
func WithCacheSize(n int) ComparatorOption {
	return func(c *Comparator) {
		if n < 1 {
			c.cache = nil
			return
		}
		c.cache, _ = lru.New[string, Version](n)
	}
}

// NewComparator returns a Comparator using the default ladder.
func NewComparator(opts ...ComparatorOption) *Comparator {
	c := &Comparator{strategies: DefaultStrategies()}
	c.cache, _ = lru.New[string, Version](DefaultCacheSize)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Comparator) parse(text string) Version {
	if c.cache == nil {
		return Parse(text)
	}
	if v, ok := c.cache.Get(text); ok {
		return v
	}
	v := Parse(text)
	c.cache.Add(text, v)
	return v
}

// Compare returns -1, 0 or +1 as a orders before, equal to or after b.
// Identical texts are always equal. If no strategy applies the pair is
// considered equal.
func (c *Comparator) Compare(a, b string) int {
	if a == b {
		return 0
	}
	va, vb := c.parse(a), c.parse(b)
	for _, s := range c.strategies {
		if r, ok := s.Compare(va, vb); ok {
			return r
		}
	}
	return 0
}

// Max returns the greatest of versions. Ties keep the earliest element.
// ok is false when versions is empty.
func (c *Comparator) Max(versions []string) (best string, ok bool) {
	for i, v := range versions {
		if i == 0 || c.Compare(v, best) > 0 {
			best = v
		}
	}
	return best, len(versions) > 0
}

var defaultComparator = NewComparator()

// Compare orders two version texts with the default ladder.
func Compare(a, b string) int {
	return defaultComparator.Compare(a, b)
}
