package templates

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/indaco/scafsln/internal/logging"
)

// Origin tells where resolved template content came from.
type Origin string

const (
	OriginDefault  Origin = "default"
	OriginOverride Origin = "override"
)

// Resolver returns the effective content of a template: the user override
// when one is stored, the built-in default otherwise.
type Resolver struct {
	store  *Store
	logger *log.Logger
}

// NewResolver creates a Resolver. A nil store always yields defaults.
func NewResolver(store *Store, logger *log.Logger) *Resolver {
	return &Resolver{store: store, logger: logging.OrDiscard(logger)}
}

// Resolve returns the effective content of name. Store failures are logged
// as warnings and fall back to the default.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, Origin, error) {
	def, err := Default(name)
	if err != nil {
		return "", "", err
	}
	if r.store == nil {
		return def, OriginDefault, nil
	}

	content, ok, err := r.store.Override(ctx, name)
	if err != nil {
		r.logger.Warn("template store unavailable, using built-in template",
			"template", name, "store", r.store.Path(), "error", err)
		return def, OriginDefault, nil
	}
	if !ok {
		return def, OriginDefault, nil
	}
	return content, OriginOverride, nil
}
