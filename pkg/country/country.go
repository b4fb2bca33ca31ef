// Package country normalizes free-text country names into lowercase
// country codes, canonical full names, and flag image URLs.
//
// Resolution is an ordered three-step chain: an exception table is
// consulted first, then a standards lookup against ISO data, and
// finally a fallback that derives a local code from the raw input.
// Resolution never fails; the fallback path emits a warning
// notification instead.
package country

import (
	"context"
	"fmt"
	"strings"

	"github.com/pariz/gountries"

	"github.com/habitfund/contribmap/pkg/constants"
	"github.com/habitfund/contribmap/pkg/errors"
	"github.com/habitfund/contribmap/pkg/logging"
)

// Info is the normalized form of a country name. Code is lowercase and
// used as the output file key; FullName is the canonical display name.
type Info struct {
	Code     string
	FullName string
	FlagURL  string
}

// Notifier receives fallback warnings. It matches the notify package's
// interface so a Slack notifier can be plugged in directly.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// Resolver maps country names to Info. The zero value is not usable;
// construct with NewResolver.
type Resolver struct {
	exceptions map[string]Exception
	query      *gountries.Query
	notifier   Notifier
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNotifier sets the sink for fallback warnings. Without one,
// fallbacks are logged only.
func WithNotifier(n Notifier) Option {
	return func(r *Resolver) {
		r.notifier = n
	}
}

// WithExceptions overlays additional exception-table entries on top of
// the built-in ones. Overlay entries win on name collisions.
func WithExceptions(overlay map[string]Exception) Option {
	return func(r *Resolver) {
		for name, e := range overlay {
			r.exceptions[name] = e
		}
	}
}

// NewResolver creates a Resolver with the built-in exception table and
// the embedded ISO country dataset.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		exceptions: make(map[string]Exception, len(defaultExceptions)),
		query:      gountries.New(),
	}
	for name, e := range defaultExceptions {
		r.exceptions[name] = e
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps a country name to its Info. It never fails: names that
// miss both the exception table and the standards lookup fall back to a
// locally derived code, and that path emits a single warning
// notification naming the input and the derived code.
func (r *Resolver) Resolve(ctx context.Context, name string) Info {
	var code, fullName string

	if e, ok := r.exceptions[name]; ok {
		code, fullName = e.Code, e.Name
	} else if c, f, err := r.lookup(name); err == nil {
		code, fullName = c, f
	} else {
		code = FallbackCode(name)
		fullName = name

		msg := fmt.Sprintf("⚠️ Country lookup failed for '%s'. Using fallback code: '%s'", name, code)
		logging.FromContext(ctx).Warn().
			Str("country_name", name).
			Str("fallback_code", code).
			Msg("Country lookup failed, using fallback code")
		if r.notifier != nil {
			r.notifier.Notify(ctx, msg)
		}
	}

	return Info{
		Code:     code,
		FullName: fullName,
		FlagURL:  FlagURL(code),
	}
}

// lookup resolves a name against the ISO dataset: alpha-2/alpha-3 code
// first, then common name, then official name. All misses collapse into
// ErrNotFound; callers only need to know the chain fell through.
func (r *Resolver) lookup(name string) (code, fullName string, err error) {
	if n := len(name); n == 2 || n == 3 {
		if c, err := r.query.FindCountryByAlpha(name); err == nil {
			return strings.ToLower(c.Alpha2), c.Name.Common, nil
		}
	}

	if c, err := r.query.FindCountryByName(name); err == nil {
		return strings.ToLower(c.Alpha2), c.Name.Common, nil
	}

	lower := strings.ToLower(name)
	for _, c := range r.query.FindAllCountries() {
		if strings.ToLower(c.Name.Official) == lower {
			return strings.ToLower(c.Alpha2), c.Name.Common, nil
		}
	}

	return "", "", errors.ErrNotFound
}

// FallbackCode derives a non-standard local code from a country name:
// lowercased, spaces replaced with underscores.
func FallbackCode(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// FlagURL returns the flag image URL for a lowercase country code. The
// synthetic "global" code maps to the UN flag.
func FlagURL(code string) string {
	if code == "global" {
		return constants.GlobalFlagURL
	}
	return fmt.Sprintf(constants.FlagURLFormat, code)
}
