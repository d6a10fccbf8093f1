package cast

import (
	"github.com/pkg/errors"

	"github.com/bearlytools/num/types"
)

// ErrInexact is returned by Try when the conversion would not preserve the
// value. Test with errors.Is/errors.Cause.
var ErrInexact = errors.New("conversion would not preserve the value")

// Try is Exact with an error channel, for call sites that thread errors
// instead of ok flags. The returned error wraps ErrInexact with the source
// value and target type.
func Try[To, From types.Numeric](v From) (To, error) {
	t, ok := Exact[To](v)
	if !ok {
		return t, errors.Wrapf(ErrInexact, "cast %v (%T) to %T", v, v, t)
	}
	return t, nil
}
