package modifier

import (
	"time"

	"github.com/AccelByte/extend-dynamic-difficulty/pkg/session"
)

// Modifier computes a signed difficulty contribution from a player's
// session/behavior data. Modifiers are registered in a Registry and
// evaluated in registration order by the difficulty service.
type Modifier interface {
	// ID returns the unique modifier identifier.
	ID() string

	// Name returns a human-readable modifier name for diagnostics.
	Name() string

	// Evaluate computes the modifier's contribution for the given session
	// data at the given time. It must not mutate the data, performs no I/O
	// and is total: inputs that do not meet the modifier's conditions
	// yield a zero-valued contribution, never an error.
	Evaluate(data *session.Data, now time.Time) Contribution

	// Config returns the modifier's configuration.
	Config() Config
}

// Contribution is the signed output of one modifier for one calculation
// pass. It is produced fresh on every pass and never persisted.
type Contribution struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// NewContribution creates a contribution for the named modifier.
func NewContribution(name string, value float64) Contribution {
	return Contribution{Name: name, Value: value}
}
