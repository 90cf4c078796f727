package refdata

import (
	"encoding/json"
	"os"

	"finguard/pkg/logger"
)

// VerifiedRegistry is the static list of regulator-verified entity names.
// Membership is an exact match; the registry has no interaction with the
// risk-scoring engine.
type VerifiedRegistry struct {
	names map[string]struct{}
}

// NewVerifiedRegistry builds a registry from names.
func NewVerifiedRegistry(names []string) *VerifiedRegistry {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return &VerifiedRegistry{names: set}
}

// LoadVerifiedRegistry reads the registry from a JSON array of names.
// Missing or corrupt files degrade to an empty registry.
func LoadVerifiedRegistry(path string, log *logger.Logger) *VerifiedRegistry {
	log = log.WithComponent("verified-registry")

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("registry unavailable, using empty set")
		return NewVerifiedRegistry(nil)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("registry corrupt, using empty set")
		return NewVerifiedRegistry(nil)
	}

	log.Info().Int("entries", len(names)).Str("path", path).Msg("verified registry loaded")
	return NewVerifiedRegistry(names)
}

// Contains reports whether entity is in the registry.
func (r *VerifiedRegistry) Contains(entity string) bool {
	_, ok := r.names[entity]
	return ok
}

// Len returns the number of entries.
func (r *VerifiedRegistry) Len() int {
	return len(r.names)
}
