package refdata

import (
	"encoding/json"
	"os"

	"finguard/internal/domain/models"
	"finguard/pkg/logger"
)

// Blacklist is the static set of known-bad author names, loaded once at
// process start. Lookups are exact and case-sensitive. Read-only after
// construction, so no locking is needed.
type Blacklist struct {
	names map[string]struct{}
}

// NewBlacklist builds a blacklist from entries.
func NewBlacklist(entries []models.BlacklistEntry) *Blacklist {
	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			names[e.Name] = struct{}{}
		}
	}
	return &Blacklist{names: names}
}

// LoadBlacklist reads the watch list from a JSON file of {"name": ...}
// records. A missing or corrupt file degrades to an empty list: reference
// data problems must never fail requests.
func LoadBlacklist(path string, log *logger.Logger) *Blacklist {
	log = log.WithComponent("blacklist")

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("blacklist unavailable, using empty list")
		return NewBlacklist(nil)
	}

	var entries []models.BlacklistEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("blacklist corrupt, using empty list")
		return NewBlacklist(nil)
	}

	log.Info().Int("entries", len(entries)).Str("path", path).Msg("blacklist loaded")
	return NewBlacklist(entries)
}

// Contains reports whether name is on the watch list.
func (b *Blacklist) Contains(name string) bool {
	_, ok := b.names[name]
	return ok
}

// Len returns the number of entries.
func (b *Blacklist) Len() int {
	return len(b.names)
}
