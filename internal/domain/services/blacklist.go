package services

import (
	"finguard/internal/refdata"
	"finguard/pkg/logger"
)

// BlacklistDetector checks authors against the static scam watch list and
// contributes a fixed score bonus for listed names.
type BlacklistDetector struct {
	list   *refdata.Blacklist
	logger *logger.Logger
	bonus  int
}

// NewBlacklistDetector creates a detector over the loaded watch list.
func NewBlacklistDetector(list *refdata.Blacklist, bonus int, log *logger.Logger) *BlacklistDetector {
	return &BlacklistDetector{
		list:   list,
		logger: log.WithComponent("blacklist-detector"),
		bonus:  bonus,
	}
}

// Detect reports whether author is listed and the bonus to apply. An
// absent author is never listed.
func (d *BlacklistDetector) Detect(author string) (listed bool, bonus int) {
	if author == "" || !d.list.Contains(author) {
		return false, 0
	}
	d.logger.Debug().Str("author", author).Msg("author on scam watch list")
	return true, d.bonus
}
