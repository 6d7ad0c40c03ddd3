package snapshot

import (
	"performance-tracker-backend/internal/logger"
	"performance-tracker-backend/internal/stats"
)

// LogPublished returns a subscriber that logs the size of every published snapshot at debug level
func LogPublished(log *logger.Logger) func(stats.Snapshot) {
	return func(s stats.Snapshot) {
		log.WithFields(map[string]any{
			"members": len(s.Members),
			"tasks":   len(s.Tasks),
			"ratings": len(s.Ratings),
		}).Debug("Snapshot published")
	}
}
