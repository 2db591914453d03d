// Package geo projects the snapshot down to the catches a map can plot.
package geo

import "catch-log/internal/models"

// WithCoordinates returns the catches with both lat and lng set, in input
// order and unchanged. Centering, zoom and tiles are the map UI's problem.
func WithCoordinates(catches []models.Catch) []models.Catch {
	out := make([]models.Catch, 0, len(catches))
	for _, c := range catches {
		if c.Lat != nil && c.Lng != nil {
			out = append(out, c)
		}
	}
	return out
}
