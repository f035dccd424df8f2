package domain

import (
	"context"
	"log/slog"
)

// BackfillPlaces fills empty LocationText fields with reverse-geocoded place
// names so popups show something better than a placeholder. If geocoder is
// nil the incidents are returned untouched; individual lookup failures leave
// the incident as-is (graceful degradation). Coordinates, categories, and
// aggregation keys are never modified.
func BackfillPlaces(ctx context.Context, incidents []Incident, geocoder Geocoder, logger *slog.Logger) []Incident {
	if geocoder == nil {
		return incidents
	}

	out := make([]Incident, len(incidents))
	copy(out, incidents)

	for i := range out {
		if out[i].LocationText != "" {
			continue
		}
		result, err := geocoder.ReverseGeocode(ctx, out[i].Lat, out[i].Lon)
		if err != nil {
			logger.Warn("reverse geocoding failed",
				"lat", out[i].Lat,
				"lon", out[i].Lon,
				"error", err,
			)
			continue
		}
		if result.FormattedAddress == "" {
			continue
		}
		out[i].LocationText = result.FormattedAddress
		if out[i].Neighborhood == "" && result.PlaceName != "" {
			out[i].Neighborhood = result.PlaceName
		}
	}
	return out
}
