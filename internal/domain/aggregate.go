package domain

// Coordinate keys a location on the map. Cambridge reporting-area centroids
// repeat exactly across rows, so float equality is the intended grouping.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Aggregate is one (location, category) summary row.
//
// Invariants, for any aggregate set built by BuildAggregates:
//   - Frequency <= TotalIncidents
//   - the Frequency values of all aggregates sharing a coordinate sum to
//     that coordinate's TotalIncidents
type Aggregate struct {
	Coordinate
	Category       string
	Frequency      int
	TotalIncidents int

	// Descriptive fields of the first cleaned incident at this coordinate.
	Neighborhood  string
	LocationText  string
	ReportingArea string
}

type aggregateKey struct {
	Coordinate
	Category string
}

// BuildAggregates groups cleaned incidents into per-(location, category)
// rows annotated with location totals and first-seen descriptive fields.
// Output order is first-appearance order of each (location, category) key,
// so the result is deterministic for a given input order.
func BuildAggregates(incidents []Incident) []Aggregate {
	frequencies := make(map[aggregateKey]int)
	totals := make(map[Coordinate]int)
	representatives := make(map[Coordinate]Incident)
	var keyOrder []aggregateKey

	for _, inc := range incidents {
		coord := Coordinate{Lat: inc.Lat, Lon: inc.Lon}
		key := aggregateKey{Coordinate: coord, Category: inc.Category}

		if _, ok := frequencies[key]; !ok {
			keyOrder = append(keyOrder, key)
		}
		frequencies[key]++
		totals[coord]++
		if _, ok := representatives[coord]; !ok {
			representatives[coord] = inc
		}
	}

	aggregates := make([]Aggregate, 0, len(keyOrder))
	for _, key := range keyOrder {
		rep := representatives[key.Coordinate]
		aggregates = append(aggregates, Aggregate{
			Coordinate:     key.Coordinate,
			Category:       key.Category,
			Frequency:      frequencies[key],
			TotalIncidents: totals[key.Coordinate],
			Neighborhood:   rep.Neighborhood,
			LocationText:   rep.LocationText,
			ReportingArea:  rep.ReportingArea,
		})
	}
	return aggregates
}

// DistinctLocations counts the distinct coordinates among cleaned incidents.
func DistinctLocations(incidents []Incident) int {
	seen := make(map[Coordinate]struct{})
	for _, inc := range incidents {
		seen[Coordinate{Lat: inc.Lat, Lon: inc.Lon}] = struct{}{}
	}
	return len(seen)
}

// DistinctCategories counts the distinct category labels among cleaned
// incidents.
func DistinctCategories(incidents []Incident) int {
	seen := make(map[string]struct{})
	for _, inc := range incidents {
		seen[inc.Category] = struct{}{}
	}
	return len(seen)
}

// TotalRange returns the minimum and maximum TotalIncidents across the
// aggregates. Both are 0 for an empty slice.
func TotalRange(aggregates []Aggregate) (minTotal, maxTotal int) {
	for i, agg := range aggregates {
		if i == 0 {
			minTotal, maxTotal = agg.TotalIncidents, agg.TotalIncidents
			continue
		}
		if agg.TotalIncidents < minTotal {
			minTotal = agg.TotalIncidents
		}
		if agg.TotalIncidents > maxTotal {
			maxTotal = agg.TotalIncidents
		}
	}
	return minTotal, maxTotal
}
