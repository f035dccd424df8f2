package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawRecord is one CSV row as read by the extractor, all fields still strings.
type RawRecord struct {
	Category      string
	Lat           string
	Lon           string
	Neighborhood  string
	LocationText  string
	ReportingArea string
	ReportDate    string
}

// Incident is a cleaned crime report with numeric coordinates.
// Immutable once parsed.
type Incident struct {
	Category      string
	Lat           float64
	Lon           float64
	Neighborhood  string
	LocationText  string
	ReportingArea string
	ReportDate    string
}

// DataSourceError reports a fatal problem with the input file: missing,
// unreadable, or structurally unparseable. Row-level coordinate problems
// are not data source errors; those rows are silently dropped.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// ParseIncident coerces a raw row into an Incident. The second return is
// false when either coordinate is missing or non-numeric, which marks the
// row for dropping.
func ParseIncident(rec RawRecord) (Incident, bool) {
	lat, okLat := parseCoordinate(rec.Lat)
	lon, okLon := parseCoordinate(rec.Lon)
	if !okLat || !okLon {
		return Incident{}, false
	}

	return Incident{
		Category:      strings.TrimSpace(rec.Category),
		Lat:           lat,
		Lon:           lon,
		Neighborhood:  strings.TrimSpace(rec.Neighborhood),
		LocationText:  strings.TrimSpace(rec.LocationText),
		ReportingArea: strings.TrimSpace(rec.ReportingArea),
		ReportDate:    strings.TrimSpace(rec.ReportDate),
	}, true
}

// CleanRecords parses every raw row, keeping input order, and returns the
// valid incidents plus the number of rows dropped for bad coordinates.
func CleanRecords(records []RawRecord) ([]Incident, int) {
	incidents := make([]Incident, 0, len(records))
	dropped := 0
	for _, rec := range records {
		inc, ok := ParseIncident(rec)
		if !ok {
			dropped++
			continue
		}
		incidents = append(incidents, inc)
	}
	return incidents, dropped
}

func parseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// reportDateLayouts are the timestamp formats observed in Cambridge crime
// log exports, most specific first.
var reportDateLayouts = []string{
	"01/02/2006 03:04:05 PM",
	"01/02/2006 15:04",
	"01/02/2006",
	"2006-01-02",
}

// DateRange tracks the earliest and latest report dates seen, keeping the
// raw strings for display. Values that parse under a known layout are
// ordered chronologically; unparseable values fall back to string order.
type DateRange struct {
	Min, Max         string
	minTime, maxTime time.Time
	minOK, maxOK     bool
	seen             bool
}

// Observe folds one report-date value into the range. Blank values are
// ignored.
func (r *DateRange) Observe(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	t, ok := parseReportDate(raw)

	if !r.seen {
		r.Min, r.minTime, r.minOK = raw, t, ok
		r.Max, r.maxTime, r.maxOK = raw, t, ok
		r.seen = true
		return
	}
	if lessReportDate(raw, t, ok, r.Min, r.minTime, r.minOK) {
		r.Min, r.minTime, r.minOK = raw, t, ok
	}
	if lessReportDate(r.Max, r.maxTime, r.maxOK, raw, t, ok) {
		r.Max, r.maxTime, r.maxOK = raw, t, ok
	}
}

// Empty reports whether no dates were observed.
func (r *DateRange) Empty() bool { return !r.seen }

func parseReportDate(raw string) (time.Time, bool) {
	for _, layout := range reportDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func lessReportDate(a string, at time.Time, aok bool, b string, bt time.Time, bok bool) bool {
	if aok && bok {
		return at.Before(bt)
	}
	return a < b
}

// ObserveDates builds the report-date range over a cleaned incident slice.
func ObserveDates(incidents []Incident) DateRange {
	var r DateRange
	for _, inc := range incidents {
		r.Observe(inc.ReportDate)
	}
	return r
}

// MeanCoordinate returns the arithmetic mean (lat, lon) over the cleaned
// incidents, used as the map center. Returns (0, 0) for an empty slice.
func MeanCoordinate(incidents []Incident) (lat, lon float64) {
	if len(incidents) == 0 {
		return 0, 0
	}
	for _, inc := range incidents {
		lat += inc.Lat
		lon += inc.Lon
	}
	n := float64(len(incidents))
	return lat / n, lon / n
}
