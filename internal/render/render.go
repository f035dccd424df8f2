// Package render builds the self-contained Leaflet map document: one scaled,
// colored circle marker per (location, category) aggregate, a popup per
// marker, a category legend, and selectable background tile layers.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/couchcryptid/crime-data-map/internal/domain"
)

//go:embed templates/map.html
var templates embed.FS

var mapTemplate = template.Must(template.ParseFS(templates, "templates/map.html"))

// Marker radius bounds in pixels. A location's total incident count is
// interpolated linearly into this range.
const (
	minRadius = 5.0
	maxRadius = 25.0
	// midRadius is used when every location has the same total, where the
	// interpolation is undefined. A lone size class reads as mid-weight.
	midRadius = 15.0
)

// placeholder substitutes for absent descriptive fields in popups.
const placeholder = "Not specified"

// Renderer turns aggregates plus a color mapping into an HTML document.
type Renderer struct {
	title string
	zoom  int
}

// NewRenderer creates a Renderer with the given initial zoom level.
func NewRenderer(zoom int) *Renderer {
	return &Renderer{title: "Cambridge Crime Map", zoom: zoom}
}

// MapData is the immutable input snapshot for one render.
type MapData struct {
	Aggregates []domain.Aggregate
	Colors     map[string]string
	CenterLat  float64
	CenterLon  float64
}

// marker is the JSON shape consumed by the embedded template's script.
type marker struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
	Popup  string  `json:"popup"`
}

// legendEntry is one legend row.
type legendEntry struct {
	Category  string
	Color     string
	Locations int
}

// Render produces the complete HTML document.
func (r *Renderer) Render(data MapData) ([]byte, error) {
	minTotal, maxTotal := domain.TotalRange(data.Aggregates)

	markers := make([]marker, 0, len(data.Aggregates))
	for _, agg := range data.Aggregates {
		markers = append(markers, marker{
			Lat:    agg.Lat,
			Lon:    agg.Lon,
			Radius: markerRadius(agg.TotalIncidents, minTotal, maxTotal),
			Color:  data.Colors[agg.Category],
			Popup:  popupHTML(agg),
		})
	}

	markersJSON, err := json.Marshal(markers)
	if err != nil {
		return nil, fmt.Errorf("marshal markers: %w", err)
	}

	page := struct {
		Title       string
		CenterLat   float64
		CenterLon   float64
		Zoom        int
		Legend      []legendEntry
		MarkersJSON template.JS
		GeneratedAt string
	}{
		Title:       r.title,
		CenterLat:   data.CenterLat,
		CenterLon:   data.CenterLon,
		Zoom:        r.zoom,
		Legend:      legendEntries(data.Aggregates, data.Colors),
		MarkersJSON: template.JS(markersJSON),
		GeneratedAt: domain.GeneratedAt().UTC().Format(time.RFC3339),
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("execute map template: %w", err)
	}
	return buf.Bytes(), nil
}

// markerRadius interpolates a location total into [minRadius, maxRadius].
// When every aggregate shares one total the range collapses, and the
// midpoint radius is returned instead of dividing by zero.
func markerRadius(total, minTotal, maxTotal int) float64 {
	if maxTotal == minTotal {
		return midRadius
	}
	return minRadius + float64(total-minTotal)/float64(maxTotal-minTotal)*(maxRadius-minRadius)
}

// popupHTML builds the marker popup. Field values are escaped; absent
// descriptive fields fall back to a placeholder.
func popupHTML(agg domain.Aggregate) string {
	return fmt.Sprintf(
		"<b>Location:</b> %s<br>"+
			"<b>Neighborhood:</b> %s<br>"+
			"<b>Crime Type:</b> %s<br>"+
			"<b>Incidents of this type:</b> %d<br>"+
			"<b>Total incidents at location:</b> %d",
		escapeOrPlaceholder(agg.LocationText),
		escapeOrPlaceholder(agg.Neighborhood),
		escapeOrPlaceholder(agg.Category),
		agg.Frequency,
		agg.TotalIncidents,
	)
}

func escapeOrPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return template.HTMLEscapeString(s)
}

// legendEntries lists every distinct category alphabetically with its color
// and the number of distinct locations exhibiting it. Aggregates are unique
// per (location, category), so rows per category equal locations per
// category.
func legendEntries(aggregates []domain.Aggregate, colors map[string]string) []legendEntry {
	locations := make(map[string]int)
	for _, agg := range aggregates {
		locations[agg.Category]++
	}

	entries := make([]legendEntry, 0, len(locations))
	for category, count := range locations {
		entries = append(entries, legendEntry{
			Category:  category,
			Color:     colors[category],
			Locations: count,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Category < entries[j].Category })
	return entries
}
