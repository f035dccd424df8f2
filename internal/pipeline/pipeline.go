// Package pipeline orchestrates the one-shot load → aggregate → render →
// write run and prints the console summary.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/couchcryptid/crime-data-map/internal/domain"
	"github.com/couchcryptid/crime-data-map/internal/observability"
	"github.com/couchcryptid/crime-data-map/internal/render"
)

// Extractor reads raw incident rows from the data source.
type Extractor interface {
	Extract() ([]domain.RawRecord, error)
}

// Renderer turns the aggregate snapshot into the output document.
type Renderer interface {
	Render(data render.MapData) ([]byte, error)
}

// Writer persists the rendered document.
type Writer interface {
	Write(document []byte) error
	Path() string
}

// Pipeline runs the stages strictly in sequence. Each stage consumes the
// immutable result of the previous one; there is no retry and no partial
// success. Run either writes a valid document or returns an error with
// nothing committed.
type Pipeline struct {
	extractor Extractor
	renderer  Renderer
	writer    Writer
	geocoder  domain.Geocoder // nil disables popup backfill
	logger    *slog.Logger
	metrics   *observability.Metrics
	out       io.Writer
}

// New creates a Pipeline. Pass a nil geocoder to disable place backfill.
// The summary block is written to out.
func New(e Extractor, r Renderer, w Writer, geocoder domain.Geocoder, logger *slog.Logger, metrics *observability.Metrics, out io.Writer) *Pipeline {
	return &Pipeline{
		extractor: e,
		renderer:  r,
		writer:    w,
		geocoder:  geocoder,
		logger:    logger,
		metrics:   metrics,
		out:       out,
	}
}

// Result summarizes one completed run.
type Result struct {
	IncidentsLoaded   int
	RowsDropped       int
	DistinctLocations int
	Categories        int
	Aggregates        int
	DateRange         domain.DateRange
	OutputPath        string
}

// Run executes the full pipeline once.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	p.logger.Info("pipeline started")

	// ── Extract & clean ──
	start := time.Now()
	records, err := p.extractor.Extract()
	if err != nil {
		return Result{}, fmt.Errorf("extract: %w", err)
	}
	incidents, dropped := domain.CleanRecords(records)
	p.metrics.IncidentsLoaded.Add(float64(len(incidents)))
	p.metrics.RowsDropped.Add(float64(dropped))
	p.metrics.StageDuration.WithLabelValues("extract").Observe(time.Since(start).Seconds())
	p.logger.Info("crime data loaded", "incidents", len(incidents), "dropped", dropped)

	if p.geocoder != nil {
		incidents = domain.BackfillPlaces(ctx, incidents, p.geocoder, p.logger)
	}

	// ── Aggregate ──
	start = time.Now()
	aggregates := domain.BuildAggregates(incidents)
	colors := domain.AssignColors(aggregates)
	centerLat, centerLon := domain.MeanCoordinate(incidents)
	dates := domain.ObserveDates(incidents)
	p.metrics.Aggregates.Set(float64(len(aggregates)))
	p.metrics.Categories.Set(float64(len(colors)))
	p.metrics.Locations.Set(float64(domain.DistinctLocations(incidents)))
	p.metrics.StageDuration.WithLabelValues("aggregate").Observe(time.Since(start).Seconds())
	p.logger.Info("incidents aggregated", "aggregates", len(aggregates), "categories", len(colors))

	// ── Render ──
	start = time.Now()
	document, err := p.renderer.Render(render.MapData{
		Aggregates: aggregates,
		Colors:     colors,
		CenterLat:  centerLat,
		CenterLon:  centerLon,
	})
	if err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}
	p.metrics.StageDuration.WithLabelValues("render").Observe(time.Since(start).Seconds())
	p.logger.Info("map rendered", "markers", len(aggregates), "bytes", len(document))

	// ── Write ──
	start = time.Now()
	if err := p.writer.Write(document); err != nil {
		return Result{}, fmt.Errorf("write output: %w", err)
	}
	p.metrics.StageDuration.WithLabelValues("write").Observe(time.Since(start).Seconds())
	p.logger.Info("map saved", "path", p.writer.Path())

	result := Result{
		IncidentsLoaded:   len(incidents),
		RowsDropped:       dropped,
		DistinctLocations: domain.DistinctLocations(incidents),
		Categories:        domain.DistinctCategories(incidents),
		Aggregates:        len(aggregates),
		DateRange:         dates,
		OutputPath:        p.writer.Path(),
	}
	p.printSummary(result)
	return result, nil
}

// printSummary writes the human-readable summary block to the console.
func (p *Pipeline) printSummary(r Result) {
	fmt.Fprintf(p.out, "\nMap saved as %s\n", r.OutputPath)
	fmt.Fprintln(p.out, "Open this file in a web browser to view the interactive map.")
	fmt.Fprintln(p.out, "\nSummary:")
	fmt.Fprintf(p.out, "  Total incidents:     %d (%d rows dropped)\n", r.IncidentsLoaded, r.RowsDropped)
	fmt.Fprintf(p.out, "  Unique locations:    %d\n", r.DistinctLocations)
	fmt.Fprintf(p.out, "  Crime types:         %d\n", r.Categories)
	if r.DateRange.Empty() {
		fmt.Fprintf(p.out, "  Date range:          (no report dates)\n")
	} else {
		fmt.Fprintf(p.out, "  Date range:          %s to %s\n", r.DateRange.Min, r.DateRange.Max)
	}
}
