// Package domain models Cambridge open-data crime incident reports.
//
// # Data Source
//
// Incidents come from the City of Cambridge crime log export, a single CSV
// with one row per reported incident. The columns this tool reads:
//
//	Crime               incident category, e.g. "Larceny of Bicycle"
//	Reporting Area Lat  latitude of the reporting area centroid
//	Reporting Area Lon  longitude of the reporting area centroid
//	Neighborhood        city neighborhood name (may be blank)
//	Location            free-text address or intersection (may be blank)
//	Reporting Area      police reporting-area identifier (may be blank)
//	Date of Report      report timestamp, usually "MM/DD/YYYY hh:mm:ss AM"
//
// Coordinates are the reporting-area centroid, not the exact address, so
// many incidents share an identical (lat, lon) pair. That is what makes
// per-location aggregation meaningful: a coordinate accumulates every
// incident reported in its area.
//
// # Cleaning
//
// Rows whose coordinate fields are blank or fail float parsing are dropped,
// never repaired. Dropping is silent per row; only the dropped total is
// surfaced. All other fields pass through as-is, with blanks rendered as
// placeholders downstream.
//
// # Aggregation
//
// Incidents are grouped twice: by (lat, lon, category) for per-category
// frequencies and by (lat, lon) for location totals. Each aggregate carries
// the descriptive fields of the first cleaned incident seen at its
// coordinate. "First" is cleaned-input order, which keeps reruns over the
// same file byte-for-byte reproducible.
package domain
