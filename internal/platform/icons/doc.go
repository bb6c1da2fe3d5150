// Package icons defines named SVG path geometries shared across the platform.
//
// Each entry is drawn on a 24x24 viewbox as a single stroked path, which is
// the shape badges expect. Callers that already hold raw path data can skip
// the catalog entirely.
package icons
