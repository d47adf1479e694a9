// Package preview renders schematic top-down previews of sampled dart
// placements for debugging and dataset inspection.
//
// The rendering is deliberately simple: the board face is evaluated per
// pixel against the scoring geometry, darts become small cross markers,
// and the segment numbers are drawn with a tiny bitmap font. This is
// diagnostic output, not the photoreal render the host produces.
//
// # Coordinate System
//
// World coordinates follow the board convention: the origin is the
// bullseye center, +X points right, +Y points up ("20" at the top) and
// units are meters. Image pixels map linearly onto a square window
// centered on the origin.
//
// # Output
//
// Images are rendered at a supersampled resolution and downscaled for
// smooth ring edges. Save writes any format disintegration/imaging
// recognizes by file extension; previews normally use PNG.
package preview
