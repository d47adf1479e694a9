// Package board models the physical geometry of a WDF regulation
// dartboard and validates dart placements against it.
//
// The central type is Layout, an immutable value constructed once and
// shared by all callers. It precomputes the six radius bands occupied
// by the ring wires (inflated by the dart tip radius) and exposes two
// pure correction functions:
//
//   - ValidateRadius snaps a radius out of any wire-occupied band.
//   - ValidateAngle pushes an angle away from the radial segment wires.
//
// # Units
//
// All public method inputs and outputs are in meters and radians.
// The physical constants are specified in millimeters, as published in
// the WDF standards, and converted at the method boundary.
//
// # Failure Semantics
//
// Neither validation function can fail. Physically nonsensical inputs
// (negative radius, a radius far beyond the board, angles outside
// [0, 2π)) fall through with no correction applied. A batch dataset
// run must never halt over one bad sample.
//
// # Thread Safety
//
// A Layout only reads precomputed immutable data; its methods are safe
// for unsynchronized concurrent use.
package board
