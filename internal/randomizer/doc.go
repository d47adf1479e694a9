// Package randomizer contains the deterministic per-frame samplers for
// the dartboard dataset generator: camera pose, dart geometry, dart
// placement, board appearance and environment parameters.
//
// Each randomizer owns a private math/rand generator and draws all of
// its randomness from it. Construction happens once (any heavy setup
// belongs there); before each frame the Manager reseeds every
// randomizer with a sub-seed derived from the global seed, the
// component tag and the frame index, then asks it for fresh values.
// The same (global seed, frame) pair therefore always yields the same
// FrameSample, no matter how many frames were generated in between or
// on which worker the frame ran.
//
// Randomizers produce plain values (poses, placements, colors). The
// host renderer applies them to its scene; nothing in this package
// touches a scene graph, a file, or the network.
//
// A randomizer is not safe for concurrent use: its rand.Rand is
// unsynchronized. Use one Manager per worker.
package randomizer
