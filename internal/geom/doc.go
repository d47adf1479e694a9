// Package geom provides the coordinate and rotation math shared by the
// scene randomizers: spherical/cylindrical conversions for camera and
// focus placement, a small Vec3 type, and look-at rotation matrices
// with XYZ Euler extraction matching the host's rotation convention.
package geom
