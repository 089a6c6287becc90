// Package geometry builds the track and progress paths of a progress
// indicator.
//
// Paths are kept analytic (arcs and straight segments) so that sweep angles
// and lengths can be queried exactly and the stroke can be trimmed for
// reveal animations. A Path is converted to a [gg.Path] only when it is
// rasterized.
//
// Angles are in radians with 0 on the positive x-axis. With gg's y-down
// coordinate system a positive sweep runs visually clockwise.
package geometry
