// Package progress renders animated circular and linear progress indicators
// on top of github.com/gogpu/gg.
//
// # Overview
//
// A Renderer turns a Config snapshot into a small tree of pooled layers:
// a track stroke, a progress stroke and, when gradient stops are given, a
// linear gradient masked by the progress stroke. A numeric label follows the
// value. Layers are recycled between draws, so redrawing at animation rate
// does not allocate new surfaces.
//
// # Quick Start
//
//	r, err := progress.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Resize(200, 200)
//
//	cfg := progress.DefaultConfig()
//	cfg.Value = 7
//	r.Draw(cfg, false)
//
//	dc := gg.NewContext(200, 200)
//	r.Paint(dc)
//	dc.SavePNG("progress.png")
//
// # Animation
//
// An animated draw reveals the progress stroke and counts the label up from
// the previously drawn value. The stroke reveal is evaluated at paint time
// from the renderer's clock. The label advances on Tick, which the host calls
// from its frame source, or from Run, which ticks on a time.Ticker. Offline
// renderers inject an anim.ManualClock with WithClock and step it between
// frames.
//
// # Coordinate System
//
// Same as gg: origin at top-left, y down. Angles are in degrees in Config
// and increase clockwise on screen.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive diagnostics.
package progress

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
