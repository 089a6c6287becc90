// Package cli implements the progressdemo command line.
//
// Commands:
//   - render: draw a chart once and write it as PNG
//   - frames: render an animated draw frame by frame into a directory
//   - preview: animate a chart in the terminal
//   - config: print the effective chart file
//   - version: print build information
package cli
