//go:build gpu

package main

// Build with -tags gpu to render through the GPU accelerator when a device
// is available. gg falls back to the CPU rasterizer otherwise.
import _ "github.com/gogpu/gg/gpu"
