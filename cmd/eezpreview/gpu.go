//go:build gpu

package main

// Build with -tags gpu to let gg rasterize on the GPU when one is
// available. Output is the same as the CPU path.
import _ "github.com/gogpu/gg/gpu"
