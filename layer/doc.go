// Package layer provides the pooled drawing primitives of a progress
// indicator and the pool that recycles them between redraws.
//
// A primitive owns a gg.Context backing store sized to the pool bounds.
// Primitives move between an idle free list and the visible render tree;
// they are never freed while the pool is alive, so after warm-up a redraw
// allocates nothing.
package layer
