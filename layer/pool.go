package layer

import "fmt"

// Kind identifies a primitive kind; each kind has its own free list.
type Kind int

const (
	// KindShape is a stroked path.
	KindShape Kind = iota
	// KindGradient is a masked gradient ramp.
	KindGradient
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindGradient:
		return "gradient"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Stats is a snapshot of the pool's free lists.
type Stats struct {
	IdleShapes       int
	VisibleShapes    int
	IdleGradients    int
	VisibleGradients int

	// Allocated counts every primitive ever created, per kind.
	AllocatedShapes    int
	AllocatedGradients int
}

// Pool recycles primitives between redraws.
//
// Usage:
//
//	pool := layer.NewPool()
//	pool.SetBounds(300, 200)
//	pool.Reset()             // start of every draw
//	track := pool.AcquireShape()
//	progress := pool.AcquireShape()
//
// A Pool is owned by a single renderer and is not safe for concurrent use.
type Pool struct {
	width, height int

	idleShapes       []*Shape
	visibleShapes    []*Shape
	idleGradients    []*Gradient
	visibleGradients []*Gradient

	tree []Layer

	allocatedShapes    int
	allocatedGradients int
}

// NewPool creates an empty pool with zero bounds.
func NewPool() *Pool {
	return &Pool{}
}

// SetBounds sets the size primitives are given when acquired.
func (p *Pool) SetBounds(width, height int) {
	p.width, p.height = width, height
}

// Bounds returns the current primitive size.
func (p *Pool) Bounds() (width, height int) {
	return p.width, p.height
}

// AcquireShape returns an idle shape, or a new one when none is idle,
// sized to the pool bounds and attached to the render tree.
func (p *Pool) AcquireShape() (*Shape, error) {
	var s *Shape
	if len(p.idleShapes) > 0 {
		s = p.idleShapes[0]
		p.idleShapes = p.idleShapes[1:]
		s.reset()
	} else {
		s = newShape()
		p.allocatedShapes++
	}

	if err := s.resize(p.width, p.height); err != nil {
		p.idleShapes = append(p.idleShapes, s)
		return nil, fmt.Errorf("layer: sizing shape: %w", err)
	}
	s.attached = true
	p.visibleShapes = append(p.visibleShapes, s)
	p.tree = append(p.tree, s)
	return s, nil
}

// AcquireGradient returns an idle gradient, or a new one when none is idle,
// sized to the pool bounds and attached to the render tree.
func (p *Pool) AcquireGradient() (*Gradient, error) {
	var g *Gradient
	if len(p.idleGradients) > 0 {
		g = p.idleGradients[0]
		p.idleGradients = p.idleGradients[1:]
		g.reset()
	} else {
		g = newGradient()
		p.allocatedGradients++
	}

	if err := g.resize(p.width, p.height); err != nil {
		p.idleGradients = append(p.idleGradients, g)
		return nil, fmt.Errorf("layer: sizing gradient: %w", err)
	}
	g.attached = true
	p.visibleGradients = append(p.visibleGradients, g)
	p.tree = append(p.tree, g)
	return g, nil
}

// Reset moves every visible primitive to its idle list and detaches it from
// the render tree.
func (p *Pool) Reset() {
	for _, s := range p.visibleShapes {
		s.attached = false
	}
	p.idleShapes = append(p.idleShapes, p.visibleShapes...)
	p.visibleShapes = p.visibleShapes[:0]

	for _, g := range p.visibleGradients {
		g.attached = false
		g.setMask(nil)
	}
	p.idleGradients = append(p.idleGradients, p.visibleGradients...)
	p.visibleGradients = p.visibleGradients[:0]

	clear(p.tree)
	p.tree = p.tree[:0]
}

// Tree returns the attached primitives in attach order.
func (p *Pool) Tree() []Layer {
	out := make([]Layer, len(p.tree))
	copy(out, p.tree)
	return out
}

// Stats returns the free list sizes.
func (p *Pool) Stats() Stats {
	return Stats{
		IdleShapes:         len(p.idleShapes),
		VisibleShapes:      len(p.visibleShapes),
		IdleGradients:      len(p.idleGradients),
		VisibleGradients:   len(p.visibleGradients),
		AllocatedShapes:    p.allocatedShapes,
		AllocatedGradients: p.allocatedGradients,
	}
}
