package force

import "github.com/san-kum/kinetic/internal/vector"

// Anchored provides an intrinsic anchor point for forces whose direction and
// magnitude are a function of the displacement between the object and that
// point. Concrete forces embed it rather than inherit from it.
type Anchored struct {
	anchor vector.Vector
}

// AnchorPoint returns a copy of the anchor point.
func (a *Anchored) AnchorPoint() *vector.Vector {
	return a.anchor.Clone()
}

// SetAnchorPoint sets the anchor point. All displacements are calculated
// relative to this point.
func (a *Anchored) SetAnchorPoint(p *vector.Vector) {
	a.anchor.Set(p)
}

// Displacement sets out to x − anchor and returns it.
func (a *Anchored) Displacement(x, out *vector.Vector) *vector.Vector {
	return out.SubOf(x, &a.anchor)
}
