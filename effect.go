package vecdev

// PathEffect rewrites geometry before it is drawn. A device applies the
// effect of a paint exactly once per draw call and then draws the result
// with an effect-free copy of the paint.
//
// Apply must not modify src.
type PathEffect interface {
	Apply(src *Path) *Path
}

// PathEffectFunc adapts an ordinary function to PathEffect.
type PathEffectFunc func(src *Path) *Path

// Apply implements PathEffect.
func (f PathEffectFunc) Apply(src *Path) *Path { return f(src) }

// MatrixEffect maps every point of the path through M.
type MatrixEffect struct {
	M Matrix
}

// Apply implements PathEffect.
func (e MatrixEffect) Apply(src *Path) *Path {
	return src.Transform(e.M)
}

// ComposeEffect applies Inner first and then Outer.
type ComposeEffect struct {
	Outer, Inner PathEffect
}

// Apply implements PathEffect.
func (e ComposeEffect) Apply(src *Path) *Path {
	p := src
	if e.Inner != nil {
		p = e.Inner.Apply(p)
	}
	if e.Outer != nil {
		p = e.Outer.Apply(p)
	}
	return p
}
