package scene

// Shape constructors for the demo world and for tests. All shapes are
// centered on the origin in local space so nodes place them with their
// transforms.

// NewPlane returns a flat rectangle on the y=0 plane, triangulated as a
// divisions x divisions grid. Width spans X, depth spans Z.
func NewPlane(width, depth float32, divisions int) *Geometry {
	if divisions < 1 {
		divisions = 1
	}

	side := divisions + 1
	positions := make([]float32, 0, side*side*3)
	for iz := 0; iz < side; iz++ {
		for ix := 0; ix < side; ix++ {
			x := -width/2 + width*float32(ix)/float32(divisions)
			z := -depth/2 + depth*float32(iz)/float32(divisions)
			positions = append(positions, x, 0, z)
		}
	}

	indices := make([]uint32, 0, divisions*divisions*6)
	for iz := 0; iz < divisions; iz++ {
		for ix := 0; ix < divisions; ix++ {
			i0 := uint32(iz*side + ix)
			i1 := i0 + 1
			i2 := i0 + uint32(side)
			i3 := i2 + 1
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}

	return &Geometry{Positions: positions, Indices: indices}
}

// NewBox returns an axis-aligned box of the given extents centered on
// the origin.
func NewBox(sx, sy, sz float32) *Geometry {
	hx, hy, hz := sx/2, sy/2, sz/2
	positions := []float32{
		-hx, -hy, -hz,
		hx, -hy, -hz,
		hx, hy, -hz,
		-hx, hy, -hz,
		-hx, -hy, hz,
		hx, -hy, hz,
		hx, hy, hz,
		-hx, hy, hz,
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
	return &Geometry{Positions: positions, Indices: indices}
}

// NewRamp returns a single inclined face rising from y=0 at -Z to the
// given height at +Z.
func NewRamp(width, height, depth float32) *Geometry {
	hw, hd := width/2, depth/2
	positions := []float32{
		-hw, 0, -hd,
		hw, 0, -hd,
		hw, height, hd,
		-hw, height, hd,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return &Geometry{Positions: positions, Indices: indices}
}
