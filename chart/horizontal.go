package chart

// Horizontal is the segment y = Y for x in [X[0], X[1]], as a plotter.XYer.
type Horizontal struct {
	Y float64
	X [2]float64
}

func (Horizontal) Len() int { return 2 }

func (h Horizontal) XY(i int) (float64, float64) {
	return h.X[i], h.Y
}

// Vertical is the segment x = X for y in [Y[0], Y[1]].
type Vertical struct {
	X float64
	Y [2]float64
}

func (Vertical) Len() int { return 2 }

func (v Vertical) XY(i int) (float64, float64) {
	return v.X, v.Y[i]
}
