package tagging

// XYZ is a point in the model's 3D coordinate space, in host units.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// Add returns the component-wise sum of two points
func (p XYZ) Add(q XYZ) XYZ {
	return XYZ{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Scale returns the point scaled by the given factor
func (p XYZ) Scale(f float64) XYZ {
	return XYZ{X: p.X * f, Y: p.Y * f, Z: p.Z * f}
}

// BoundingBox is an element's axis-aligned extent.
type BoundingBox struct {
	Min XYZ
	Max XYZ
}

// Center returns the midpoint of the box, the point a tag is placed at.
func (b BoundingBox) Center() XYZ {
	return b.Min.Add(b.Max.Add(b.Min.Scale(-1)).Scale(0.5))
}
