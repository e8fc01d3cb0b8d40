package math

import "github.com/chewxy/math32"

// Box3 is an axis-aligned bounding box. The zero value is a degenerate box
// at the origin; use EmptyBox for a box that contains nothing.
type Box3 struct {
	Min Vec3
	Max Vec3
}

// EmptyBox returns a box with inverted infinite bounds, so the first Extend
// collapses it onto the extended point.
func EmptyBox() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: Splat(inf),
		Max: Splat(-inf),
	}
}

// NewBox creates a box from two corners, swapping components as needed.
func NewBox(a, b Vec3) Box3 {
	return Box3{Min: a.Min(b), Max: a.Max(b)}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend grows the box to contain p.
func (b Box3) Extend(p Vec3) Box3 {
	return Box3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// ExtendBox grows the box to contain other. Empty boxes are ignored.
func (b Box3) ExtendBox(other Box3) Box3 {
	if other.IsEmpty() {
		return b
	}
	return Box3{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Center returns the center point of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Radius returns the distance from center to corner (half-diagonal).
func (b Box3) Radius() float32 {
	return b.Size().Length() / 2
}
