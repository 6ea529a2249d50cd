// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the small generic geometry vocabulary shared by
// the layout, layering and tessellation packages: points, vectors, sizes,
// rectangles and free-form quadrilaterals, parameterized over their scalar
// type so the same shapes serve logical pixels, physical pixels and
// normalized texture coordinates.
package geom

import "golang.org/x/exp/constraints"

// Scalar is the set of numeric types geometry may be expressed in.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point is a position in some coordinate space.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the point translated by v.
func (p Point[T]) Add(v Vec[T]) Point[T] {
	return Point[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point[T]) Sub(q Point[T]) Vec[T] {
	return Vec[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec is a displacement in some coordinate space.
type Vec[T Scalar] struct {
	X, Y T
}

// V is shorthand for Vec[T]{x, y}.
func V[T Scalar](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// Add returns the component-wise sum of v and w.
func (v Vec[T]) Add(w Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Neg returns the vector pointing the opposite way.
func (v Vec[T]) Neg() Vec[T] {
	return Vec[T]{X: -v.X, Y: -v.Y}
}

// Size is a width and height pair.
type Size[T Scalar] struct {
	W, H T
}

// Sz is shorthand for Size[T]{w, h}.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{W: w, H: h}
}

// IsEmpty reports whether the size has no area.
func (s Size[T]) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle described by its top-left corner
// and its size.
type Rect[T Scalar] struct {
	Origin Point[T]
	Size   Size[T]
}

// RectFromOriginSize builds a rectangle from a corner and a size.
func RectFromOriginSize[T Scalar](origin Point[T], size Size[T]) Rect[T] {
	return Rect[T]{Origin: origin, Size: size}
}

// RectFromXYWH builds a rectangle from scalar components.
func RectFromXYWH[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{Origin: Point[T]{X: x, Y: y}, Size: Size[T]{W: w, H: h}}
}

// MinX returns the left edge.
func (r Rect[T]) MinX() T { return r.Origin.X }

// MinY returns the top edge.
func (r Rect[T]) MinY() T { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect[T]) MaxX() T { return r.Origin.X + r.Size.W }

// MaxY returns the bottom edge.
func (r Rect[T]) MaxY() T { return r.Origin.Y + r.Size.H }

// IsEmpty reports whether the rectangle has no area.
func (r Rect[T]) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Translate returns the rectangle shifted by v.
func (r Rect[T]) Translate(v Vec[T]) Rect[T] {
	return Rect[T]{Origin: r.Origin.Add(v), Size: r.Size}
}

// Contains reports whether p lies inside the rectangle. Points on the
// left and top edges are inside, points on the right and bottom edges
// are not.
func (r Rect[T]) Contains(p Point[T]) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Intersect returns the overlap of r and o. The result is empty when
// the rectangles do not overlap.
func (r Rect[T]) Intersect(o Rect[T]) Rect[T] {
	x0 := max(r.MinX(), o.MinX())
	y0 := max(r.MinY(), o.MinY())
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect[T]{}
	}
	return RectFromXYWH(x0, y0, x1-x0, y1-y0)
}

// Quad is a free-form quadrilateral given by its four corners in
// clockwise order starting from the top-left. An axis-aligned rectangle
// is the special case where the corners line up.
type Quad[T Scalar] struct {
	TopLeft     Point[T]
	TopRight    Point[T]
	BottomRight Point[T]
	BottomLeft  Point[T]
}

// QuadFromRect returns the quadrilateral covering r.
func QuadFromRect[T Scalar](r Rect[T]) Quad[T] {
	return Quad[T]{
		TopLeft:     r.Origin,
		TopRight:    Point[T]{X: r.MaxX(), Y: r.MinY()},
		BottomRight: Point[T]{X: r.MaxX(), Y: r.MaxY()},
		BottomLeft:  Point[T]{X: r.MinX(), Y: r.MaxY()},
	}
}

// Translate returns the quadrilateral shifted by v.
func (q Quad[T]) Translate(v Vec[T]) Quad[T] {
	return Quad[T]{
		TopLeft:     q.TopLeft.Add(v),
		TopRight:    q.TopRight.Add(v),
		BottomRight: q.BottomRight.Add(v),
		BottomLeft:  q.BottomLeft.Add(v),
	}
}
