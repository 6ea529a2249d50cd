// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// The renderer works in three coordinate spaces. Logical pixels are what
// callers draw in and scale with the display density. Physical pixels are
// what the rasterizer and the texture atlas work in. Texture coordinates
// are physical pixels normalized to [0, 1] against a texture's size.

// Logical-space shapes, measured in display-density independent pixels.
type (
	LogicalPoint = Point[float32]
	LogicalVec   = Vec[float32]
	LogicalSize  = Size[float32]
	LogicalRect  = Rect[float32]
	LogicalQuad  = Quad[float32]
)

// Physical-space shapes, measured in device pixels.
type (
	PhysicalPoint = Point[int32]
	PhysicalSize  = Size[int32]
	PhysicalRect  = Rect[int32]
)

// UVRect is a texture-space rectangle with coordinates in [0, 1].
type UVRect = Rect[float32]

// ToPhysicalPoint converts a logical point at the given pixels-per-point
// scale, rounding to the nearest device pixel.
func ToPhysicalPoint(p LogicalPoint, ppp float32) PhysicalPoint {
	return PhysicalPoint{
		X: int32(roundHalfUp(p.X * ppp)),
		Y: int32(roundHalfUp(p.Y * ppp)),
	}
}

// ToPhysicalRect converts a logical rectangle at the given
// pixels-per-point scale. The two corners round independently, so
// adjacent logical rectangles stay adjacent in device pixels.
func ToPhysicalRect(r LogicalRect, ppp float32) PhysicalRect {
	p0 := ToPhysicalPoint(r.Origin, ppp)
	p1 := ToPhysicalPoint(LogicalPoint{X: r.MaxX(), Y: r.MaxY()}, ppp)
	return PhysicalRect{
		Origin: p0,
		Size:   PhysicalSize{W: p1.X - p0.X, H: p1.Y - p0.Y},
	}
}

// ToLogicalRect converts a physical rectangle back to logical pixels.
func ToLogicalRect(r PhysicalRect, ppp float32) LogicalRect {
	return LogicalRect{
		Origin: LogicalPoint{X: float32(r.Origin.X) / ppp, Y: float32(r.Origin.Y) / ppp},
		Size:   LogicalSize{W: float32(r.Size.W) / ppp, H: float32(r.Size.H) / ppp},
	}
}

// NormalizeUV maps a physical rectangle inside a texture of the given
// size to normalized texture coordinates.
func NormalizeUV(r PhysicalRect, tex PhysicalSize) UVRect {
	w := float32(tex.W)
	h := float32(tex.H)
	return UVRect{
		Origin: LogicalPoint{X: float32(r.Origin.X) / w, Y: float32(r.Origin.Y) / h},
		Size:   LogicalSize{W: float32(r.Size.W) / w, H: float32(r.Size.H) / h},
	}
}

func roundHalfUp(v float32) float32 {
	if v >= 0 {
		return float32(int32(v + 0.5))
	}
	return -float32(int32(-v + 0.5))
}
