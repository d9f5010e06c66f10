package model

import "fmt"

// Point3 is an integer position inside a box, in mm.
type Point3 struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns the component-wise sum of p and q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// Volume is an axis-aligned cuboid given by its minimum and maximum corners.
// A valid volume has Min <= Max on every axis. Zero-thickness volumes are
// allowed and are used for floor surfaces.
type Volume struct {
	Min Point3 `json:"min"`
	Max Point3 `json:"max"`
}

// NewVolume builds a volume from its corners and rejects inverted extents.
func NewVolume(minX, minY, minZ, maxX, maxY, maxZ int) (Volume, error) {
	v := Volume{
		Min: Point3{X: minX, Y: minY, Z: minZ},
		Max: Point3{X: maxX, Y: maxY, Z: maxZ},
	}
	if !v.Valid() {
		return Volume{}, &GeometryError{Min: v.Min, Max: v.Max}
	}
	return v, nil
}

// Sized returns a volume anchored at the origin with the given extents.
func Sized(x, y, z int) Volume {
	return Volume{Max: Point3{X: x, Y: y, Z: z}}
}

// Valid reports whether Min <= Max on every axis.
func (v Volume) Valid() bool {
	return v.Min.X <= v.Max.X && v.Min.Y <= v.Max.Y && v.Min.Z <= v.Max.Z
}

// Size returns the extent of the volume along each axis.
func (v Volume) Size() Point3 {
	return Point3{X: v.Max.X - v.Min.X, Y: v.Max.Y - v.Min.Y, Z: v.Max.Z - v.Min.Z}
}

// Cubic returns the enclosed volume in mm³.
func (v Volume) Cubic() int {
	s := v.Size()
	return s.X * s.Y * s.Z
}

// Translate shifts both corners by the offset.
func (v Volume) Translate(offset Point3) Volume {
	return Volume{Min: v.Min.Add(offset), Max: v.Max.Add(offset)}
}

// IsSubsetOf reports whether v lies entirely within other, boundaries included.
func (v Volume) IsSubsetOf(other Volume) bool {
	return v.Min.X >= other.Min.X && v.Min.Y >= other.Min.Y && v.Min.Z >= other.Min.Z &&
		v.Max.X <= other.Max.X && v.Max.Y <= other.Max.Y && v.Max.Z <= other.Max.Z
}

// IsMadeUpOf reports whether other lies entirely within v.
func (v Volume) IsMadeUpOf(other Volume) bool {
	return other.IsSubsetOf(v)
}

// Intersects reports whether the interiors of v and other overlap.
// Volumes that only share a face, edge or corner do not intersect.
func (v Volume) Intersects(other Volume) bool {
	return v.Min.X < other.Max.X && other.Min.X < v.Max.X &&
		v.Min.Y < other.Max.Y && other.Min.Y < v.Max.Y &&
		v.Min.Z < other.Max.Z && other.Min.Z < v.Max.Z
}

// String renders the volume as "[(minX, minY, minZ)(maxX, maxY, maxZ)]".
func (v Volume) String() string {
	return "[" + v.Min.String() + v.Max.String() + "]"
}
