package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// pickMaxDistance is the initial closest-hit distance. A pick succeeds only
// if some triangle beats it.
const pickMaxDistance = 1.0e30

// PickResult identifies the closest primitive hit by a ray.
type PickResult struct {
	Group          *PrimitiveGroup
	GroupIndex     int
	PrimitiveIndex int
	Distance       float64 // Ray parameter t of the hit
}

// Pick intersects the ray origin + t*direction (t > 0) with every triangle
// group of the mesh and returns the closest hit. Line, point and sprite
// groups are ignored, as are override sub-meshes. The mesh must have a
// Float3 Position attribute; otherwise Pick always misses.
//
// Triangle strips are walked without alternating winding, so odd triangles
// of a strip are tested with a flipped normal. Neither the hit decision nor
// the distance depends on that sign.
func (m *Mesh) Pick(origin, direction mgl64.Vec3) (PickResult, bool) {
	var result PickResult

	if !m.desc.Has(Position, Float3) {
		m.logger().Debug("pick skipped: no Float3 position", zap.String("mesh", m.name))
		return result, false
	}

	posOffset := int(m.desc.Attribute(Position).Offset)
	stride := int(m.desc.Stride)
	position := func(i uint32) mgl64.Vec3 {
		return m.vertices.Float3At(int(i)*stride + posOffset).Vec64()
	}

	closest := pickMaxDistance
	for gi, g := range m.groups {
		n := len(g.Indices)
		if !g.Topology.IsTriangle() || n < 3 || (g.Topology == TriList && n%3 != 0) {
			continue
		}

		forEachTriangle(g.Topology, g.Indices, func(prim int, i0, i1, i2 uint32) {
			t, ok := intersectTriangle(origin, direction, position(i0), position(i1), position(i2), closest)
			if !ok {
				return
			}
			closest = t
			result = PickResult{
				Group:          g,
				GroupIndex:     gi,
				PrimitiveIndex: prim,
				Distance:       t,
			}
		})
	}

	return result, closest != pickMaxDistance
}

// PickDistance is Pick without the group and primitive identity.
func (m *Mesh) PickDistance(origin, direction mgl64.Vec3) (float64, bool) {
	result, ok := m.Pick(origin, direction)
	if !ok {
		return 0, false
	}
	return result.Distance, true
}

// forEachTriangle walks the triangles of a triangle-topology index list in
// order, passing the primitive index and the three vertex indices.
func forEachTriangle(t Topology, indices []uint32, fn func(prim int, i0, i1, i2 uint32)) {
	n := len(indices)
	if n < 3 {
		return
	}

	switch t {
	case TriList:
		for i := 0; i+2 < n; i += 3 {
			fn(i/3, indices[i], indices[i+1], indices[i+2])
		}
	case TriStrip:
		// TODO: swap i0 and i1 on odd triangles if picking ever reports
		// the hit normal.
		for i := 2; i < n; i++ {
			fn(i-2, indices[i-2], indices[i-1], indices[i])
		}
	case TriFan:
		for i := 2; i < n; i++ {
			fn(i-2, indices[0], indices[i-1], indices[i])
		}
	}
}

// intersectTriangle returns the ray parameter of the intersection of the
// ray with triangle (v0, v1, v2), if it lies in (0, limit).
func intersectTriangle(origin, direction, v0, v1, v2 mgl64.Vec3, limit float64) (float64, bool) {
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)
	n := e0.Cross(e1)

	// A ray lying in the triangle's plane counts as a miss.
	c := n.Dot(direction)
	if c == 0 {
		return 0, false
	}

	t := n.Dot(v0.Sub(origin)) / c
	if t <= 0 || t >= limit {
		return 0, false
	}

	m00 := e0.Dot(e0)
	m01 := e0.Dot(e1)
	m10 := e1.Dot(e0)
	m11 := e1.Dot(e1)
	det := m00*m11 - m01*m10
	if det == 0 {
		return 0, false
	}

	q := origin.Add(direction.Mul(t)).Sub(v0)
	q0 := e0.Dot(q)
	q1 := e1.Dot(q)
	d := 1.0 / det
	s0 := (m11*q0 - m01*q1) * d
	s1 := (m00*q1 - m10*q0) * d
	if s0 >= 0 && s1 >= 0 && s0+s1 <= 1 {
		return t, true
	}
	return 0, false
}
