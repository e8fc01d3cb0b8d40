package mesh

import "github.com/Faultbox/meshcore/pkg/math"

// BoundingBox returns the axis-aligned box around every vertex position.
// If the mesh has a Float1 PointSize attribute each vertex contributes a cube
// of half-width equal to its point size. Without a Float3 Position the box is
// empty.
func (m *Mesh) BoundingBox() math.Box3 {
	bbox := math.EmptyBox()
	if !m.desc.Has(Position, Float3) {
		return bbox
	}

	stride := int(m.desc.Stride)
	posOffset := int(m.desc.Attribute(Position).Offset)

	if m.desc.Has(PointSize, Float1) {
		sizeOffset := int(m.desc.Attribute(PointSize).Offset)
		for i := 0; i < m.vertexCount; i++ {
			base := i * stride
			center := m.vertices.Float3At(base + posOffset)
			half := math.Splat(m.vertices.Float32At(base + sizeOffset))
			bbox = bbox.ExtendBox(math.NewBox(center.Sub(half), center.Add(half)))
		}
		return bbox
	}

	for i := 0; i < m.vertexCount; i++ {
		bbox = bbox.Extend(m.vertices.Float3At(i*stride + posOffset))
	}
	return bbox
}

// Transform applies p = (p + translation) * scale to every vertex position,
// to the Position and NextPosition fields of every override sub-mesh, and
// multiplies point sizes by scale. It does nothing without a Float3
// Position attribute.
func (m *Mesh) Transform(translation math.Vec3, scale float32) {
	if !m.desc.Has(Position, Float3) {
		return
	}

	transformPositions(m.vertices, m.vertexCount, m.desc.Stride, m.desc.Attribute(Position), translation, scale)

	for _, g := range m.groups {
		o := g.Override
		if o == nil {
			continue
		}
		transformPositions(o.Vertices, o.VertexCount, o.Description.Stride, o.Description.Attribute(Position), translation, scale)
		transformPositions(o.Vertices, o.VertexCount, o.Description.Stride, o.Description.Attribute(NextPosition), translation, scale)
	}

	if m.desc.Has(PointSize, Float1) {
		stride := int(m.desc.Stride)
		off := int(m.desc.Attribute(PointSize).Offset)
		for i := 0; i < m.vertexCount; i++ {
			p := i*stride + off
			m.vertices.SetFloat32At(p, m.vertices.Float32At(p)*scale)
		}
	}
}

func transformPositions(buf VertexBuffer, count int, stride uint32, attr VertexAttribute, translation math.Vec3, scale float32) {
	if attr.Format != Float3 {
		return
	}
	for i := 0; i < count; i++ {
		p := i*int(stride) + int(attr.Offset)
		buf.SetFloat3At(p, buf.Float3At(p).Add(translation).Scale(scale))
	}
}
