package mesh

import "go.uber.org/zap"

// Scale factors written into the two copies of each line endpoint. A vertex
// shader extrudes each copy by its factor along the screen-space normal of
// the segment.
const (
	lineScaleNeg float32 = -0.5
	lineScalePos float32 = 0.5
)

// expandLines turns a line list or strip into an override sub-mesh of
// triangle quads. Every segment (a, b) produces four vertices
//
//	a|pos(b)|-0.5  a|pos(b)|+0.5  b|pos(a)|-0.5  b|pos(a)|+0.5
//
// where each vertex is the full original record followed by the position
// of the other endpoint (NextPosition) and a scale factor. The quad is drawn
// as triangles (0,1,2) and (2,3,0).
func (m *Mesh) expandLines(strip bool, indices []uint32) *PrimitiveGroup {
	pos := m.desc.Attribute(Position)
	if pos.Format != Float3 {
		m.logger().Warn("line expansion without Float3 position",
			zap.String("mesh", m.name),
			zap.Stringer("format", pos.Format))
	}
	posSize := FormatSize(pos.Format)
	posOffset := int(pos.Offset)

	srcStride := m.desc.Stride
	desc := AppendingAttributes(m.desc,
		VertexAttribute{Semantic: NextPosition, Format: pos.Format, Offset: srcStride},
		VertexAttribute{Semantic: ScaleFactor, Format: Float1, Offset: srcStride + posSize},
	)
	stride := int(desc.Stride)

	var lineCount int
	if strip {
		lineCount = max(len(indices)-1, 0)
	} else {
		lineCount = len(indices) / 2
	}

	data := NewVertexBuffer(4*lineCount, desc.Stride)
	newIndices := make([]uint32, 0, 6*lineCount)

	emit := func(dst int, self, other uint32, scale float32) {
		rec := data[dst : dst+stride]
		n := copy(rec, m.vertices.Record(int(self), srcStride))
		src := m.vertices.Record(int(other), srcStride)
		n += copy(rec[n:], src[posOffset:posOffset+int(posSize)])
		data.SetFloat32At(dst+n, scale)
	}

	for i := 0; i < lineCount; i++ {
		var this, next uint32
		if strip {
			this, next = indices[i], indices[i+1]
		} else {
			this, next = indices[2*i], indices[2*i+1]
		}

		base := 4 * i * stride
		emit(base, this, next, lineScaleNeg)
		emit(base+stride, this, next, lineScalePos)
		emit(base+2*stride, next, this, lineScaleNeg)
		emit(base+3*stride, next, this, lineScalePos)

		v := uint32(4 * i)
		newIndices = append(newIndices, v, v+1, v+2, v+2, v+3, v)
	}

	m.logger().Debug("expanded line group",
		zap.String("mesh", m.name),
		zap.Bool("strip", strip),
		zap.Int("lines", lineCount),
		zap.Int("vertices", 4*lineCount))

	return &PrimitiveGroup{
		Override: &Override{
			Vertices:    data,
			VertexCount: 4 * lineCount,
			Description: desc,
			Indices:     newIndices,
			Topology:    TriList,
		},
	}
}
