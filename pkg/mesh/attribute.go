package mesh

import "fmt"

// Semantic is the logical role of a vertex attribute.
type Semantic int16

// The zero value is SemanticInvalid so that a zero VertexAttribute acts as
// the "absent" sentinel.
const (
	SemanticInvalid Semantic = iota
	Position
	Color0
	Color1
	Normal
	Tangent
	Texture0
	Texture1
	Texture2
	Texture3
	PointSize
	NextPosition
	ScaleFactor

	// SemanticCount is one past the largest valid semantic.
	SemanticCount
)

// String returns a human-readable semantic name.
func (s Semantic) String() string {
	switch s {
	case SemanticInvalid:
		return "Invalid"
	case Position:
		return "Position"
	case Color0:
		return "Color0"
	case Color1:
		return "Color1"
	case Normal:
		return "Normal"
	case Tangent:
		return "Tangent"
	case Texture0, Texture1, Texture2, Texture3:
		return fmt.Sprintf("Texture%d", s-Texture0)
	case PointSize:
		return "PointSize"
	case NextPosition:
		return "NextPosition"
	case ScaleFactor:
		return "ScaleFactor"
	default:
		return fmt.Sprintf("Unknown(%d)", int16(s))
	}
}

// Valid reports whether s names a real semantic.
func (s Semantic) Valid() bool {
	return s > SemanticInvalid && s < SemanticCount
}

// Format is the numeric storage format of a vertex attribute.
type Format int16

const (
	FormatInvalid Format = iota
	Float1
	Float2
	Float3
	Float4
	UByte4

	// FormatCount is one past the largest valid format.
	FormatCount
)

// String returns a human-readable format name.
func (f Format) String() string {
	switch f {
	case FormatInvalid:
		return "Invalid"
	case Float1:
		return "Float1"
	case Float2:
		return "Float2"
	case Float3:
		return "Float3"
	case Float4:
		return "Float4"
	case UByte4:
		return "UByte4"
	default:
		return fmt.Sprintf("Unknown(%d)", int16(f))
	}
}

// FormatSize returns the size in bytes of one value of format f, or 0 for an
// invalid format.
func FormatSize(f Format) uint32 {
	switch f {
	case Float1, UByte4:
		return 4
	case Float2:
		return 8
	case Float3:
		return 12
	case Float4:
		return 16
	default:
		return 0
	}
}

// VertexAttribute describes one field of a vertex record.
// The zero value means "no such attribute".
type VertexAttribute struct {
	Semantic Semantic
	Format   Format
	Offset   uint32 // Byte offset from the start of the vertex record
}

// Present reports whether a is a real attribute rather than the absent
// sentinel.
func (a VertexAttribute) Present() bool {
	return a.Semantic != SemanticInvalid && a.Format != FormatInvalid
}

// Size returns the byte size of the attribute's format.
func (a VertexAttribute) Size() uint32 {
	return FormatSize(a.Format)
}

// Equal reports whether a and b have the same semantic, format and offset.
func (a VertexAttribute) Equal(b VertexAttribute) bool {
	return a == b
}

// Less orders attributes by (semantic, format, offset).
func (a VertexAttribute) Less(b VertexAttribute) bool {
	if a.Semantic != b.Semantic {
		return a.Semantic < b.Semantic
	}
	if a.Format != b.Format {
		return a.Format < b.Format
	}
	return a.Offset < b.Offset
}

func (a VertexAttribute) String() string {
	return fmt.Sprintf("%s:%s@%d", a.Semantic, a.Format, a.Offset)
}
