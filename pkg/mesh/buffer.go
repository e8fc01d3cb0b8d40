package mesh

import (
	"encoding/binary"
	gomath "math"

	"github.com/Faultbox/meshcore/pkg/math"
)

// VertexBuffer is raw interleaved vertex storage. Multi-byte values are
// little-endian. All accessors are bounds checked by the slice and panic on
// out-of-range offsets.
type VertexBuffer []byte

// NewVertexBuffer allocates a zeroed buffer for count vertices of the given
// stride.
func NewVertexBuffer(count int, stride uint32) VertexBuffer {
	return make(VertexBuffer, count*int(stride))
}

// Float32At reads the float32 stored at byte offset off.
func (b VertexBuffer) Float32At(off int) float32 {
	return gomath.Float32frombits(binary.LittleEndian.Uint32(b[off : off+4]))
}

// SetFloat32At writes v at byte offset off.
func (b VertexBuffer) SetFloat32At(off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:off+4], gomath.Float32bits(v))
}

// Uint32At reads the raw 32-bit word at byte offset off.
func (b VertexBuffer) Uint32At(off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// SetUint32At writes the raw 32-bit word v at byte offset off.
func (b VertexBuffer) SetUint32At(off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// Float3At reads three consecutive float32 values starting at off.
func (b VertexBuffer) Float3At(off int) math.Vec3 {
	return math.Vec3{
		X: b.Float32At(off),
		Y: b.Float32At(off + 4),
		Z: b.Float32At(off + 8),
	}
}

// SetFloat3At writes v as three consecutive float32 values starting at off.
func (b VertexBuffer) SetFloat3At(off int, v math.Vec3) {
	b.SetFloat32At(off, v.X)
	b.SetFloat32At(off+4, v.Y)
	b.SetFloat32At(off+8, v.Z)
}

// Record returns the bytes of vertex i. The result aliases b.
func (b VertexBuffer) Record(i int, stride uint32) []byte {
	start := i * int(stride)
	return b[start : start+int(stride)]
}

// VertexCount returns how many whole records of the given stride fit in b.
func (b VertexBuffer) VertexCount(stride uint32) int {
	if stride == 0 {
		return 0
	}
	return len(b) / int(stride)
}

// sameStorage reports whether a and b share the same backing array start
// and length.
func sameStorage(a, b VertexBuffer) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
