package physics

import (
	"encoding/binary"
	stdmath "math"

	"github.com/ByteArena/box2d"
	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the geometry and fixture properties of def. Two
// definitions with bit-identical shapes and settings share a fingerprint.
// A nil definition hashes to zero.
func Fingerprint(def *box2d.B2FixtureDef) uint64 {
	if def == nil {
		return 0
	}

	h := fingerprinter{d: xxhash.New()}
	switch s := def.Shape.(type) {
	case *box2d.B2PolygonShape:
		h.writeByte(s.GetType())
		h.writeUint(uint64(s.M_count))
		for i := 0; i < s.M_count; i++ {
			h.writeVec(s.M_vertices[i])
			h.writeVec(s.M_normals[i])
		}
		h.writeVec(s.M_centroid)
		h.writeFloat(s.GetRadius())
	case *box2d.B2CircleShape:
		h.writeByte(s.GetType())
		h.writeVec(s.M_p)
		h.writeFloat(s.GetRadius())
	case nil:
		h.writeByte(0xff)
	default:
		h.writeByte(s.GetType())
		h.writeFloat(s.GetRadius())
	}

	h.writeFloat(def.Friction)
	h.writeFloat(def.Restitution)
	h.writeFloat(def.Density)
	if def.IsSensor {
		h.writeByte(1)
	} else {
		h.writeByte(0)
	}
	h.writeUint(uint64(def.Filter.CategoryBits))
	h.writeUint(uint64(def.Filter.MaskBits))
	h.writeUint(uint64(uint16(def.Filter.GroupIndex)))

	return h.d.Sum64()
}

type fingerprinter struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (f *fingerprinter) writeByte(b uint8) {
	_, _ = f.d.Write([]byte{b})
}

func (f *fingerprinter) writeUint(v uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])
}

func (f *fingerprinter) writeFloat(v float64) {
	f.writeUint(stdmath.Float64bits(v))
}

func (f *fingerprinter) writeVec(v box2d.B2Vec2) {
	f.writeFloat(v.X)
	f.writeFloat(v.Y)
}
