package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-physics/pkg/math"
)

func TestFingerprint(t *testing.T) {
	resolve := func(c Collider) uint64 {
		def, ok := c.ResolveFixture(math.V2(1, 1))
		require.True(t, ok)
		return Fingerprint(def)
	}

	base := resolve(NewBoxCollider(2, 1))
	assert.NotZero(t, base)
	assert.Equal(t, base, resolve(NewBoxCollider(2, 1)))

	assert.NotEqual(t, base, resolve(NewBoxCollider(1, 2)), "size")

	moved := NewBoxCollider(2, 1)
	moved.SetCenter(0, 0.5)
	assert.NotEqual(t, base, resolve(moved), "center")

	sensor := NewBoxCollider(2, 1)
	sensor.SetSensor(true)
	assert.NotEqual(t, base, resolve(sensor), "sensor flag")

	heavy := NewBoxCollider(2, 1).SetMaterial(Material{Density: 5})
	assert.NotEqual(t, base, resolve(heavy), "material")

	assert.NotEqual(t, resolve(NewCircleCollider(1)), resolve(NewCircleCollider(2)))
	assert.Zero(t, Fingerprint(nil))
}
