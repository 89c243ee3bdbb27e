// internal/session/energy_test.go
package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEarnConvertsOverflowExactly(t *testing.T) {
	meter := NewEnergyMeter(1000)

	meter.Earn(800)
	assert.InDelta(t, 800, meter.Energy(), 1e-9)
	assert.Equal(t, 0, meter.Coins())

	// 800 + 2500 = 3300 = 3*1000 + 300
	granted := meter.Earn(2500)
	assert.Equal(t, 3, granted)
	assert.Equal(t, 3, meter.Coins())
	assert.InDelta(t, 300, meter.Energy(), 1e-9)
}

func TestEarnMultipleOverflowsInOneCall(t *testing.T) {
	meter := NewEnergyMeter(1000)

	granted := meter.Earn(3000)

	assert.Equal(t, 3, granted)
	assert.Equal(t, 3, meter.Coins())
	assert.InDelta(t, 0, meter.Energy(), 1e-9)
}

func TestEarnIgnoresNonPositiveAmounts(t *testing.T) {
	meter := NewEnergyMeter(1000)
	meter.Earn(400)

	assert.Equal(t, 0, meter.Earn(0))
	assert.Equal(t, 0, meter.Earn(-50))
	assert.InDelta(t, 400, meter.Energy(), 1e-9)
	assert.Equal(t, 0, meter.Coins())
}

func TestEnergyInvariantHoldsAcrossSequence(t *testing.T) {
	meter := NewEnergyMeter(1000)

	for _, amount := range []float64{10, 999.5, 0.25, 1500, 3, 2499.75, 1000} {
		meter.Earn(amount)
		assert.GreaterOrEqual(t, meter.Energy(), 0.0)
		assert.Less(t, meter.Energy(), meter.Max())
	}
}

func TestFractionalEnergyAccumulates(t *testing.T) {
	meter := NewEnergyMeter(10)

	meter.Earn(2.5)
	meter.Earn(2.5)
	meter.Earn(5)

	assert.Equal(t, 1, meter.Coins())
	assert.InDelta(t, 0, meter.Energy(), 1e-9)
}

func TestMeterDefaultsWhenMaxInvalid(t *testing.T) {
	meter := NewEnergyMeter(0)
	assert.InDelta(t, DefaultEnergyMax, meter.Max(), 1e-9)

	meter = NewEnergyMeter(-100)
	assert.InDelta(t, DefaultEnergyMax, meter.Max(), 1e-9)
}
