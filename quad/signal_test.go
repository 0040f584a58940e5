package quad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalString(t *testing.T) {
	assert.Equal(t, "SignalClear", SignalClear.String())
	assert.Equal(t, "Overflow", SignalOverflow.String())
	combo := SignalOverflow | SignalInexact
	assert.Equal(t, "Overflow|Inexact", combo.String())
}

func TestSignalHas(t *testing.T) {
	s := SignalOverflow | SignalInexact
	assert.True(t, s.Has(SignalOverflow))
	assert.True(t, s.Has(SignalOverflow|SignalInexact))
	assert.False(t, s.Has(SignalDivisionByZero))
}

func TestRoundingString(t *testing.T) {
	assert.Equal(t, "RoundTiesToEven", RoundTiesToEven.String())
	assert.Equal(t, "RoundTowardZero", RoundTowardZero.String())
}

func TestRoundDecision(t *testing.T) {
	assert.True(t, roundDecision(RoundTiesToEven, false, 0, true))
	assert.False(t, roundDecision(RoundTiesToEven, false, 0, false))
	assert.True(t, roundDecision(RoundTiesToAway, false, 0, false))
	assert.False(t, roundDecision(RoundTowardZero, false, 1, false))
	assert.True(t, roundDecision(RoundTowardPositive, false, -1, false))
	assert.False(t, roundDecision(RoundTowardPositive, true, -1, false))
}
