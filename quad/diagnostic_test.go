package quad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugRendersEachKind(t *testing.T) {
	assert.Contains(t, qNaNBits.Debug(), "qNaN")
	assert.Contains(t, sNaNBits.Debug(), "sNaN")
	assert.Contains(t, posInfBits.Debug(), "Inf")
	assert.Contains(t, zeroBits.Debug(), "Zero")
	assert.Contains(t, oneBits.Debug(), "Float128")
}

func TestLogRoundingAnomalyDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		logRoundingAnomaly("test-op", errors.New("boom"))
	})
}
