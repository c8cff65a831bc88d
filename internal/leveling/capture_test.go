package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/monstertamer/internal/dice"
)

func TestCalculateMinValueForCapture(t *testing.T) {
	tests := []struct {
		currentHP, maxHP int
		want             int
	}{
		{100, 100, 80},
		{90, 100, 80},
		{89, 100, 75},
		{75, 100, 75},
		{74, 100, 70},
		{50, 100, 70},
		{49, 100, 65},
		{25, 100, 65},
		{24, 100, 60},
		{0, 100, 60},
		{5, 0, 80},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateMinValueForCapture(tt.currentHP, tt.maxHP), "%d/%d", tt.currentHP, tt.maxHP)
	}
}

func TestCaptureDrawEqualToThresholdCaptures(t *testing.T) {
	r := CalculateMonsterCaptureResults(100, 100, dice.NewManualRoller(80))
	assert.Equal(t, 80, r.RequiredCaptureValue)
	assert.Equal(t, 80, r.ActualCaptureValue)
	assert.True(t, r.WasCaptured)

	r = CalculateMonsterCaptureResults(100, 100, dice.NewManualRoller(79))
	assert.False(t, r.WasCaptured)
}

func TestShakeCountBands(t *testing.T) {
	tests := []struct {
		name     string
		required int
		actual   int
		want     int
	}{
		{"near miss", 80, 75, 2},
		{"diff exactly 10", 80, 70, 2},
		{"diff 11", 80, 69, 1},
		{"diff exactly 30", 80, 50, 1},
		{"diff 31", 80, 49, 0},
		{"captured", 80, 85, 3},
		{"captured on threshold", 80, 80, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CaptureResult{
				RequiredCaptureValue: tt.required,
				ActualCaptureValue:   tt.actual,
				WasCaptured:          tt.actual >= tt.required,
			}
			assert.Equal(t, tt.want, ShakeCount(r))
		})
	}
}

func TestCaptureScenario(t *testing.T) {
	miss := CalculateMonsterCaptureResults(25, 25, dice.NewManualRoller(75))
	assert.False(t, miss.WasCaptured)
	assert.Equal(t, 2, ShakeCount(miss))

	hit := CalculateMonsterCaptureResults(25, 25, dice.NewManualRoller(85))
	assert.True(t, hit.WasCaptured)
	assert.Equal(t, 3, ShakeCount(hit))
}
