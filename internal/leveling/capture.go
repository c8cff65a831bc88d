package leveling

import "github.com/samdwyer/monstertamer/internal/dice"

// baseCaptureValue is the draw needed to catch a monster at (near) full health.
const baseCaptureValue = 80

// CaptureResult is the outcome of one capture roll.
type CaptureResult struct {
	RequiredCaptureValue int
	ActualCaptureValue   int
	WasCaptured          bool
}

// CalculateMinValueForCapture returns the draw needed to catch a monster.
// Lower health makes the capture easier.
func CalculateMinValueForCapture(currentHP, maxHP int) int {
	if maxHP <= 0 {
		return baseCaptureValue
	}
	ratio := float64(currentHP) / float64(maxHP)

	switch {
	case ratio < 0.25:
		return baseCaptureValue - 20
	case ratio < 0.5:
		return baseCaptureValue - 15
	case ratio < 0.75:
		return baseCaptureValue - 10
	case ratio < 0.9:
		return baseCaptureValue - 5
	default:
		return baseCaptureValue
	}
}

// CalculateMonsterCaptureResults draws once in [0,100]; the draw captures when
// it is at least the required value.
func CalculateMonsterCaptureResults(currentHP, maxHP int, roller dice.Roller) CaptureResult {
	required := CalculateMinValueForCapture(currentHP, maxHP)
	actual := roller.Between(0, 100)
	return CaptureResult{
		RequiredCaptureValue: required,
		ActualCaptureValue:   actual,
		WasCaptured:          actual >= required,
	}
}

// ShakeCount returns how many times the ball wobbles before the result is shown.
// Near misses (within 10) shake twice, misses within 30 once, and a capture always shakes three times.
func ShakeCount(r CaptureResult) int {
	if r.WasCaptured {
		return 3
	}
	diff := r.RequiredCaptureValue - r.ActualCaptureValue
	switch {
	case diff <= 10:
		return 2
	case diff <= 30:
		return 1
	default:
		return 0
	}
}
