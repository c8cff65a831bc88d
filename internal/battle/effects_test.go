package battle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/samdwyer/monstertamer/internal/anim"
	"github.com/samdwyer/monstertamer/internal/battle/mocks"
	"github.com/samdwyer/monstertamer/internal/entity"
)

func TestBellPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	beeper := mocks.NewMockBeeper(ctrl)
	beeper.EXPECT().Beep().Times(2)

	p := NewBellPlayer(beeper, false)
	p.PlaySoundEffect("FIRE")
	p.PlaySoundEffect("")
	p.PlaySoundEffect("HIT")

	muted := NewBellPlayer(beeper, true)
	muted.PlaySoundEffect("FIRE")
}

func TestFlashAnimatorFlashesTarget(t *testing.T) {
	tl := anim.NewTimeline()
	a := NewFlashAnimator(tl)

	done := false
	a.PlayAttack("SLASH", entity.SidePlayer, false, func() { done = true })

	name, ok := a.Flashing(entity.SidePlayer)
	assert.True(t, ok)
	assert.Equal(t, "SLASH", name)
	_, ok = a.Flashing(entity.SideEnemy)
	assert.False(t, ok)
	assert.False(t, done)

	tl.Update(flashDuration + time.Millisecond)
	assert.True(t, done)
	_, ok = a.Flashing(entity.SidePlayer)
	assert.False(t, ok)
}

func TestFlashAnimatorSkip(t *testing.T) {
	tl := anim.NewTimeline()
	a := NewFlashAnimator(tl)

	done := false
	a.PlayAttack("FIRE_SPIN", entity.SideEnemy, true, func() { done = true })

	assert.True(t, done)
	assert.Equal(t, 0, tl.Pending())
	_, ok := a.Flashing(entity.SideEnemy)
	assert.False(t, ok)
}
