package battle

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/menu"
	"github.com/samdwyer/monstertamer/internal/ui"
)

const (
	paneHeight  = 6
	panelWidth  = 30
	panelHeight = 5
	barWidth    = 20
	spriteW     = 7
	spriteH     = 3
)

var (
	styleFlash   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBall    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCurtain = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
)

// Draw implements scene.Scene.
func (b *Battle) Draw(r *ui.Renderer) {
	w, h := r.Size()
	paneY := h - paneHeight

	enemyX, enemyY := w-spriteW-6, 2
	playerX, playerY := 6, paneY-spriteH-2

	b.drawPanel(r, b.enemy, 1, 1)
	b.drawPanel(r, b.player, w-panelWidth-1, paneY-panelHeight-1)
	b.drawMonster(r, b.enemy, enemyX, enemyY)
	b.drawMonster(r, b.player, playerX, playerY)

	if b.ball.Visible() {
		p := b.ball.Progress()
		x := playerX + int(math.Round(float64(enemyX-playerX)*p)) + b.ball.Tilt() + spriteW/2
		y := playerY + int(math.Round(float64(enemyY-playerY)*p)) + spriteH
		r.Text(x, y, "o", styleBall)
	}

	b.drawMenu(r, 0, paneY, w)

	if b.curtain > 0 {
		rows := int(math.Round(b.curtain * float64(h)))
		r.Fill(0, 0, w, rows, ' ', styleCurtain)
	}
}

func (b *Battle) drawPanel(r *ui.Renderer, bm *entity.BattleMonster, x, y int) {
	v := bm.Visual()
	if !v.HealthBarVisible {
		return
	}

	border := ui.StyleBorder
	if name, ok := b.flashing(bm.Side()); ok {
		border = styleFlash
		r.Text(x+2, y, " "+name+" ", styleFlash)
	}
	r.Box(x, y, panelWidth, panelHeight, border)
	r.Text(x+2, y+1, fmt.Sprintf("%-14s Lv%d", bm.GetName(), bm.GetLevel()), ui.StyleText)
	r.Text(x+2, y+2, "HP", ui.StyleDim)
	r.Bar(x+5, y+2, barWidth, v.HealthBar, ui.HealthStyle(v.HealthBar))

	if bm.Side() == entity.SidePlayer {
		r.Text(x+5, y+3, fmt.Sprintf("%d/%d", bm.GetHP(), bm.GetMaxHP()), ui.StyleText)
		r.Bar(x+14, y+3, barWidth-9, v.ExpBar, ui.StyleExp)
	}
}

func (b *Battle) drawMonster(r *ui.Renderer, bm *entity.BattleMonster, x, y int) {
	v := bm.Visual()
	if !v.Visible || v.Alpha < 0.5 {
		return
	}

	style := ui.StyleText
	if species := b.registry.Species(bm.Record().MonsterID); species != nil {
		style = tcell.StyleDefault.Foreground(species.TCellColor())
	}
	x += v.OffsetX
	y += v.OffsetY
	r.Fill(x, y, spriteW, spriteH, '▒', style)

	initial := []rune(bm.GetName())
	if len(initial) > 0 {
		r.Text(x+spriteW/2, y+spriteH/2, string(initial[0]), style.Reverse(true))
	}
}

func (b *Battle) drawMenu(r *ui.Renderer, x, y, w int) {
	v := b.menu.View()
	r.Box(x, y, w, paneHeight, ui.StyleBorder)

	if v.MovesVisible {
		b.drawGrid(r, x+2, y+1, v.MoveLabels[:], v.MoveCursor)
		return
	}

	text := v.Text
	if v.Waiting {
		text += " ▼"
	}
	r.Text(x+2, y+1, text, ui.StyleText)

	if v.MainVisible {
		labels := []string{
			menu.OptionFight.String(),
			menu.OptionSwitch.String(),
			menu.OptionItem.String(),
			menu.OptionFlee.String(),
		}
		b.drawGrid(r, x+w-30, y+2, labels, int(v.MainCursor))
	}
}

// drawGrid lays labels out two to a row.
func (b *Battle) drawGrid(r *ui.Renderer, x, y int, labels []string, cursor int) {
	for i, label := range labels {
		col, row := i%2, i/2
		style := ui.StyleText
		prefix := "  "
		if i == cursor {
			style = ui.StyleCursor
			prefix = "> "
		}
		r.Text(x+col*14, y+row*2, prefix+label, style)
	}
}

func (b *Battle) flashing(side entity.Side) (string, bool) {
	flash, ok := b.animator.(*FlashAnimator)
	if !ok {
		return "", false
	}
	return flash.Flashing(side)
}
