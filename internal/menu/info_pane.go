package menu

import (
	"time"

	"github.com/samdwyer/monstertamer/internal/anim"
	"github.com/samdwyer/monstertamer/internal/input"
)

// infoPane is the text box under the battlefield. It reveals one line at a
// time and, while it owns input, decides what OK and CANCEL mean.
type infoPane struct {
	tl    *anim.Timeline
	delay time.Duration
	skip  bool

	queue    []string
	callback func()

	line      []rune
	revealed  int
	revealing bool
	waiting   bool
	locked    bool
	timer     *anim.Timer

	history     []string
	historySize int
}

func newInfoPane(tl *anim.Timeline, delay time.Duration, skip bool, historySize int) *infoPane {
	return &infoPane{
		tl:          tl,
		delay:       delay,
		skip:        skip,
		historySize: historySize,
	}
}

func (p *infoPane) queueMessages(messages []string, callback func()) {
	p.release()
	if p.skip || len(messages) == 0 {
		for _, msg := range messages {
			p.record(msg)
		}
		if len(messages) > 0 {
			p.setStatic(messages[len(messages)-1])
		}
		if callback != nil {
			callback()
		}
		return
	}

	p.locked = true
	p.queue = append([]string(nil), messages...)
	p.callback = callback
	p.next()
}

func (p *infoPane) showMessage(message string, callback func()) {
	p.release()
	finish := func() {
		p.locked = false
		if callback != nil {
			callback()
		}
	}
	if p.skip {
		p.record(message)
		p.setStatic(message)
		finish()
		return
	}
	p.locked = true
	p.reveal(message, finish)
}

// next shows the following queued line, or hands control back once the queue is empty.
func (p *infoPane) next() {
	if len(p.queue) == 0 {
		p.waiting = false
		p.locked = false
		cb := p.callback
		p.callback = nil
		if cb != nil {
			cb()
		}
		return
	}

	msg := p.queue[0]
	p.queue = p.queue[1:]
	p.reveal(msg, func() { p.waiting = true })
}

func (p *infoPane) reveal(message string, done func()) {
	p.record(message)
	p.line = []rune(message)
	p.revealed = 0
	p.revealing = true

	if p.delay <= 0 || len(p.line) == 0 {
		p.revealed = len(p.line)
		p.revealing = false
		done()
		return
	}

	var tick func()
	tick = func() {
		p.revealed++
		if p.revealed >= len(p.line) {
			p.revealing = false
			p.timer = nil
			done()
			return
		}
		p.timer = p.tl.After(p.delay, tick)
	}
	p.timer = p.tl.After(p.delay, tick)
}

// handle reports whether the pane consumed the action.
func (p *infoPane) handle(action input.Action) bool {
	if !p.locked {
		return false
	}
	if p.revealing {
		return true
	}
	if p.waiting && (action == input.ActionOK || action == input.ActionCancel) {
		p.waiting = false
		p.next()
	}
	return true
}

func (p *infoPane) setStatic(text string) {
	p.line = []rune(text)
	p.revealed = len(p.line)
	p.revealing = false
}

// release drops any queued or revealing text without running its callback.
func (p *infoPane) release() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.queue = nil
	p.callback = nil
	p.revealing = false
	p.waiting = false
	p.locked = false
}

func (p *infoPane) text() string {
	return string(p.line[:p.revealed])
}

func (p *infoPane) record(line string) {
	p.history = append(p.history, line)
	if over := len(p.history) - p.historySize; over > 0 {
		p.history = append([]string(nil), p.history[over:]...)
	}
}

func (p *infoPane) historyLines() []string {
	return append([]string(nil), p.history...)
}
