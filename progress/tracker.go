// Package progress renders transfer events on the terminal.
package progress

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/icon"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/transfer"
)

const indent = "    "

// Tracker accumulates the deltas of a single episode's transfer into a percentage.
type Tracker struct {
	out      io.Writer
	episode  *catalog.Episode
	headless bool
	bar      progress.Model

	downloaded int64
	total      int64
	percent    int
	started    bool
	done       bool
}

// Percent returns round(downloaded / total * 100), or 0 while the total is unknown.
func Percent(downloaded, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Min(100, math.Round(float64(downloaded)/float64(total)*100)))
}

// Accept implements transfer.Sink.
func (t *Tracker) Accept(e transfer.Event) {
	if t.done {
		return
	}

	if e.Skipped {
		t.downloaded, t.total, t.percent = e.Delta, e.Total, 100
		t.finish(fmt.Sprintf("%s Skipping episode %s: %s", icon.Get(icon.Skip), t.episode.ID, t.title()))
		return
	}

	t.downloaded += e.Delta
	t.total = e.Total
	percent := Percent(t.downloaded, t.total)
	changed := percent != t.percent || !t.started
	t.percent = percent

	complete := t.total >= 0 && t.downloaded >= t.total
	if t.headless {
		if !t.started {
			t.println(fmt.Sprintf("Downloading episode %s: %s", t.episode.ID, t.episode.Title))
		}
		t.started = true
		if complete {
			t.Finish()
		}
		return
	}

	t.started = true
	if changed {
		t.render()
	}
	if complete {
		t.Finish()
	}
}

// Finish ends the line of a successful transfer. Streams of unknown length never
// reach their total, so the caller reports success once the download returns.
func (t *Tracker) Finish() {
	if t.done {
		return
	}
	if t.headless {
		t.finish(fmt.Sprintf("Downloaded episode %s: %s", t.episode.ID, t.episode.Title))
		return
	}
	t.finish(fmt.Sprintf("%s Downloaded episode %s: %s", icon.Get(icon.Success), t.episode.ID, t.title()))
}

// Fail ends the line of an interrupted transfer.
func (t *Tracker) Fail(err error) {
	if t.done {
		return
	}
	t.finish(fmt.Sprintf("%s Failed episode %s: %s %s", icon.Get(icon.Fail), t.episode.ID, t.title(), style.Fg(color.Red)(err.Error())))
}

// Downloaded returns the accumulated byte count.
func (t *Tracker) Downloaded() int64 {
	return t.downloaded
}

// Done reports whether the transfer has ended.
func (t *Tracker) Done() bool {
	return t.done
}

func (t *Tracker) title() string {
	if t.headless {
		return t.episode.Title
	}
	return style.Fg(color.HiGreen)(t.episode.Title)
}

func (t *Tracker) render() {
	line := fmt.Sprintf("%s Downloading episode %s: %s %d%% %s",
		icon.Get(icon.Download),
		t.episode.ID,
		t.title(),
		t.percent,
		t.bar.ViewAs(float64(t.percent)/100),
	)
	_, _ = fmt.Fprint(t.out, "\r"+indent+strings.TrimSpace(line)+"\x1b[K")
}

func (t *Tracker) finish(line string) {
	t.done = true
	if t.headless {
		t.println(line)
		return
	}
	_, _ = fmt.Fprint(t.out, "\r"+indent+strings.TrimSpace(line)+"\x1b[K\n")
}

func (t *Tracker) println(line string) {
	_, _ = fmt.Fprintln(t.out, indent+strings.TrimSpace(line))
}
