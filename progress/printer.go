package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/transfer"
	"github.com/laradl/laradl/util"
)

const defaultBarWidth = 30

// Printer creates trackers for consecutive episodes and prints topic and series headers as the walk moves on.
type Printer struct {
	out      io.Writer
	headless bool
	barWidth int

	topic  *catalog.Topic
	series *catalog.Series
}

// Option configures a Printer.
type Option func(*Printer)

// WithOutput sets the writer the progress is printed to.
func WithOutput(out io.Writer) Option {
	return func(p *Printer) {
		p.out = out
	}
}

// WithHeadless prints plain lines without bars, colors or carriage returns.
func WithHeadless(headless bool) Option {
	return func(p *Printer) {
		p.headless = headless
	}
}

// NewPrinter creates a printer writing to stdout. Output that is not a terminal is always headless.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{
		out:      os.Stdout,
		headless: !util.IsTerminal(),
		barWidth: defaultBarWidth,
	}
	for _, opt := range opts {
		opt(p)
	}

	if width, _, err := util.TerminalSize(); err == nil && width/3 < p.barWidth {
		p.barWidth = max(10, width/3)
	}
	return p
}

// Sink returns the tracker for episode. It satisfies walker.SinkFactory.
func (p *Printer) Sink(episode *catalog.Episode) transfer.Sink {
	return p.Track(episode)
}

// Track prints the headers leading to episode and returns its tracker.
func (p *Printer) Track(episode *catalog.Episode) *Tracker {
	p.headers(episode)

	return &Tracker{
		out:      p.out,
		episode:  episode,
		headless: p.headless,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(p.barWidth), progress.WithoutPercentage()),
	}
}

func (p *Printer) headers(episode *catalog.Episode) {
	series := episode.Series
	topic := episode.Topic()

	if topic != nil && topic != p.topic {
		p.topic = topic
		_, _ = fmt.Fprintf(p.out, "\nTopic: %s\n", p.paint(color.Cyan, topic.Title))
	}
	if series != nil && series != p.series {
		p.series = series
		_, _ = fmt.Fprintf(p.out, "  Series: %s\n", p.paint(color.HiBlue, series.Title))
	}
}

func (p *Printer) paint(c lipgloss.Color, s string) string {
	if p.headless {
		return s
	}
	return style.Fg(c)(s)
}
