package transfer

// Event reports progress of a single transfer.
type Event struct {
	// Skipped is set on the only event of a transfer whose target already holds the full file.
	Skipped bool
	// Delta is the number of bytes written since the previous event.
	Delta int64
	// Total is the expected file size, -1 when the server did not announce it.
	Total int64
	// FileName is the target file name including the extension.
	FileName string
	// FilePath is the full target path.
	FilePath string
}

// Sink receives the events of one transfer in order.
type Sink interface {
	Accept(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Accept calls f(e).
func (f SinkFunc) Accept(e Event) {
	f(e)
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})
