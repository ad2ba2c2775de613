package transfer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQualifyingVariant means every rendition of the video exceeds the quality ceiling.
	ErrNoQualifyingVariant = errors.New("no variant within quality ceiling")
	// ErrTransferIO marks failures while streaming the body to disk.
	ErrTransferIO = errors.New("transfer failed")
)

// TransferError describes a failed read or write of the target file.
type TransferError struct {
	Op   string
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrTransferIO and the underlying cause to errors.Is.
func (e *TransferError) Unwrap() []error {
	return []error{ErrTransferIO, e.Err}
}
