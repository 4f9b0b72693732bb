package jsonxf

import (
	"fmt"
	"io"
)

// The printing helpers used by the Formatter do not return errors, because
// a failing output sink is an exceptional case and the only sensible
// outcome is to stop the run.  Instead they panic with a *PrinterError,
// which the public entry points capture with
//
//	func entryPoint(...) (err error) {
//	    defer CatchPrinterError(&err)
//	    doSomePrinting()
//	    return nil
//	}
//
// so callers see an ordinary error value.

// CatchPrinterError captures a panic caused by an error encountered while
// attempting to send output, storing it in *err.  Any other panic is
// re-raised.
func CatchPrinterError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrinterError)
		if ok {
			*err = perr
		} else {
			panic(r)
		}
	}
}

// A PrinterError contains an error that occurred while sending output to
// the sink.  It wraps the underlying error, so errors.Is can still match
// causes such as syscall.EPIPE.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}

// printer sends bytes to an io.Writer, panicking with a *PrinterError when
// a write fails.
type printer struct {
	w       io.Writer
	scratch [1]byte
}

func (p *printer) print(b []byte) {
	if len(b) == 0 {
		return
	}
	if _, err := p.w.Write(b); err != nil {
		panic(&PrinterError{Err: err})
	}
}

func (p *printer) printString(s string) {
	if s == "" {
		return
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		panic(&PrinterError{Err: err})
	}
}

func (p *printer) printByte(b byte) {
	p.scratch[0] = b
	if _, err := p.w.Write(p.scratch[:]); err != nil {
		panic(&PrinterError{Err: err})
	}
}
