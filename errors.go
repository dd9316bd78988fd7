// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

import (
	"io"
	"syscall"
)

// Category groups errors the way platform I/O error conditions are grouped,
// so callers can branch on the kind of failure rather than on message text.
type Category uint8

const (
	// CategoryNone is reported by Classify for a nil error.
	CategoryNone Category = iota
	// CategoryIO is a generic I/O failure (EIO): short or zero writes,
	// failed reads, buffering state errors.
	CategoryIO
	// CategoryNoSpace means the destination ran out of capacity (ENOSPC).
	CategoryNoSpace
	// CategoryProgramming is a broken capability contract, e.g. a Read that
	// reports more bytes than the window it was given. It is a bug in the
	// reader, never a condition to retry.
	CategoryProgramming
	// CategoryWouldBlock means an async operation could not be scheduled now
	// (EAGAIN). The handler of that call never fires.
	CategoryWouldBlock
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryIO:
		return "IO"
	case CategoryNoSpace:
		return "NoSpace"
	case CategoryProgramming:
		return "Programming"
	case CategoryWouldBlock:
		return "WouldBlock"
	default:
		return "Category(unknown)"
	}
}

// Error is the {category, code, message} error value raised by aiox itself.
//
// Errors coming from the wrapped readers and writers are passed through
// unchanged; only conditions detected by aiox are reported as *Error.
//
// Two *Error values match under errors.Is when their category, code and
// message agree, so a sentinel stamped with a different Op still matches the
// package-level sentinel. An *Error also matches its syscall.Errno code.
type Error struct {
	Category Category
	Code     syscall.Errno
	Op       Op
	Msg      string
	Err      error // optional underlying cause
}

func (e *Error) Error() string {
	s := "aiox: "
	if e.Op != OpNone {
		s += e.Op.String() + ": "
	}
	s += e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *Error:
		return e.Category == t.Category && e.Code == t.Code && e.Msg == t.Msg
	case syscall.Errno:
		return e.Code == t
	}
	return false
}

// at returns a copy of e attributed to op.
func (e *Error) at(op Op) *Error {
	c := *e
	c.Op = op
	return &c
}

var (
	// ErrShortWrite means a write accepted a different number of bytes than
	// was requested. It also matches io.ErrShortWrite.
	ErrShortWrite = &Error{Category: CategoryIO, Code: syscall.EIO, Msg: "short write when copying data", Err: io.ErrShortWrite}

	// ErrZeroWrite means a write accepted nothing while bytes were pending.
	// It also matches io.ErrShortWrite.
	ErrZeroWrite = &Error{Category: CategoryIO, Code: syscall.EIO, Msg: "zero write when copying data", Err: io.ErrShortWrite}

	// ErrOverRead means a reader reported more bytes than the window it was
	// handed. This is a bug in the reader.
	ErrOverRead = &Error{Category: CategoryProgramming, Code: syscall.EINVAL, Msg: "read returned more bytes than requested"}

	// ErrNoSpace means the destination has no capacity left.
	ErrNoSpace = &Error{Category: CategoryNoSpace, Code: syscall.ENOSPC, Msg: "no space left"}

	// ErrBufferingStopped is returned by Rewind once buffering was stopped
	// and the last replay has been fully delivered.
	ErrBufferingStopped = &Error{Category: CategoryIO, Code: syscall.EIO, Msg: "buffering was stopped, cannot rewind anymore"}

	// ErrReplayPending is returned by StopBufferingAndDiscard while a replay
	// is armed and not yet fully read.
	ErrReplayPending = &Error{Category: CategoryIO, Code: syscall.EIO, Msg: "cannot stop buffering, pending rewind read"}

	// ErrWouldBlock means an async operation cannot be scheduled right now,
	// typically because the capability already has one outstanding.
	// Linux analogy: EAGAIN. The handler of the rejected call never fires.
	ErrWouldBlock = &Error{Category: CategoryWouldBlock, Code: syscall.EAGAIN, Msg: "would block"}
)
