// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

import (
	"errors"
	"io"
	"syscall"
)

// Classify maps err to a Category.
//
// *Error values report their own category. Bare errno values are mapped by
// code (ENOSPC → NoSpace, EAGAIN → WouldBlock). io.ErrShortWrite is IO.
// Anything else non-nil is a generic IO failure; this includes io.EOF when a
// caller passes it in, since classification depends only on the value given.
func Classify(err error) Category {
	if err == nil {
		return CategoryNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC:
			return CategoryNoSpace
		case syscall.EAGAIN:
			return CategoryWouldBlock
		}
	}
	return CategoryIO
}

// IsShortWrite reports whether err is a short or zero write, including the
// standard io.ErrShortWrite.
func IsShortWrite(err error) bool { return errors.Is(err, io.ErrShortWrite) }

// IsNoSpace reports whether err means the destination ran out of capacity.
func IsNoSpace(err error) bool { return Classify(err) == CategoryNoSpace }

// IsProgrammingError reports whether err is a capability contract violation.
func IsProgrammingError(err error) bool { return Classify(err) == CategoryProgramming }

// IsWouldBlock reports whether err is a synchronous scheduling rejection.
func IsWouldBlock(err error) bool { return Classify(err) == CategoryWouldBlock }

// isEndOfStream reports whether a read result (n, err) marks end-of-stream.
func isEndOfStream(n int, err error) bool {
	return n == 0 && (err == nil || err == io.EOF)
}
