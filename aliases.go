// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package aiox provides blocking and completion-driven copy engines and
// replayable readers on top of Go's standard io interfaces.
//
// IDE note: aiox re-exports (aliases) the io interfaces it consumes so that
// users can stay in the "aiox" namespace while reading documentation.
package aiox

import (
	"io"
)

// Reader is implemented by types that can read bytes into p.
//
// Read must return the number of bytes read (0 <= n <= len(p)). aiox treats
// a read of zero bytes with a nil error or io.EOF as end-of-stream. Reporting
// n > len(p) breaks the contract and is surfaced as ErrOverRead, never as an
// ordinary I/O failure.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// Writer is implemented by types that can write bytes from p.
//
// A Writer may report fewer bytes than requested. The copy engines never
// retry such a write: they fail with ErrShortWrite (or ErrZeroWrite).
//
// Writer is an alias of io.Writer.
type Writer = io.Writer

// ReaderFrom is an optional optimization for Writers, honored by Copy.
//
// ReaderFrom is an alias of io.ReaderFrom.
type ReaderFrom = io.ReaderFrom

// WriterTo is an optional optimization for Readers, honored by Copy.
//
// WriterTo is an alias of io.WriterTo.
type WriterTo = io.WriterTo

var (
	// EOF is returned by Read when no more input is available.
	EOF = io.EOF

	// ErrUnexpectedEOF is returned by CopyN when the source ends before n bytes.
	ErrUnexpectedEOF = io.ErrUnexpectedEOF
)
