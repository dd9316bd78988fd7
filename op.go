// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

// Op identifies the step that raised an *Error.
//
// This is intentionally coarse-grained: it tells read-side from write-side
// failures and copy failures from buffering failures.
type Op uint8

const (
	OpNone Op = iota

	OpCopyRead
	OpCopyWrite

	OpAsyncRead
	OpAsyncWrite

	OpRewind
	OpStopBuffering
	OpBufferedRead

	OpTeeReaderRead
	OpTeeReaderSideWrite
	OpTeeWriterPrimaryWrite
	OpTeeWriterTeeWrite

	OpByteWriterWrite
)

func (op Op) String() string {
	switch op {
	case OpNone:
		return "None"
	case OpCopyRead:
		return "CopyRead"
	case OpCopyWrite:
		return "CopyWrite"
	case OpAsyncRead:
		return "AsyncRead"
	case OpAsyncWrite:
		return "AsyncWrite"
	case OpRewind:
		return "Rewind"
	case OpStopBuffering:
		return "StopBuffering"
	case OpBufferedRead:
		return "BufferedRead"
	case OpTeeReaderRead:
		return "TeeReaderRead"
	case OpTeeReaderSideWrite:
		return "TeeReaderSideWrite"
	case OpTeeWriterPrimaryWrite:
		return "TeeWriterPrimaryWrite"
	case OpTeeWriterTeeWrite:
		return "TeeWriterTeeWrite"
	case OpByteWriterWrite:
		return "ByteWriterWrite"
	default:
		return "Op(unknown)"
	}
}
