// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

// AsyncBufferedReader is the completion-driven variant of BufferedReader.
// Given the same input and call sequence it delivers the same bytes.
//
// Replay reads complete inline: the handler runs before AsyncRead returns.
// Live reads are forwarded to the wrapped reader with a handler that logs
// the delivered bytes just before calling the caller's handler. Whether
// logging happens is decided when the read completes, so a stop issued while
// a read is outstanding already applies to that read.
//
// An AsyncBufferedReader is not safe for concurrent use.
type AsyncBufferedReader struct {
	r   AsyncReader
	log replayLog
}

// NewAsyncBufferedReader returns an AsyncBufferedReader reading from r.
func NewAsyncBufferedReader(r AsyncReader) *AsyncBufferedReader {
	return &AsyncBufferedReader{r: r}
}

// AsyncRead serves pending replay bytes first, completing inline with a nil
// error, and otherwise schedules a read on the wrapped reader. As with
// BufferedReader.Read, the wrapped reader's end-of-stream is reported only
// once the replay is drained.
func (b *AsyncBufferedReader) AsyncRead(p []byte, h Handler) error {
	if len(p) > 0 && b.log.replaying() {
		h(b.log.serve(p), nil)
		return nil
	}
	return b.r.AsyncRead(p, func(n int, err error) {
		if n < 0 || n > len(p) {
			h(0, ErrOverRead.at(OpBufferedRead))
			return
		}
		b.log.record(p[:n])
		h(n, err)
	})
}

// Rewind behaves like BufferedReader.Rewind.
func (b *AsyncBufferedReader) Rewind() (int, error) { return b.log.rewind() }

// StopBufferingAndRewind behaves like BufferedReader.StopBufferingAndRewind.
func (b *AsyncBufferedReader) StopBufferingAndRewind() (int, error) { return b.log.stopAndRewind() }

// StopBufferingAndDiscard behaves like BufferedReader.StopBufferingAndDiscard.
func (b *AsyncBufferedReader) StopBufferingAndDiscard() error { return b.log.stopAndDiscard() }

// Buffered returns the number of bytes currently held in the log.
func (b *AsyncBufferedReader) Buffered() int { return b.log.size() }
