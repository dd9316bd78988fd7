// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

// BufferedReader wraps a Reader and logs every byte it delivers, so the
// consumer can Rewind and read the same bytes again without the wrapped
// reader supporting Seek.
//
// After a replay is fully read, reads fall through to the wrapped reader
// again and keep being logged until buffering is stopped. A later Rewind
// replays the whole log from its start.
//
// A BufferedReader is not safe for concurrent use.
type BufferedReader struct {
	r   Reader
	log replayLog
}

// NewBufferedReader returns a BufferedReader reading from r.
func NewBufferedReader(r Reader) *BufferedReader {
	return &BufferedReader{r: r}
}

// Read serves pending replay bytes first, then reads from the wrapped reader.
// A replay read never returns an error and never ends the stream; the
// wrapped reader's end-of-stream is reported once the replay is drained.
func (b *BufferedReader) Read(p []byte) (int, error) {
	if len(p) > 0 && b.log.replaying() {
		return b.log.serve(p), nil
	}
	n, err := b.r.Read(p)
	if n < 0 || n > len(p) {
		return 0, ErrOverRead.at(OpBufferedRead)
	}
	b.log.record(p[:n])
	return n, err
}

// Rewind arms a replay of everything logged so far and returns the number of
// bytes it will serve. It fails with ErrBufferingStopped once buffering was
// stopped and the last replay was drained.
func (b *BufferedReader) Rewind() (int, error) { return b.log.rewind() }

// StopBufferingAndRewind arms one last replay of everything logged so far and
// stops logging. The log is freed as soon as that replay is drained, after
// which Rewind fails.
func (b *BufferedReader) StopBufferingAndRewind() (int, error) { return b.log.stopAndRewind() }

// StopBufferingAndDiscard stops logging and frees the log now. It fails with
// ErrReplayPending, changing nothing, while a replay is armed and not yet
// fully read.
func (b *BufferedReader) StopBufferingAndDiscard() error { return b.log.stopAndDiscard() }

// Buffered returns the number of bytes currently held in the log.
func (b *BufferedReader) Buffered() int { return b.log.size() }
