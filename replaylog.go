// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

import (
	"github.com/valyala/bytebufferpool"
)

// replayLog is the rewind/replay state machine shared by BufferedReader and
// AsyncBufferedReader.
//
// States:
//   - live:      !armed || drained, and !stopped. Delivered bytes are appended.
//   - replaying: armed && !drained. Reads are served from the log.
//   - stopped:   nothing is appended anymore; the log is freed once the last
//     replay is drained.
type replayLog struct {
	bb  *bytebufferpool.ByteBuffer
	pos int // replay cursor into bb.B

	armed   bool // a Rewind happened
	drained bool // the current replay was fully delivered
	stopped bool // buffering is permanently disabled
}

func (l *replayLog) size() int {
	if l.bb == nil {
		return 0
	}
	return len(l.bb.B)
}

func (l *replayLog) replaying() bool { return l.armed && !l.drained }

// record appends bytes delivered by the wrapped reader.
func (l *replayLog) record(p []byte) {
	if l.stopped || len(p) == 0 {
		return
	}
	if l.bb == nil {
		l.bb = bytebufferpool.Get()
	}
	l.bb.B = append(l.bb.B, p...)
}

// serve copies the next replay bytes into p. Only valid while replaying and
// with len(p) > 0, so it always returns at least one byte.
func (l *replayLog) serve(p []byte) int {
	n := copy(p, l.bb.B[l.pos:])
	l.pos += n
	if l.pos == len(l.bb.B) {
		l.drained = true
		if l.stopped {
			l.free()
		}
	}
	return n
}

func (l *replayLog) free() {
	if l.bb != nil {
		bytebufferpool.Put(l.bb)
		l.bb = nil
	}
	l.pos = 0
}

func (l *replayLog) rewind() (int, error) {
	if l.stopped && l.drained {
		return 0, ErrBufferingStopped.at(OpRewind)
	}
	l.armed = true
	l.pos = 0
	n := l.size()
	l.drained = n == 0
	return n, nil
}

func (l *replayLog) stopAndRewind() (int, error) {
	n, err := l.rewind()
	l.stopped = true
	if l.drained {
		l.free()
	}
	return n, err
}

func (l *replayLog) stopAndDiscard() error {
	if l.replaying() {
		return ErrReplayPending.at(OpStopBuffering)
	}
	l.stopped = true
	l.drained = true
	l.free()
	return nil
}
