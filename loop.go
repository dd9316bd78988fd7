// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

// Scheduler decides when the completion of an adapted async operation runs.
type Scheduler interface {
	Post(f func())
}

// Inline runs every posted function immediately, so handlers fire before the
// scheduling call returns.
type Inline struct{}

func (Inline) Post(f func()) { f() }

// Loop is a single-threaded completion queue. Posted functions run in FIFO
// order when the owner calls RunOnce or Run; functions posted while the loop
// runs are queued behind the current ones.
//
// The zero value is ready to use. A Loop is not safe for concurrent use: it
// models the one event-loop thread that owns every chain it drives.
type Loop struct {
	queue []func()
	head  int
}

// Post queues f.
func (l *Loop) Post(f func()) { l.queue = append(l.queue, f) }

// Len returns the number of queued functions.
func (l *Loop) Len() int { return len(l.queue) - l.head }

// RunOnce runs the oldest queued function. It reports false if the queue
// was empty.
func (l *Loop) RunOnce() bool {
	if l.head == len(l.queue) {
		return false
	}
	f := l.queue[l.head]
	l.queue[l.head] = nil
	l.head++
	if l.head == len(l.queue) {
		l.queue = l.queue[:0]
		l.head = 0
	}
	f()
	return true
}

// Run runs queued functions until the queue is empty and returns how many ran.
func (l *Loop) Run() int {
	n := 0
	for l.RunOnce() {
		n++
	}
	return n
}
