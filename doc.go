// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aiox

// Package aiox moves byte streams between blocking and completion-driven
// (callback) capabilities, and lets a consumer replay what it has already read
// without the source supporting Seek.
//
// Copy engines
//   - Copy / CopyBuffer / CopyN: blocking pumps with strict short-write and
//     over-read detection.
//   - CopyFromAsync, CopyToAsync, AsyncCopyN, AsyncCopy: size-limited copies in
//     which reads and writes strictly alternate and the Completion fires exactly
//     once, whether handlers run inline or later from a Loop.
//
// Replay
//   - BufferedReader / AsyncBufferedReader log what they deliver. Rewind
//     replays the log once; StopBufferingAndRewind guarantees one last faithful
//     replay and then frees the log; StopBufferingAndDiscard frees it now.
//
// Execution model: "async" means completion-on-callback, not parallelism.
// Nothing in this package starts goroutines or takes locks; a chain has at
// most one outstanding operation at a time.
