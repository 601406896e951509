package sqlsanitize

import (
	"bytes"
	"sync/atomic"
)

// scratchInitialCapacity is the starting capacity of each process-wide
// scratch buffer. bytes.Buffer.Reset() keeps the underlying array, so a
// buffer that has grown past this once stays at its high-water mark for
// the life of the process.
const scratchInitialCapacity = 1000

// scratchBuffer is a process-wide buffer with a single-holder claim flag.
// At most one caller owns it at a time; everyone else falls back to a
// private buffer sized for their own input.
type scratchBuffer struct {
	inUse atomic.Bool
	buf   bytes.Buffer
}

func newScratchBuffer() *scratchBuffer {
	sb := &scratchBuffer{}
	sb.buf.Grow(scratchInitialCapacity)
	return sb
}

// claim attempts to take ownership of sb. On success it returns sb's
// buffer, cleared and ready to use, and true. On failure — another caller
// already holds it — it returns nil, false and the caller must allocate
// its own buffer.
func (sb *scratchBuffer) claim() (*bytes.Buffer, bool) {
	if !sb.inUse.CompareAndSwap(false, true) {
		return nil, false
	}
	sb.buf.Reset()
	return &sb.buf, true
}

// release gives up ownership claimed by a prior successful claim. Must be
// called exactly once per successful claim, on every exit path.
func (sb *scratchBuffer) release() {
	sb.inUse.Store(false)
}

var (
	sanitizedScratch = newScratchBuffer()
	summaryScratch   = newScratchBuffer()
)

// acquireBuffer returns a buffer to accumulate into plus a release func to
// defer. If the shared scratch buffer is already claimed, it transparently
// falls back to a private buffer sized proportionally to hint.
func acquireBuffer(shared *scratchBuffer, hint int) (buf *bytes.Buffer, release func()) {
	if b, ok := shared.claim(); ok {
		return b, shared.release
	}
	b := &bytes.Buffer{}
	b.Grow(hint)
	return b, func() {}
}
