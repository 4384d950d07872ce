package emberhttp

import "github.com/valyala/bytebufferpool"

// BufferPool is a convenience layer over bytebufferpool for callers who
// don't want to own their scratch buffers directly (e.g. short-lived CLI
// tools rather than the constrained long-running devices this package
// targets). It sits strictly above the allocation-free core: nothing in
// encoder.go, the body writers, or the response reader depends on it, so
// the data path stays allocation-free for callers who bring their own
// buffers (spec §2, grounded on the teacher's client/buffer.go
// SmallBufferPool/ByteSlicePool convenience wrappers).
type BufferPool struct {
	pool bytebufferpool.Pool
}

// Get returns a pooled buffer, resetting it to zero length.
func (p *BufferPool) Get() *bytebufferpool.ByteBuffer {
	return p.pool.Get()
}

// Put returns buf to the pool for reuse.
func (p *BufferPool) Put(buf *bytebufferpool.ByteBuffer) {
	p.pool.Put(buf)
}

// defaultBufferPool is shared by convenience constructors (e.g. a future
// high-level client helper) that want pooled scratch space without forcing
// every caller to thread one through explicitly.
var defaultBufferPool BufferPool

// AcquireBuffer borrows a buffer from the package-wide pool.
func AcquireBuffer() *bytebufferpool.ByteBuffer { return defaultBufferPool.Get() }

// ReleaseBuffer returns a buffer acquired with AcquireBuffer.
func ReleaseBuffer(buf *bytebufferpool.ByteBuffer) { defaultBufferPool.Put(buf) }
