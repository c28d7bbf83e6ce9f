package generator

import (
	"bytes"
	"sync"
)

// Tiered buffer sizes for rendered documents
const (
	smallBufferSize  = 4 * 1024  // 4KB for documents with few embedded defs
	mediumBufferSize = 16 * 1024 // 16KB for mid-sized closures
	largeBufferSize  = 64 * 1024 // 64KB for large closures
)

var smallBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, smallBufferSize))
	},
}

var mediumBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, mediumBufferSize))
	},
}

var largeBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, largeBufferSize))
	},
}

// getDocumentBuffer returns a buffer sized for the embedded definition count.
func getDocumentBuffer(defCount int) *bytes.Buffer {
	var buf *bytes.Buffer
	switch {
	case defCount < 4:
		buf = smallBufferPool.Get().(*bytes.Buffer)
	case defCount < 16:
		buf = mediumBufferPool.Get().(*bytes.Buffer)
	default:
		buf = largeBufferPool.Get().(*bytes.Buffer)
	}
	buf.Reset()
	return buf
}

// putDocumentBuffer returns a buffer to the appropriate pool.
func putDocumentBuffer(buf *bytes.Buffer, defCount int) {
	if buf == nil {
		return
	}
	// Don't pool oversized buffers
	if buf.Cap() > 1<<20 {
		return
	}
	switch {
	case defCount < 4:
		smallBufferPool.Put(buf)
	case defCount < 16:
		mediumBufferPool.Put(buf)
	default:
		largeBufferPool.Put(buf)
	}
}
