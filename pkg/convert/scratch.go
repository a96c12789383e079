package convert

import (
	"fmt"
	"sync"
)

// scratchPool hands out call-scoped buffers. Every buffer taken with get
// must be given back with put before the call returns.
type scratchPool struct {
	pool sync.Pool
	max  int
}

func (p *scratchPool) get(size int) (*[]byte, error) {
	if size <= 0 || (p.max > 0 && size > p.max) {
		return nil, fmt.Errorf("%w: %d bytes requested, limit is %d", ErrAllocation, size, p.max)
	}

	for {
		v, ok := p.pool.Get().(*[]byte)
		if !ok {
			break
		}
		// Pooled buffers from other resolutions are dropped.
		if cap(*v) >= size {
			*v = (*v)[:size]
			return v, nil
		}
	}

	buf := make([]byte, size)
	return &buf, nil
}

func (p *scratchPool) put(buf *[]byte) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}
