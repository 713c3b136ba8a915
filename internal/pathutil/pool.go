package pathutil

import "sync"

const (
	defaultPathCap = 8  // Most paths are <8 segments deep
	maxPathCap     = 64 // Don't pool excessively deep paths
)

var pathPool = sync.Pool{
	New: func() any {
		return &Path{
			segments: make([]string, 0, defaultPathCap),
			sep:      DefaultSeparator,
		}
	},
}

// Get retrieves a Path from the pool, reset and ready to use.
func Get() *Path {
	p := pathPool.Get().(*Path)
	p.Reset()
	p.sep = DefaultSeparator
	return p
}

// Put returns a Path to the pool if not oversized.
func Put(p *Path) {
	if p == nil || cap(p.segments) > maxPathCap {
		return // Let GC collect oversized paths
	}
	pathPool.Put(p)
}
