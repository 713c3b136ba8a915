package pathutil

import "strings"

// DefaultSeparator is the separator used by Get and by zero-value paths.
const DefaultSeparator = '/'

// Path is an ordered breadcrumb of segments with a configurable separator.
// The zero value is a root path with the default separator.
type Path struct {
	segments []string
	sep      byte
}

// New creates an empty path that renders with the given separator.
func New(sep byte) *Path {
	return &Path{sep: sep}
}

// IsRoot reports whether the path has no segments.
func (p *Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// Push appends a segment in place.
func (p *Path) Push(segment string) {
	p.segments = append(p.segments, segment)
}

// Pop removes and returns the last segment.
// The second return is false when the path is already at the root.
func (p *Path) Pop() (string, bool) {
	if len(p.segments) == 0 {
		return "", false
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	return last, true
}

// Extend returns a new path equal to p plus one appended segment, leaving p
// unchanged. This is the form used when recursing into children: sibling
// branches share no backing storage.
func (p *Path) Extend(segment string) *Path {
	segs := make([]string, len(p.segments), len(p.segments)+1)
	copy(segs, p.segments)
	return &Path{
		segments: append(segs, segment),
		sep:      p.sep,
	}
}

// Equal reports whether the two paths hold the same segments.
// Separators are ignored; they affect rendering only.
func (p *Path) Equal(other *Path) bool {
	if other == nil || len(p.segments) != len(other.segments) {
		return false
	}
	for i, seg := range p.segments {
		if other.segments[i] != seg {
			return false
		}
	}
	return true
}

// Reset clears the path for reuse.
func (p *Path) Reset() {
	p.segments = p.segments[:0]
}

// String renders the segments joined by the separator.
// The root path renders as the empty string.
func (p *Path) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	sep := p.sep
	if sep == 0 {
		sep = DefaultSeparator
	}
	var b strings.Builder
	n := len(p.segments) - 1
	for _, seg := range p.segments {
		n += len(seg)
	}
	b.Grow(n)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		b.WriteByte(sep)
		b.WriteString(seg)
	}
	return b.String()
}
