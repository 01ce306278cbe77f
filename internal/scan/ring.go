package scan

// Ring is a fixed-capacity circular buffer of formatted lines.
// When full, Push overwrites the oldest entry. A zero-capacity ring
// discards everything pushed into it.
type Ring struct {
	buf   []string
	next  int
	count int
}

// NewRing creates a ring holding at most capacity lines.
func NewRing(capacity int) *Ring {
	if capacity < 0 {
		capacity = 0
	}
	return &Ring{buf: make([]string, capacity)}
}

// Push appends a line, evicting the oldest one when the ring is full.
func (r *Ring) Push(line string) {
	if len(r.buf) == 0 {
		return
	}
	r.buf[r.next] = line
	r.next = (r.next + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Lines returns the buffered lines oldest first. The ring is left intact.
func (r *Ring) Lines() []string {
	out := make([]string, 0, r.count)
	start := (r.next - r.count + len(r.buf)) % max(len(r.buf), 1)
	for i := 0; i < r.count; i++ {
		out = append(out, r.buf[(start+i)%len(r.buf)])
	}
	return out
}

// Len returns the number of buffered lines.
func (r *Ring) Len() int { return r.count }

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.buf) }
