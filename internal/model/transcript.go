package model

const defaultTranscriptCap = 200

// Transcript is a fixed-size ring buffer of Messages. When the buffer is
// full, new pushes overwrite the oldest entry, so long sessions stay bounded
// without the UI having to trim anything.
type Transcript struct {
	buf  []Message
	head int // index of the next write position
	size int // number of valid entries
}

// NewTranscript creates a Transcript with the given capacity.
// If capacity <= 0, the defaultTranscriptCap (200) is used.
func NewTranscript(capacity int) *Transcript {
	if capacity <= 0 {
		capacity = defaultTranscriptCap
	}
	return &Transcript{
		buf: make([]Message, capacity),
	}
}

// Push appends a new message, overwriting the oldest if full.
func (t *Transcript) Push(m Message) {
	t.buf[t.head] = m
	t.head = (t.head + 1) % len(t.buf)
	if t.size < len(t.buf) {
		t.size++
	}
}

// Len returns the number of valid entries in the transcript.
func (t *Transcript) Len() int {
	return t.size
}

// Clear resets the transcript to empty.
func (t *Transcript) Clear() {
	t.head = 0
	t.size = 0
}

// Messages returns the entries in chronological order (oldest first).
func (t *Transcript) Messages() []Message {
	out := make([]Message, t.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (t.head - t.size + len(t.buf)) % len(t.buf)
	for i := 0; i < t.size; i++ {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Last returns the most recent entry, or false when the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	if t.size == 0 {
		return Message{}, false
	}
	idx := (t.head - 1 + len(t.buf)) % len(t.buf)
	return t.buf[idx], true
}
