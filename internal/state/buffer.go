package state

// Buffer is an append-only list of text lines.
type Buffer struct {
	lines []string
}

func (b *Buffer) Append(line string) {
	b.lines = append(b.lines, line)
}

func (b *Buffer) Len() int {
	return len(b.lines)
}

// Lines returns a copy of every line, oldest first.
func (b *Buffer) Lines() []string {
	if len(b.lines) == 0 {
		return nil
	}
	dup := make([]string, len(b.lines))
	copy(dup, b.lines)
	return dup
}

// Recent returns at most n lines, newest first.
func (b *Buffer) Recent(n int) []string {
	if n <= 0 || len(b.lines) == 0 {
		return nil
	}
	if n > len(b.lines) {
		n = len(b.lines)
	}
	out := make([]string, 0, n)
	for i := len(b.lines) - 1; i >= len(b.lines)-n; i-- {
		out = append(out, b.lines[i])
	}
	return out
}
