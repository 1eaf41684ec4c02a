package drawlist

// nilIndex marks "no element" in the next/prev arrays.
const nilIndex = -1

// List is a fixed-capacity intrusive doubly linked list over the dense
// index range [0, N). Every index lives in exactly one of two states,
// linked or free; all operations are O(1) because the list never
// allocates, shifts, or searches - it only rewires next/prev pointers
// between indices the caller already owns.
type List struct {
	next   []int
	prev   []int
	linked []bool
	head   int
	tail   int
	size   int
}

// NewList allocates a List over the index range [0, n).
func NewList(n int) (*List, error) {
	if n <= 0 {
		return nil, ErrCapacity
	}
	l := &List{
		next:   make([]int, n),
		prev:   make([]int, n),
		linked: make([]bool, n),
		head:   nilIndex,
		tail:   nilIndex,
	}
	return l, nil
}

// Len returns the number of indices currently in the list.
func (l *List) Len() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *List) IsEmpty() bool { return l.size == 0 }

// Contains reports whether idx is currently in the list.
func (l *List) Contains(idx int) bool {
	if idx < 0 || idx >= len(l.linked) {
		return false
	}
	return l.linked[idx]
}

// Front returns the first index in the list, or nilIndex if empty.
func (l *List) Front() int { return l.head }

// Back returns the last index in the list, or nilIndex if empty.
func (l *List) Back() int { return l.tail }

func (l *List) inRange(idx int) bool { return idx >= 0 && idx < len(l.linked) }

// Next returns the index following idx, or nilIndex if idx is the last
// element.
func (l *List) Next(idx int) (int, error) {
	if !l.inRange(idx) {
		return nilIndex, ErrIndexRange
	}
	if !l.linked[idx] {
		return nilIndex, ErrNotLinked
	}
	return l.next[idx], nil
}

// Prev returns the index preceding idx, or nilIndex if idx is the first
// element.
func (l *List) Prev(idx int) (int, error) {
	if !l.inRange(idx) {
		return nilIndex, ErrIndexRange
	}
	if !l.linked[idx] {
		return nilIndex, ErrNotLinked
	}
	return l.prev[idx], nil
}

// PushFront inserts idx as the new first element.
func (l *List) PushFront(idx int) error {
	if !l.inRange(idx) {
		return ErrIndexRange
	}
	if l.linked[idx] {
		return ErrAlreadyLinked
	}
	l.next[idx] = l.head
	l.prev[idx] = nilIndex
	if l.head != nilIndex {
		l.prev[l.head] = idx
	} else {
		l.tail = idx
	}
	l.head = idx
	l.linked[idx] = true
	l.size++
	return nil
}

// PushBack inserts idx as the new last element.
func (l *List) PushBack(idx int) error {
	if !l.inRange(idx) {
		return ErrIndexRange
	}
	if l.linked[idx] {
		return ErrAlreadyLinked
	}
	l.prev[idx] = l.tail
	l.next[idx] = nilIndex
	if l.tail != nilIndex {
		l.next[l.tail] = idx
	} else {
		l.head = idx
	}
	l.tail = idx
	l.linked[idx] = true
	l.size++
	return nil
}

// InsertBefore inserts idx immediately before the existing element mark.
func (l *List) InsertBefore(idx, mark int) error {
	if !l.inRange(idx) || !l.inRange(mark) {
		return ErrIndexRange
	}
	if l.linked[idx] {
		return ErrAlreadyLinked
	}
	if !l.linked[mark] {
		return ErrNotLinked
	}
	p := l.prev[mark]
	l.prev[idx] = p
	l.next[idx] = mark
	l.prev[mark] = idx
	if p != nilIndex {
		l.next[p] = idx
	} else {
		l.head = idx
	}
	l.linked[idx] = true
	l.size++
	return nil
}

// InsertAfter inserts idx immediately after the existing element mark.
func (l *List) InsertAfter(idx, mark int) error {
	if !l.inRange(idx) || !l.inRange(mark) {
		return ErrIndexRange
	}
	if l.linked[idx] {
		return ErrAlreadyLinked
	}
	if !l.linked[mark] {
		return ErrNotLinked
	}
	n := l.next[mark]
	l.next[idx] = n
	l.prev[idx] = mark
	l.next[mark] = idx
	if n != nilIndex {
		l.prev[n] = idx
	} else {
		l.tail = idx
	}
	l.linked[idx] = true
	l.size++
	return nil
}

// Remove unlinks idx from the list. idx becomes free and may be
// re-inserted later.
func (l *List) Remove(idx int) error {
	if !l.inRange(idx) {
		return ErrIndexRange
	}
	if !l.linked[idx] {
		return ErrNotLinked
	}
	p, n := l.prev[idx], l.next[idx]
	if p != nilIndex {
		l.next[p] = n
	} else {
		l.head = n
	}
	if n != nilIndex {
		l.prev[n] = p
	} else {
		l.tail = p
	}
	l.linked[idx] = false
	l.size--
	return nil
}

// ToSlice walks the list front to back and returns its elements in order.
func (l *List) ToSlice() []int {
	out := make([]int, 0, l.size)
	for i := l.head; i != nilIndex; i = l.next[i] {
		out = append(out, i)
	}
	return out
}
