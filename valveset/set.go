package valveset

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Capacity is the number of distinct ids a Set can hold.
const Capacity = 64

// ErrOutOfRange is returned when an id outside [0, Capacity) is added.
var ErrOutOfRange = errors.New("valveset: id out of range")

// Set is a bitmask over valve ids in [0, Capacity).
// The zero value is an empty set, ready to use.
type Set struct {
	bits uint64
}

// Add inserts id into the set. Adding an existing member is a no-op.
func (s *Set) Add(id int) error {
	if id < 0 || id >= Capacity {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, id, Capacity)
	}
	s.bits |= uint64(1) << uint(id)

	return nil
}

// With returns a copy of s with id added; s itself is left untouched.
func (s Set) With(id int) (Set, error) {
	err := s.Add(id)

	return s, err
}

// Contains reports whether id is a member. Ids outside [0, Capacity)
// can never be members, so they report false.
func (s Set) Contains(id int) bool {
	if id < 0 || id >= Capacity {
		return false
	}

	return s.bits&(uint64(1)<<uint(id)) != 0
}

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount64(s.bits) }

// Members returns the ids in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	for rest := s.bits; rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros64(rest))
	}

	return out
}

// String renders the set as {1 4 7}.
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range s.Members() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	sb.WriteByte('}')

	return sb.String()
}
