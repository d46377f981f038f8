package anim

import "iter"

const (
	slotBlockSize = 64
)

// slotStorage stores values in fixed size blocks. Deleted slots are reused, so indices
// stay stable for the lifetime of the value stored in them.
type slotStorage[T any] struct {
	blocks    [][slotBlockSize]T
	filled    [][slotBlockSize]bool
	freeSlots []int
	nextIndex int
}

// Append stores an item and returns its index.
func (s *slotStorage[T]) Append(item T) int {
	var index int
	if len(s.freeSlots) > 0 {
		index = s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]
	} else {
		index = s.nextIndex
		s.nextIndex++
	}

	blockIdx := index / slotBlockSize
	slotIdx := index % slotBlockSize

	if blockIdx >= len(s.blocks) {
		s.blocks = append(s.blocks, [slotBlockSize]T{})
		s.filled = append(s.filled, [slotBlockSize]bool{})
	}

	s.blocks[blockIdx][slotIdx] = item
	s.filled[blockIdx][slotIdx] = true
	return index
}

// Get returns a pointer to the item at index, or nil for an empty slot.
func (s *slotStorage[T]) Get(index int) *T {
	if !s.Has(index) {
		return nil
	}
	return &s.blocks[index/slotBlockSize][index%slotBlockSize]
}

// Delete marks a slot as empty.
func (s *slotStorage[T]) Delete(index int) {
	if !s.Has(index) {
		return
	}

	blockIdx := index / slotBlockSize
	slotIdx := index % slotBlockSize

	s.filled[blockIdx][slotIdx] = false
	var zero T
	s.blocks[blockIdx][slotIdx] = zero
	s.freeSlots = append(s.freeSlots, index)
}

// Has checks if a slot is occupied.
func (s *slotStorage[T]) Has(index int) bool {
	if index < 0 || index >= s.nextIndex {
		return false
	}
	return s.filled[index/slotBlockSize][index%slotBlockSize]
}

// Len returns the number of occupied slots.
func (s *slotStorage[T]) Len() int {
	return s.nextIndex - len(s.freeSlots)
}

// Iter yields occupied indices in ascending order.
func (s *slotStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < s.nextIndex; i++ {
			if s.filled[i/slotBlockSize][i%slotBlockSize] {
				if !yield(i) {
					return
				}
			}
		}
	}
}
