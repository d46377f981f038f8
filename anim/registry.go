package anim

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

type registryEntry struct {
	animator *Animator
	owner    uint64
	owned    bool
}

// Registry owns live animators and hands out stable handles to them. Removing an
// animator invalidates its handle; a reused slot gets a new generation.
type Registry struct {
	slots       slotStorage[registryEntry]
	generations []uint32
	owners      *intmap.Map[uint64, []Handle]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		owners: intmap.New[uint64, []Handle](64),
	}
}

// Add stores an animator and returns its handle.
func (r *Registry) Add(a *Animator) Handle {
	if a == nil {
		panic("cannot register a nil animator")
	}
	index := r.slots.Append(registryEntry{animator: a})
	for len(r.generations) <= index {
		r.generations = append(r.generations, 0)
	}
	r.generations[index]++
	if r.generations[index] == 0 {
		r.generations[index] = 1
	}
	return NewHandle(r.generations[index], uint32(index))
}

func (r *Registry) entry(h Handle) *registryEntry {
	index := int(h.Index())
	if index >= len(r.generations) || r.generations[index] != h.Generation() {
		return nil
	}
	return r.slots.Get(index)
}

// Get returns the animator for a handle, or nil when the handle is stale.
func (r *Registry) Get(h Handle) *Animator {
	e := r.entry(h)
	if e == nil {
		return nil
	}
	return e.animator
}

// Contains reports whether the handle refers to a stored animator.
func (r *Registry) Contains(h Handle) bool {
	return r.entry(h) != nil
}

// Remove drops the animator from the registry. It does not cancel it.
func (r *Registry) Remove(h Handle) bool {
	e := r.entry(h)
	if e == nil {
		return false
	}
	if e.owned {
		r.detach(e.owner, h)
	}
	index := int(h.Index())
	r.slots.Delete(index)
	r.generations[index]++
	return true
}

// Len returns the number of stored animators.
func (r *Registry) Len() int {
	return r.slots.Len()
}

// All iterates stored animators in slot order.
func (r *Registry) All() iter.Seq2[Handle, *Animator] {
	return func(yield func(Handle, *Animator) bool) {
		for index := range r.slots.Iter() {
			e := r.slots.Get(index)
			h := NewHandle(r.generations[index], uint32(index))
			if !yield(h, e.animator) {
				return
			}
		}
	}
}

// Attach associates an animator with an owner id, typically the object it animates.
// An animator has at most one owner; attaching again moves it.
func (r *Registry) Attach(owner uint64, h Handle) bool {
	e := r.entry(h)
	if e == nil {
		return false
	}
	if e.owned {
		r.detach(e.owner, h)
	}
	e.owner = owner
	e.owned = true
	handles, _ := r.owners.Get(owner)
	r.owners.Put(owner, append(handles, h))
	return true
}

// Owned returns the handles attached to owner in attachment order.
func (r *Registry) Owned(owner uint64) []Handle {
	handles, _ := r.owners.Get(owner)
	return slices.Clone(handles)
}

// CancelOwner cancels every animator attached to owner and returns how many were cancelled.
// The animators stay registered until removed.
func (r *Registry) CancelOwner(owner uint64) int {
	handles, ok := r.owners.Get(owner)
	if !ok {
		return 0
	}
	count := 0
	for _, h := range handles {
		if a := r.Get(h); a != nil && !a.Done() {
			a.Cancel()
			count++
		}
	}
	return count
}

func (r *Registry) detach(owner uint64, h Handle) {
	handles, ok := r.owners.Get(owner)
	if !ok {
		return
	}
	handles = slices.DeleteFunc(handles, func(o Handle) bool { return o == h })
	if len(handles) == 0 {
		r.owners.Del(owner)
		return
	}
	r.owners.Put(owner, handles)
}
