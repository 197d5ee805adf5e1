package widget

import "errors"

// ErrEmptySelector is returned when a RotatingSelector is built over no items.
var ErrEmptySelector = errors.New("widget: selector needs at least one item")

// RotatingSelector keeps one active item out of a fixed, non-empty sequence. It only
// moves on explicit selection.
type RotatingSelector[T any] struct {
	items  []T
	active int
}

func NewRotatingSelector[T any](items []T) (*RotatingSelector[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptySelector
	}
	return &RotatingSelector[T]{items: items}, nil
}

// Select makes item i active. It returns false and keeps the current item when i is
// out of range.
func (s *RotatingSelector[T]) Select(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.active = i
	return true
}

func (s *RotatingSelector[T]) Active() int { return s.active }

func (s *RotatingSelector[T]) Current() T { return s.items[s.active] }

func (s *RotatingSelector[T]) Len() int { return len(s.items) }

// Items returns the underlying sequence. Callers must not modify it.
func (s *RotatingSelector[T]) Items() []T { return s.items }
