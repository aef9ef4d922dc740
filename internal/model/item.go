package model

import "slices"

// TodoItem is a single todo entry. Two items with the same text are the same item.
type TodoItem string

// TodoList is an ordered snapshot of items. Functions in this package never
// modify a list in place; they return a new one.
type TodoList []TodoItem

// Seed returns the list every store starts with.
func Seed() TodoList {
	return TodoList{
		"contextAPI 공부하기",
		"타입스크립트 공부하기",
		"JWT 공부하기",
	}
}

// Append returns a new list with x added at the end.
func Append(l TodoList, x TodoItem) TodoList {
	out := make(TodoList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, x)
}

// Without returns a new list with every item equal to x removed.
func Without(l TodoList, x TodoItem) TodoList {
	out := make(TodoList, 0, len(l))
	for _, it := range l {
		if it != x {
			out = append(out, it)
		}
	}
	return out
}

func Contains(l TodoList, x TodoItem) bool { return slices.Contains(l, x) }

func Equal(a, b TodoList) bool { return slices.Equal(a, b) }

// Clone copies l. A nil list clones to an empty one.
func (l TodoList) Clone() TodoList {
	out := make(TodoList, len(l))
	copy(out, l)
	return out
}

// Strings is handy for encoders and list widgets.
func (l TodoList) Strings() []string {
	out := make([]string, len(l))
	for i, it := range l {
		out[i] = string(it)
	}
	return out
}
