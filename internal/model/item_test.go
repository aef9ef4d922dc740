package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	tests := []struct {
		name string
		in   TodoList
		x    TodoItem
	}{
		{name: "empty", in: TodoList{}, x: "A"},
		{name: "nil", in: nil, x: "A"},
		{name: "duplicate", in: TodoList{"A", "B"}, x: "A"},
		{name: "empty text", in: TodoList{"A"}, x: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.Clone()
			got := Append(tt.in, tt.x)

			require.Len(t, got, len(tt.in)+1)
			assert.Equal(t, tt.x, got[len(got)-1])
			assert.True(t, Equal(before, got[:len(tt.in)]), "prefix must equal the input")
			assert.True(t, Equal(before, tt.in), "input must not change")
		})
	}
}

func TestAppendDoesNotShareBacking(t *testing.T) {
	base := make(TodoList, 2, 8)
	base[0], base[1] = "A", "B"

	a := Append(base, "C")
	b := Append(base, "D")

	assert.Equal(t, TodoList{"A", "B", "C"}, a)
	assert.Equal(t, TodoList{"A", "B", "D"}, b)
}

func TestWithout(t *testing.T) {
	tests := []struct {
		name string
		in   TodoList
		x    TodoItem
		want TodoList
	}{
		{name: "single match", in: TodoList{"A", "B", "C"}, x: "B", want: TodoList{"A", "C"}},
		{name: "all occurrences", in: TodoList{"A", "B", "A"}, x: "A", want: TodoList{"B"}},
		{name: "no match", in: TodoList{"A", "B"}, x: "Z", want: TodoList{"A", "B"}},
		{name: "everything", in: TodoList{"A", "A"}, x: "A", want: TodoList{}},
		{name: "empty input", in: TodoList{}, x: "A", want: TodoList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.in.Clone()
			got := Without(tt.in, tt.x)

			assert.Equal(t, tt.want, got)
			assert.False(t, Contains(got, tt.x))
			for _, it := range got {
				assert.True(t, Contains(tt.in, it))
			}
			assert.Equal(t, got, Without(got, tt.x), "delete must be idempotent")
			assert.Equal(t, before, tt.in, "input must not change")
		})
	}
}

func TestSeed(t *testing.T) {
	s := Seed()
	require.Len(t, s, 3)
	assert.Equal(t, TodoItem("contextAPI 공부하기"), s[0])
	assert.Equal(t, TodoItem("JWT 공부하기"), s[2])

	s[0] = "changed"
	assert.NotEqual(t, s[0], Seed()[0], "Seed must hand out a fresh list")
}

func TestScenario(t *testing.T) {
	l := TodoList{"A", "B", "C"}
	l = Append(l, "D")
	assert.Equal(t, TodoList{"A", "B", "C", "D"}, l)
	l = Without(l, "B")
	assert.Equal(t, TodoList{"A", "C", "D"}, l)
}
