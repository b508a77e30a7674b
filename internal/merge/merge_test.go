// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	builtin := map[string]any{"keyword": "kw", "comment": "cm"}

	tests := []struct {
		name string
		user map[string]any
		want map[string]any
	}{
		{
			name: "no sentinel replaces outright",
			user: map[string]any{"keyword": "mine"},
			want: map[string]any{"keyword": "mine"},
		},
		{
			name: "truthy sentinel layers user over builtin",
			user: map[string]any{"default": true, "keyword": "mine"},
			want: map[string]any{"keyword": "mine", "comment": "cm"},
		},
		{
			name: "false sentinel stays literal-free",
			user: map[string]any{"default": false, "keyword": "mine"},
			want: map[string]any{"default": false, "keyword": "mine"},
		},
		{
			name: "empty user without sentinel stays empty",
			user: map[string]any{},
			want: map[string]any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Map(tt.user, builtin))
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name    string
		user    []string
		builtin []string
		want    []string
	}{
		{
			name:    "sentinel splices builtin in place",
			user:    []string{"a.css", "default", "b.css"},
			builtin: []string{"base.css"},
			want:    []string{"a.css", "base.css", "b.css"},
		},
		{
			name:    "no sentinel leaves user unchanged",
			user:    []string{"a.css", "b.css"},
			builtin: []string{"base.css"},
			want:    []string{"a.css", "b.css"},
		},
		{
			name:    "only first sentinel expands",
			user:    []string{"default", "x.css", "default"},
			builtin: []string{"one.css", "two.css"},
			want:    []string{"one.css", "two.css", "x.css", "default"},
		},
		{
			name:    "sentinel alone yields builtin",
			user:    []string{"default"},
			builtin: []string{"base.css"},
			want:    []string{"base.css"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strings(tt.user, tt.builtin))
		})
	}
}

func TestList(t *testing.T) {
	got := List([]any{"a", "default", "b"}, []any{"x", "y"})
	assert.Equal(t, []any{"a", "x", "y", "b"}, got)

	// Non-string elements cannot be sentinels.
	got = List([]any{1, true}, []any{"x"})
	assert.Equal(t, []any{1, true}, got)
}

func TestValueDispatch(t *testing.T) {
	// Mapping shape.
	got := Value(map[string]any{"default": true, "a": 1}, map[string]any{"b": 2})
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got)

	// Sequence shape.
	got = Value([]any{"default"}, []any{"x"})
	assert.Equal(t, []any{"x"}, got)

	// Scalars replace outright.
	assert.Equal(t, "mine", Value("mine", "theirs"))
	assert.Equal(t, 3, Value(3, 4))
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{true, 1, int64(2), 0.5, "yes", []any{}} {
		assert.True(t, truthy(v), "truthy(%#v)", v)
	}
	for _, v := range []any{nil, false, 0, int64(0), 0.0, ""} {
		assert.False(t, truthy(v), "truthy(%#v)", v)
	}
}
