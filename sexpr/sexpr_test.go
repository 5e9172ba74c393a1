package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phroun/zipper"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *zipper.Tree[string]
	}{
		{"atom", "a", zipper.Item("a")},
		{"empty_section", "()", zipper.Section[string]()},
		{"flat", "(a + b)", zipper.Section(zipper.Item("a"), zipper.Item("+"), zipper.Item("b"))},
		{"nested", "(a (b c))", zipper.Section(zipper.Item("a"), zipper.Section(zipper.Item("b"), zipper.Item("c")))},
		{"extra_whitespace", "  ( a\t(b   c)\n d )  ", zipper.Section(
			zipper.Item("a"),
			zipper.Section(zipper.Item("b"), zipper.Item("c")),
			zipper.Item("d"),
		)},
		{"unicode_atoms", "(α β)", zipper.Section(zipper.Item("α"), zipper.Item("β"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.src)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s", Format(got))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"empty", "", "empty input"},
		{"only_space", "   ", "empty input"},
		{"unbalanced_open", "(a (b c)", "missing ')' for '(' at offset 0"},
		{"unbalanced_close", ")", "unexpected ')' at offset 0"},
		{"trailing_atom", "(a b) c", "trailing input at offset 6"},
		{"trailing_close", "(a b))", "trailing input at offset 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestFormat(t *testing.T) {
	tree := zipper.Section(
		zipper.Item("a"),
		zipper.Section(zipper.Item("b"), zipper.Item("c")),
		zipper.Section[string](),
	)

	assert.Equal(t, "(a (b c) ())", Format(tree))
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{"a", "()", "(a + b)", "(a (b (c d)) e)"}

	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			tree, err := Parse(src)
			require.NoError(t, err)
			assert.Equal(t, src, Format(tree))
		})
	}
}
