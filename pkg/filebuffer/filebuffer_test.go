package filebuffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileBuffer_Offset(t *testing.T) {
	t.Parallel()

	fb := NewString("test.sml", "val x = 1;\nval yy = 2;\n")
	require.Equal(t, 2, fb.Len())

	for _, tc := range []struct {
		line, character int
		expected        int
	}{
		{0, 0, 0},
		{0, 4, 4},
		{0, 100, 10},
		{1, 0, 11},
		{1, 5, 16},
		{2, 0, 23},
		{5, 0, 23},
		{-1, 3, 0},
	} {
		require.Equal(t, tc.expected, fb.Offset(tc.line, tc.character), "%d:%d", tc.line, tc.character)
	}
}

func TestFileBuffer_PositionAt(t *testing.T) {
	t.Parallel()

	fb := NewString("test.sml", "val x = 1;\nval yy = 2;\n")
	for _, tc := range []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{10, 1, 11},
		{11, 2, 1},
		{15, 2, 5},
		{23, 3, 1},
	} {
		pos := fb.PositionAt(tc.offset)
		require.Equal(t, tc.line, pos.Line, "offset %d", tc.offset)
		require.Equal(t, tc.column, pos.Column, "offset %d", tc.offset)
		require.Equal(t, fb.Offset(pos.Line-1, pos.Column-1), tc.offset)
	}
}

func TestFileBuffer_Line(t *testing.T) {
	t.Parallel()

	fb := NewString("test.sml", "first\nsecond")
	line, err := fb.Line(0)
	require.NoError(t, err)
	require.Equal(t, "first", string(line))

	line, err = fb.Line(1)
	require.NoError(t, err)
	require.Equal(t, "second", string(line))

	_, err = fb.Line(2)
	require.Error(t, err)
}

func TestFileBuffer_WordAt(t *testing.T) {
	t.Parallel()

	fb := NewString("test.sml", "val xs' = hd ys @ [x];")
	for _, tc := range []struct {
		offset   int
		expected string
	}{
		{4, "xs'"},
		{7, "xs'"},
		{11, "hd"},
		{16, "@"},
		{3, "val"},
		{8, "="},
		{18, ""},
		{100, ""},
	} {
		word, start, end := fb.WordAt(tc.offset)
		require.Equal(t, tc.expected, word, "offset %d", tc.offset)
		if word != "" {
			require.Equal(t, word, fb.String()[start:end])
		}
	}
}
