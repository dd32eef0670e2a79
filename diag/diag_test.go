package diag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-es1/diag"
)

func TestSourceShortLine(t *testing.T) {
	got := diag.Source("var x = ;", 0, 8)
	require.Equal(t, "var x = ;\n        ^", got)
}

func TestSourcePicksLine(t *testing.T) {
	got := diag.Source("first\nsecond line\r\nthird", 1, 0)
	require.Equal(t, "second line\n^", got)
}

func TestSourceTruncatesLeft(t *testing.T) {
	line := strings.Repeat("a", 30) + "!" + strings.Repeat("b", 5)
	got := diag.Source(line, 0, 30)
	lines := strings.SplitN(got, "\n", 2)
	require.True(t, strings.HasPrefix(lines[0], "..."))
	require.False(t, strings.HasSuffix(lines[0], "..."))
	require.Equal(t, "!", string(lines[0][strings.Index(lines[1], "^")]))
}

func TestSourceTruncatesRight(t *testing.T) {
	line := "!" + strings.Repeat("b", 40)
	got := diag.Source(line, 0, 0)
	lines := strings.SplitN(got, "\n", 2)
	require.True(t, strings.HasSuffix(lines[0], "..."))
	require.Equal(t, "^", lines[1])
}

func TestSourceTruncatesBothEnds(t *testing.T) {
	line := strings.Repeat("a", 30) + "!" + strings.Repeat("b", 30)
	got := diag.Source(line, 0, 30)
	lines := strings.SplitN(got, "\n", 2)
	require.True(t, strings.HasPrefix(lines[0], "..."))
	require.True(t, strings.HasSuffix(lines[0], "..."))
	require.Equal(t, "!", string(lines[0][strings.Index(lines[1], "^")]))
}

func TestSourceColumnPastEnd(t *testing.T) {
	got := diag.Source("ab", 0, 5)
	require.Equal(t, "ab\n     ^", got)
}

func TestTokensMidStream(t *testing.T) {
	contents := []string{"var", "x", "=", ";", "y"}
	require.Equal(t, "x = [;] y", diag.Tokens(contents, 3))
}

func TestTokensAtEdges(t *testing.T) {
	contents := []string{"a", "+", "b"}
	require.Equal(t, "[a] + b", diag.Tokens(contents, 0))
	require.Equal(t, "a + [b]", diag.Tokens(contents, 2))
}

func TestTokensClampsIndex(t *testing.T) {
	contents := []string{"a", "+", "b"}
	require.Equal(t, "a + [b]", diag.Tokens(contents, 10))
	require.Equal(t, "", diag.Tokens(nil, 0))
}
