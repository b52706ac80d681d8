package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/monoids"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceToTest sends core tracing to the log of t at debug level. The returned
// teardown re-installs the tracer that was active before.
func traceToTest(t *testing.T) func() {
	previous := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return func() {
		gtrace.CoreTracer = previous
	}
}

func TestFprintLazyTree(t *testing.T) {
	teardown := traceToTest(t)
	defer teardown()
	//
	tree, err := segtree.NewLazy(monoids.RangeAddSum[int](), 4, 0)
	require.NoError(t, err)
	require.NoError(t, tree.RangeApply(0, 2, 3))
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tree.Each))
	t.Logf("\n%s", buf.String())
	want := strings.Join([]string{
		"[0,4) 6",
		"  [0,2) 6 ⟨3⟩",
		"    [0,1) 0",
		"    [1,2) 0",
		"  [2,4) 0",
		"    [2,3) 0",
		"    [3,4) 0",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestFprintSkipsPadding(t *testing.T) {
	tree, err := segtree.FromSlice(monoids.SumConfig[int](), []int{1, 2, 3})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tree.Each))
	assert.NotContains(t, buf.String(), "[3,4)")
	buf.Reset()
	require.NoError(t, Fprint(&buf, tree.Each, WithPadding(true)))
	assert.Contains(t, buf.String(), "    [3,4) 0\n")
}

func TestFprintOptions(t *testing.T) {
	tree, err := segtree.NewLazy(monoids.RangeAssignMin(100), 8, 7)
	require.NoError(t, err)
	require.NoError(t, tree.RangeApply(0, 8, monoids.Set(1)))
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tree.Each, WithMaxDepth(0)))
	assert.Equal(t, "[0,8) 1 ⟨=1⟩\n", buf.String())
	buf.Reset()
	require.NoError(t, Fprint(&buf, tree.Each, WithMaxDepth(1), WithWidth(9)))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[0,8) 1 …", lines[0])
	assert.Equal(t, "  [0,4) 7", lines[1])
	buf.Reset()
	require.NoError(t, Fprint(&buf, tree.Each, WithMaxDepth(0), WithColor(true)))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "⟨=1⟩")
}

func TestConfigForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	config := ConfigFor(&buf)
	assert.False(t, config.Color)
	assert.Equal(t, 0, config.Width)
	assert.Equal(t, -1, config.MaxDepth)
	assert.Nil(t, config.Context)
}

func TestFprintRestoresTracer(t *testing.T) {
	before := gtrace.CoreTracer
	t.Run("traced", func(t *testing.T) {
		teardown := traceToTest(t)
		defer teardown()
		//
		var buf bytes.Buffer
		require.NoError(t, Fprint(&buf, concatTree(t, []string{"a"}).Each))
	})
	assert.Equal(t, before, gtrace.CoreTracer)
}

var concat = segtree.MonoidFuncs[string]{
	UnityFn: func() string { return "" },
	OpFn:    func(left, right string) string { return left + right },
}

func concatTree(t *testing.T, values []string) *segtree.Tree[string] {
	tree, err := segtree.FromSlice(segtree.Config[string]{Monoid: concat}, values)
	require.NoError(t, err)
	return tree
}

func columns(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}

func TestFprintMeasuresWideCharacters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, concatTree(t, []string{"漢字"}).Each, WithWidth(8)))
	line := strings.TrimSuffix(buf.String(), "\n")
	assert.Equal(t, "[0,1) …", line)
	assert.LessOrEqual(t, columns(line), 8)
	buf.Reset()
	require.NoError(t, Fprint(&buf, concatTree(t, []string{"漢字"}).Each, WithWidth(10)))
	assert.Equal(t, "[0,1) 漢字\n", buf.String())
}

func TestFprintKeepsCombiningCharactersTogether(t *testing.T) {
	accented := "e\u0301e\u0301e\u0301" // 3 columns, 6 runes
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, concatTree(t, []string{accented}).Each, WithWidth(9)))
	assert.Equal(t, "[0,1) "+accented+"\n", buf.String())
	buf.Reset()
	require.NoError(t, Fprint(&buf, concatTree(t, []string{accented}).Each, WithWidth(8)))
	assert.Equal(t, "[0,1) e\u0301…\n", buf.String())
}

func TestFprintTruncatesEveryLineToWidth(t *testing.T) {
	values := []string{"一", "二", "三", "四", "五"}
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, concatTree(t, values).Each, WithWidth(11), WithContext(uax11.LatinContext)))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, columns(line), 11, "line %q", line)
	}
}
