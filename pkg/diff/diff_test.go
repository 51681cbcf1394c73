package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiffIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("line1\nline2\nline3\n")
	assert.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestGenerateUnifiedDiffSingleLineChange(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff(
		[]byte("line1\nline2\nline3\n"),
		[]byte("line1\nmodified\nline3\n"),
		"expected", "actual",
	)

	assert.Contains(t, result, "--- expected\n")
	assert.Contains(t, result, "+++ actual\n")
	assert.Contains(t, result, "@@ -1,3 +1,3 @@\n")
	assert.Contains(t, result, " line1\n")
	assert.Contains(t, result, "-line2\n")
	assert.Contains(t, result, "+modified\n")
	assert.Contains(t, result, " line3\n")
}

func TestGenerateUnifiedDiffWholeLines(t *testing.T) {
	t.Parallel()

	// lines sharing a prefix must still appear as whole lines
	result := GenerateUnifiedDiff(
		[]byte("statusBar.background: #112233\n"),
		[]byte("statusBar.background: #112244\n"),
		"a", "b",
	)
	assert.Contains(t, result, "-statusBar.background: #112233\n")
	assert.Contains(t, result, "+statusBar.background: #112244\n")
}

func TestGenerateUnifiedDiffTruncates(t *testing.T) {
	t.Parallel()

	var a, b strings.Builder
	for i := 0; i < 6000; i++ {
		fmt.Fprintf(&a, "old %d\n", i)
		fmt.Fprintf(&b, "new %d\n", i)
	}
	result := GenerateUnifiedDiff([]byte(a.String()), []byte(b.String()), "a", "b")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}

func TestObjects(t *testing.T) {
	t.Parallel()

	before := map[string]any{
		"editor.background":    "#000000",
		"statusBar.background": "#112233",
	}
	after := map[string]any{
		"editor.background":           "#000000",
		"statusBar.background":        "#445566",
		"titleBar.inactiveBackground": "#778899",
	}

	result := Objects(before, after, "global (stored)", "global (computed)")
	require.NotEmpty(t, result)
	assert.Contains(t, result, " editor.background: #000000\n")
	assert.Contains(t, result, "-statusBar.background: #112233\n")
	assert.Contains(t, result, "+statusBar.background: #445566\n")
	assert.Contains(t, result, "+titleBar.inactiveBackground: #778899\n")

	assert.Empty(t, Objects(before, before, "a", "b"))
	assert.Empty(t, Objects(nil, map[string]any{}, "a", "b"))
}

func TestRenderSortsKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a: 1\nb: x\n", string(Render(map[string]any{"b": "x", "a": 1})))
	assert.Empty(t, Render(nil))
}
