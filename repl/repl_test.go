package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/hyperknf/HydroScript/internal/parser"
)

func run(input string) string {
	color.NoColor = true
	var out bytes.Buffer
	Start(strings.NewReader(input), &out, parser.DefaultOptions())
	return out.String()
}

func TestStartPrintsTree(t *testing.T) {
	out := run("a = 1 + 2 * 3\n")
	assert.Equal(t, ">> a = (1 + (2 * 3))\n>> \n", out)
}

func TestStartSkipsBlankLines(t *testing.T) {
	out := run("\n   \n")
	assert.Equal(t, ">> >> >> \n", out)
}

func TestStartContinuesOpenBlocks(t *testing.T) {
	out := run("f = >- (x) {\nreturn x\n}\n")
	assert.Equal(t, ">> .. .. f = >- (x) {\n  return x\n}\n>> \n", out)
}

func TestStartReportsErrors(t *testing.T) {
	out := run("a = (1 +\nb = 2\n")

	assert.Contains(t, out, "error[E0")
	assert.Contains(t, out, "<repl>:1")
	assert.Contains(t, out, "b = 2\n")
}
