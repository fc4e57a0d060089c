package refdex_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/refdex"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs to single spaces", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", refdex.NormalizeText("a  b\t\tc"))
	})

	t.Run("treats newlines and tabs as whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "The mesh data.", refdex.NormalizeText("The\n  mesh\r\n\tdata."))
	})

	t.Run("trims leading and trailing whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "name: str", refdex.NormalizeText("  name: str \n"))
	})

	t.Run("empty input yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", refdex.NormalizeText(""))
		assert.Equal(t, "", refdex.NormalizeText("  \n\t "))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := refdex.NormalizeText("  a\n\nb\t c  ")
		assert.Equal(t, once, refdex.NormalizeText(once))
	})

	t.Run("output never contains consecutive whitespace", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"a  b", "\t\ta\n\nb\r\r", " x ", "multi\nline\ntext here",
			"   ", "no-ws", "a \t\n b \t\n c",
		}
		for _, in := range inputs {
			out := refdex.NormalizeText(in)
			assert.NotContains(t, out, "  ", "input %q", in)
			assert.NotContains(t, out, "\t", "input %q", in)
			assert.NotContains(t, out, "\n", "input %q", in)
			assert.Equal(t, strings.TrimSpace(out), out, "input %q", in)
		}
	})
}
