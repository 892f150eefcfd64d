package xlwrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLabel_SingleLetters(t *testing.T) {
	seen := make(map[string]int)
	for n := 1; n <= 26; n++ {
		got := ColumnLabel(n)
		assert.Equal(t, string(rune('A'+n-1)), got, "column %d", n)
		if prev, dup := seen[got]; dup {
			t.Fatalf("ColumnLabel(%d) and ColumnLabel(%d) both return %q", prev, n, got)
		}
		seen[got] = n
	}
}

func TestColumnLabel_FallsBackToZ(t *testing.T) {
	for _, n := range []int{0, -1, 27, 100} {
		assert.Equal(t, "Z", ColumnLabel(n), "column %d", n)
	}
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "A1:C5", RangeLabel(1, 1, 5, 3))
	assert.Equal(t, "B2:B2", RangeLabel(2, 2, 2, 2))
	assert.Equal(t, "Z1:Z3", RangeLabel(1, 30, 3, 40))
}

func TestSafeSheetName(t *testing.T) {
	assert.Equal(t, "a_b_c_d", SafeSheetName("a/b:c*d"))
	assert.Equal(t, "plain", SafeSheetName("plain"))
	long := strings.Repeat("x", 40)
	assert.Len(t, SafeSheetName(long), 31)
}
