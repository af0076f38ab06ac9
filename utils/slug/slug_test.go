package slug

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Chocolate Fudge", "chocolate-fudge"},
		{"trims", "  Whey Protein  ", "whey-protein"},
		{"collapses separators", "Mass -- Gainer__XXL", "mass-gainer-xxl"},
		{"drops symbols", "BCAA (2:1:1) 100% Pure!", "bcaa-2-1-1-100-pure"},
		{"non ascii dropped", "Crème Brûlée", "cr-me-br-l-e"},
		{"numbers kept", "Omega 3 1000mg", "omega-3-1000mg"},
		{"empty", "", ""},
		{"symbols only", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestWithSuffix(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.Equal(t, "whey-protein-1700000000", WithSuffix("whey-protein", now))
	// 空 slug 仍要產生可用值
	assert.Equal(t, "item-1700000000", WithSuffix("", now))
}

func TestMakeStable(t *testing.T) {
	// 同名重存必須得到同一個 slug（未撞名時不得追加後綴）
	assert.Equal(t, Make("Creatine Monohydrate"), Make("Creatine Monohydrate"))
}
