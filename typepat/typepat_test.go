package typepat

import (
	"testing"

	"github.com/gnolang/hlin/matcher"
	"github.com/gnolang/hlin/pattern"
)

func TestMatcher(t *testing.T) {
	tests := []struct {
		name string
		tp   pattern.TypePattern
		typ  matcher.Type
		want bool
	}{
		{"any type with known type", pattern.AnyType, "Int", true},
		{"any type with missing type", pattern.AnyType, nil, true},
		{"exact match", Exact("Int"), "Int", true},
		{"exact mismatch", Exact("Int"), "Integer", false},
		{"exact with missing type", Exact("Int"), nil, false},
		{"prefix match", Prefix("IO "), "IO ()", true},
		{"prefix mismatch", Prefix("IO "), "StateT IO ()", false},
		{"contains match", Contains("Maybe"), "Int -> Maybe Int", true},
		{"contains mismatch", Contains("Maybe"), "Int -> Int", false},
		{"foreign pattern kind", struct{}{}, "Int", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matcher(tt.tp, tt.typ); got != tt.want {
				t.Errorf("Matcher(%v, %v) = %v, want %v", tt.tp, tt.typ, got, tt.want)
			}
		})
	}
}
