package pattern

import (
	"testing"
)

func TestLiteralMatch(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		val  Value
		want bool
	}{
		{
			name: "exact num equal",
			lit:  ExactNum(5),
			val:  Num(5),
			want: true,
		},
		{
			name: "exact num different",
			lit:  ExactNum(5),
			val:  Num(6),
			want: false,
		},
		{
			name: "exact num against string",
			lit:  ExactNum(5),
			val:  Str("5"),
			want: false,
		},
		{
			name: "exact str equal",
			lit:  ExactStr("foo"),
			val:  Str("foo"),
			want: true,
		},
		{
			name: "exact str different",
			lit:  ExactStr("foo"),
			val:  Str("foobar"),
			want: false,
		},
		{
			name: "prefix match",
			lit:  PrefixStr("foo"),
			val:  Str("foobar"),
			want: true,
		},
		{
			name: "prefix absent",
			lit:  PrefixStr("foo"),
			val:  Str("xxfoo"),
			want: false,
		},
		{
			name: "contain in the middle",
			lit:  ContainStr("foo"),
			val:  Str("xxfooyy"),
			want: true,
		},
		{
			name: "contain absent",
			lit:  ContainStr("foo"),
			val:  Str("bar"),
			want: false,
		},
		{
			name: "contain against num",
			lit:  ContainStr("foo"),
			val:  Num(1),
			want: false,
		},
		{
			name: "any literal accepts num",
			lit:  AnyLiteral,
			val:  Num(0),
			want: true,
		},
		{
			name: "any literal accepts str",
			lit:  AnyLiteral,
			val:  Str(""),
			want: true,
		},
		{
			name: "any literal rejects missing value",
			lit:  AnyLiteral,
			val:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.Match(tt.val); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}
