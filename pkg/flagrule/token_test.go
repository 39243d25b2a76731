package flagrule

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []Token
	}{
		{
			name: "empty input",
			expr: "",
			want: []Token{},
		},
		{
			name: "whitespace only",
			expr: "  \t\n ",
			want: []Token{},
		},
		{
			name: "single operand",
			expr: "true",
			want: []Token{operand("true")},
		},
		{
			name: "simple comparison",
			expr: "appVersion >= 2.0",
			want: []Token{operand("appVersion"), operator(OpGreaterEqual), operand("2.0")},
		},
		{
			name: "comparison without spaces",
			expr: "buildNumber<100",
			want: []Token{operand("buildNumber"), operator(OpLess), operand("100")},
		},
		{
			name: "equality",
			expr: "deviceType == tablet",
			want: []Token{operand("deviceType"), operator(OpEqual), operand("tablet")},
		},
		{
			name: "not equal",
			expr: "operatingSystem != android",
			want: []Token{operand("operatingSystem"), operator(OpNotEqual), operand("android")},
		},
		{
			name: "logical combination",
			expr: "true && false || true",
			want: []Token{
				operand("true"), operator(OpAnd), operand("false"),
				operator(OpOr), operand("true"),
			},
		},
		{
			name: "parenthesized",
			expr: "(appVersion >= 2.0) && (deviceType == tablet)",
			want: []Token{
				{Kind: TokenLeftParen},
				operand("appVersion"), operator(OpGreaterEqual), operand("2.0"),
				{Kind: TokenRightParen},
				operator(OpAnd),
				{Kind: TokenLeftParen},
				operand("deviceType"), operator(OpEqual), operand("tablet"),
				{Kind: TokenRightParen},
			},
		},
		{
			name: "all relational operators",
			expr: "a==b!=c<d<=e>f>=g",
			want: []Token{
				operand("a"), operator(OpEqual),
				operand("b"), operator(OpNotEqual),
				operand("c"), operator(OpLess),
				operand("d"), operator(OpLessEqual),
				operand("e"), operator(OpGreater),
				operand("f"), operator(OpGreaterEqual),
				operand("g"),
			},
		},
		{
			name: "lone paren",
			expr: "(",
			want: []Token{{Kind: TokenLeftParen}},
		},
		{
			name: "adjacent specials produce no empty operands",
			expr: "a && && b",
			want: []Token{operand("a"), operator(OpAnd), operator(OpAnd), operand("b")},
		},
		{
			name: "unrecognized operator-ish text degrades into operands",
			expr: "foo >< bar",
			want: []Token{operand("foo"), operator(OpGreater), operator(OpLess), operand("bar")},
		},
		{
			name: "garbage stays an operand",
			expr: "@@@",
			want: []Token{operand("@@@")},
		},
		{
			name: "interior whitespace stripped from operands",
			expr: "device Type == tab let",
			want: []Token{operand("deviceType"), operator(OpEqual), operand("tablet")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.expr)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{operand("appVersion"), "appVersion"},
		{operator(OpGreaterEqual), ">="},
		{operator(OpAnd), "&&"},
		{Token{Kind: TokenLeftParen}, "("},
		{Token{Kind: TokenRightParen}, ")"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token.String() = %q, want %q", got, tt.want)
		}
	}
}
