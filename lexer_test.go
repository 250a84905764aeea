// lexer_test.go
package slang

import (
	"errors"
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func Test_Lexer_Assignment(t *testing.T) {
	got := wantTypes(t, `x = 5;`, []TokenType{ID, ASSIGN, INTEGER, SEMI})
	if got[0].Literal.(string) != "x" {
		t.Fatalf("identifier literal: %v", got[0].Literal)
	}
	if got[2].Literal.(int64) != 5 {
		t.Fatalf("integer literal: %v", got[2].Literal)
	}
}

func Test_Lexer_AllFixedLexemes(t *testing.T) {
	src := `{ } ( ) [ ] , ; = == < > + - * /`
	wantTypes(t, src, []TokenType{
		LCURLY, RCURLY, LROUND, RROUND, LSQUARE, RSQUARE, COMMA, SEMI,
		ASSIGN, EQ, LESS, GREATER, PLUS, MINUS, MULT, DIV,
	})
}

func Test_Lexer_EqualsMaximalMunch(t *testing.T) {
	// "===" must scan as "==" then "=".
	wantTypes(t, `a === b`, []TokenType{ID, EQ, ASSIGN, ID})
}

func Test_Lexer_KeywordsVsIdentifiers(t *testing.T) {
	src := `print printer if iffy else while and or not xor xorx`
	wantTypes(t, src, []TokenType{
		PRINT, ID, IF, ID, ELSE, WHILE, AND, OR, NOT, XOR, ID,
	})
}

func Test_Lexer_IdentifierShape(t *testing.T) {
	got := wantTypes(t, `abc1 a1b2`, []TokenType{ID, ID})
	if got[0].Literal.(string) != "abc1" || got[1].Literal.(string) != "a1b2" {
		t.Fatalf("identifier literals: %v, %v", got[0].Literal, got[1].Literal)
	}
}

func Test_Lexer_StringLiteral(t *testing.T) {
	got := wantTypes(t, `"ab cd"`, []TokenType{STRING})
	if got[0].Literal.(string) != "ab cd" {
		t.Fatalf("string literal: %q", got[0].Literal)
	}
}

func Test_Lexer_StringLiteralMayContainNewline(t *testing.T) {
	got := wantTypes(t, "\"a\nb\"", []TokenType{STRING})
	if got[0].Literal.(string) != "a\nb" {
		t.Fatalf("string literal: %q", got[0].Literal)
	}
}

func Test_Lexer_StringUnterminated(t *testing.T) {
	_, err := NewLexer(`"abc`).Scan()
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("want *LexError, got %v", err)
	}
}

func Test_Lexer_IntegerOverflowIsLexical(t *testing.T) {
	_, err := NewLexer(`99999999999999999999`).Scan()
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("want *LexError, got %v", err)
	}
}

func Test_Lexer_UnexpectedCharacter(t *testing.T) {
	_, err := NewLexer(`x = @`).Scan()
	var le *LexError
	if !errors.As(err, &le) {
		t.Fatalf("want *LexError, got %v", err)
	}
	if le.Line != 1 {
		t.Fatalf("line: %d", le.Line)
	}
}

func Test_Lexer_Positions(t *testing.T) {
	ts := toks(t, "x = 1;\ny = 2;")
	// token 4 is "y" at line 2, col 0
	if ts[4].Type != ID || ts[4].Line != 2 || ts[4].Col != 0 {
		t.Fatalf("token 4: %+v", ts[4])
	}
	if ts[6].Type != INTEGER || ts[6].Line != 2 || ts[6].Col != 4 {
		t.Fatalf("token 6: %+v", ts[6])
	}
}

func Test_Lexer_WhitespaceSeparatorsOnly(t *testing.T) {
	wantTypes(t, "\t x\n\r\n y \t", []TokenType{ID, ID})
}

func Test_Lexer_EOFAlwaysLast(t *testing.T) {
	ts := toks(t, ``)
	if len(ts) != 1 || ts[0].Type != EOF {
		t.Fatalf("empty source tokens: %+v", ts)
	}
}
