// lexer.go — scans slang source text into a flat token stream.
package slang

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LROUND  // "("
	RROUND  // ")"
	LSQUARE // "["
	RSQUARE // "]"
	LCURLY  // "{"
	RCURLY  // "}"
	COMMA   // ","
	SEMI    // ";"

	// Operators
	PLUS    // "+"
	MINUS   // "-"
	MULT    // "*"
	DIV     // "/"
	ASSIGN  // "="
	EQ      // "=="
	LESS    // "<"
	GREATER // ">"

	// Literals & identifiers
	ID
	STRING
	INTEGER

	// Keywords
	PRINT
	IF
	ELSE
	WHILE
	AND
	OR
	NOT
	XOR
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // parsed value for INTEGER (int64) and STRING (string)
	Line    int
	Col     int
}

var keywords = map[string]TokenType{
	"print": PRINT,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
	"and":   AND,
	"or":    OR,
	"not":   NOT,
	"xor":   XOR,
}

// Lexer scans a slang source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\t', '\r', '\n':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isLetterOrDigit(b byte) bool {
	return isLetter(b) || isDigit(b)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg}
}

// scanString reads a double-quoted string literal. The opening quote has
// already been consumed. No escape sequences exist; any byte other than
// the closing quote is taken verbatim.
func (l *Lexer) scanString() (string, error) {
	for {
		ch, ok := l.advance()
		if !ok {
			return "", l.err("string was not terminated")
		}
		if ch == '"' {
			// strip the surrounding quotes
			return l.src[l.start+1 : l.cur-1], nil
		}
	}
}

// scanInteger reads [0-9]+ starting at the current token.
func (l *Lexer) scanInteger() (int64, error) {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	v, convErr := strconv.ParseInt(l.src[l.start:l.cur], 10, 64)
	if convErr != nil {
		return 0, l.err("invalid integer literal")
	}
	return v, nil
}

// scanIdentifier reads [A-Za-z][A-Za-z0-9]* starting at the current token.
func (l *Lexer) scanIdentifier() string {
	for {
		b, ok := l.peek()
		if !ok || !isLetterOrDigit(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

func (l *Lexer) scanToken() (Token, error) {
	l.skipWhitespace()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.addToken(EOF, nil), nil
	}

	ch, _ := l.advance()

	switch ch {
	case '(':
		return l.addToken(LROUND, nil), nil
	case ')':
		return l.addToken(RROUND, nil), nil
	case '[':
		return l.addToken(LSQUARE, nil), nil
	case ']':
		return l.addToken(RSQUARE, nil), nil
	case '{':
		return l.addToken(LCURLY, nil), nil
	case '}':
		return l.addToken(RCURLY, nil), nil
	case ',':
		return l.addToken(COMMA, nil), nil
	case ';':
		return l.addToken(SEMI, nil), nil
	case '+':
		return l.addToken(PLUS, nil), nil
	case '-':
		return l.addToken(MINUS, nil), nil
	case '*':
		return l.addToken(MULT, nil), nil
	case '/':
		return l.addToken(DIV, nil), nil
	case '<':
		return l.addToken(LESS, nil), nil
	case '>':
		return l.addToken(GREATER, nil), nil
	case '=':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			return l.addToken(EQ, nil), nil
		}
		return l.addToken(ASSIGN, nil), nil
	case '"':
		text, err := l.scanString()
		if err != nil {
			return Token{}, err
		}
		return l.addToken(STRING, text), nil
	}

	if isDigit(ch) {
		v, err := l.scanInteger()
		if err != nil {
			return Token{}, err
		}
		return l.addToken(INTEGER, v), nil
	}

	// Identifiers and keywords. The scan is maximal-munch, so a keyword is
	// only recognized when the whole identifier matches it ("printer" stays
	// an identifier).
	if isLetter(ch) {
		lex := l.scanIdentifier()
		if tt, ok := keywords[lex]; ok {
			return l.addToken(tt, nil), nil
		}
		return l.addToken(ID, lex), nil
	}

	return Token{}, l.err(fmt.Sprintf("unexpected character: %q", ch))
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}
