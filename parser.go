// parser.go — recursive-descent parser for slang.
//
// The grammar is a fixed ladder of precedence tiers, lowest first:
//
//	statement  := block | assignment | print | if[-else] | while | function-def
//	expression := boolean
//	boolean    := "not" boolean | comparison (("and"|"or") comparison)*
//	comparison := bitwise (("<"|">"|"==") bitwise)*
//	bitwise    := addsub ("xor" addsub)*
//	addsub     := muldiv (("+"|"-") muldiv)*
//	muldiv     := atom (("*"|"/") atom)*
//	atom       := "(" expression ")" | literal
//	literal    := integer | string | list | variable, with postfix "[expr]"
//	              suffixes on string/list/variable bases
//
// Every tier left-associates by iterative consumption of operator+operand
// pairs. "not" is the one exception: it consumes the whole boolean tier to
// its right, so `not a and b` is `not (a and b)` and `a and not b` does
// not parse. Assignment and the call-shaped function definition are
// disambiguated after the leading expression: `e = e ;` assigns, `e ( e )
// stmt` defines.
//
// Parse yields exactly one root statement-sequence node or a *ParseError.
package slang

// Parse parses a complete slang source string into its root block.
func Parse(src string) (*BlockStmt, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.program()
}

type parser struct {
	toks []Token
	i    int
}

// ─────────────────────────── token basics ───────────────────────────

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *parser) prev() Token { return p.toks[p.i-1] }

func (p *parser) match(tt ...TokenType) bool {
	if p.atEnd() {
		return false
	}
	for _, t := range tt {
		if p.peek().Type == t {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(t TokenType, msg string) (Token, error) {
	if p.match(t) {
		return p.prev(), nil
	}
	return Token{}, p.errHere(msg)
}

func (p *parser) errHere(msg string) error {
	g := p.peek()
	return &ParseError{Line: g.Line, Col: g.Col, Msg: msg}
}

// ─────────────────────────── statements ───────────────────────────

func (p *parser) program() (*BlockStmt, error) {
	root := &BlockStmt{}
	for !p.atEnd() {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		root.Stmts = append(root.Stmts, s)
	}
	return root, nil
}

func (p *parser) statement() (Stmt, error) {
	switch p.peek().Type {
	case LCURLY:
		return p.blockStmt()
	case PRINT:
		return p.printStmt()
	case IF:
		return p.ifStmt()
	case WHILE:
		return p.whileStmt()
	default:
		return p.exprLedStmt()
	}
}

func (p *parser) blockStmt() (Stmt, error) {
	p.match(LCURLY)
	blk := &BlockStmt{}
	for !p.atEnd() && p.peek().Type != RCURLY {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		blk.Stmts = append(blk.Stmts, s)
	}
	if _, err := p.need(RCURLY, "expected '}' to close block"); err != nil {
		return nil, err
	}
	return blk, nil
}

func (p *parser) printStmt() (Stmt, error) {
	p.match(PRINT)
	if _, err := p.need(LROUND, "expected '(' after print"); err != nil {
		return nil, err
	}
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RROUND, "expected ')' after print operand"); err != nil {
		return nil, err
	}
	if _, err := p.need(SEMI, "expected ';' after print statement"); err != nil {
		return nil, err
	}
	return &PrintStmt{Operand: e}, nil
}

func (p *parser) ifStmt() (Stmt, error) {
	p.match(IF)
	if _, err := p.need(LROUND, "expected '(' after if"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RROUND, "expected ')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	if !p.match(ELSE) {
		return &IfStmt{Cond: cond, Then: then}, nil
	}
	els, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &IfStmt{Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) whileStmt() (Stmt, error) {
	p.match(WHILE)
	if _, err := p.need(LROUND, "expected '(' after while"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RROUND, "expected ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// exprLedStmt parses the statements that begin with an expression:
// assignment "e = e ;" and the call-shaped function definition
// "e ( e ) stmt".
func (p *parser) exprLedStmt() (Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.match(ASSIGN) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(SEMI, "expected ';' after assignment"); err != nil {
			return nil, err
		}
		return &AssignStmt{Target: e, Value: v}, nil
	}
	if p.match(LROUND) {
		param, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RROUND, "expected ')' after function parameter"); err != nil {
			return nil, err
		}
		body, err := p.statement()
		if err != nil {
			return nil, err
		}
		return &FuncDefStmt{Name: e, Param: param, Body: body}, nil
	}
	return nil, p.errHere("expected '=' or '(' after expression")
}

// ─────────────────────────── expressions ───────────────────────────

func (p *parser) expression() (Expr, error) { return p.boolean() }

func (p *parser) boolean() (Expr, error) {
	if p.match(NOT) {
		e, err := p.boolean()
		if err != nil {
			return nil, err
		}
		return &NotExpr{Operand: e}, nil
	}
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for {
		var op BinOp
		switch p.peek().Type {
		case AND:
			op = OpAnd
		case OR:
			op = OpOr
		default:
			return left, nil
		}
		p.i++
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) comparison() (Expr, error) {
	left, err := p.bitwise()
	if err != nil {
		return nil, err
	}
	for {
		var op BinOp
		switch p.peek().Type {
		case LESS:
			op = OpLess
		case GREATER:
			op = OpGreater
		case EQ:
			op = OpEqual
		default:
			return left, nil
		}
		p.i++
		right, err := p.bitwise()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) bitwise() (Expr, error) {
	left, err := p.addsub()
	if err != nil {
		return nil, err
	}
	for p.match(XOR) {
		right, err := p.addsub()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: OpXor, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) addsub() (Expr, error) {
	left, err := p.muldiv()
	if err != nil {
		return nil, err
	}
	for {
		var op BinOp
		switch p.peek().Type {
		case PLUS:
			op = OpAdd
		case MINUS:
			op = OpSub
		default:
			return left, nil
		}
		p.i++
		right, err := p.muldiv()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) muldiv() (Expr, error) {
	left, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		var op BinOp
		switch p.peek().Type {
		case MULT:
			op = OpMul
		case DIV:
			op = OpDiv
		default:
			return left, nil
		}
		p.i++
		right, err := p.atom()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) atom() (Expr, error) {
	if p.match(LROUND) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RROUND, "expected ')' to close grouping"); err != nil {
			return nil, err
		}
		return e, nil
	}
	return p.literal()
}

func (p *parser) literal() (Expr, error) {
	switch p.peek().Type {
	case INTEGER:
		p.i++
		return &IntLit{Value: p.prev().Literal.(int64)}, nil
	case STRING:
		p.i++
		return p.indexSuffixes(&TextLit{Value: p.prev().Literal.(string)}, TextIndex)
	case LSQUARE:
		p.i++
		base, err := p.listLiteral()
		if err != nil {
			return nil, err
		}
		return p.indexSuffixes(base, ListIndex)
	case ID:
		p.i++
		return p.indexSuffixes(&VarRef{Name: p.prev().Literal.(string)}, VarIndex)
	default:
		return nil, p.errHere("expected expression")
	}
}

// indexSuffixes wraps base in one IndexExpr per "[expr]" suffix. The mode
// is fixed by the base form and carried through the whole chain.
func (p *parser) indexSuffixes(base Expr, mode IndexMode) (Expr, error) {
	for p.match(LSQUARE) {
		idx, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RSQUARE, "expected ']' after index"); err != nil {
			return nil, err
		}
		base = &IndexExpr{Mode: mode, Base: base, Index: idx}
	}
	return base, nil
}

// listLiteral parses the body of a list literal; the opening '[' has been
// consumed. "[]" is empty, "[e]" is a single-element list, and longer
// literals fold left through ListJoinExpr.
func (p *parser) listLiteral() (Expr, error) {
	if p.match(RSQUARE) {
		return &EmptyListExpr{}, nil
	}
	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.match(RSQUARE) {
		return &SingleListExpr{Elem: first}, nil
	}
	acc := first
	for p.match(COMMA) {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		acc = &ListJoinExpr{Left: acc, Right: e}
	}
	if _, err := p.need(RSQUARE, "expected ',' or ']' in list literal"); err != nil {
		return nil, err
	}
	return acc, nil
}
