package golox

import (
	"errors"
	"fmt"
)

// IEvaluator is implemented by every expression node. Evaluate reduces
// the node to a value under the given context, or fails with a runtime
// error.
type IEvaluator interface {
	Evaluate(*ExecutionContext) (*Value, error)
}

// INode is implemented by every statement node. Execute runs the
// statement for its side effects. A non-nil *Value result is a pending
// return unwinding to the nearest enclosing function call; a non-nil
// error is a runtime error aborting the run.
type INode interface {
	Execute(*ExecutionContext) (*Value, error)
}

// Parser turns a token stream into a list of statement nodes via
// recursive descent. Parse errors are reported through the shared
// reporter; the parser recovers at the next statement boundary and
// keeps going, so one pass surfaces as many errors as possible.
type Parser struct {
	idx      int
	tokens   []*Token
	reporter *Reporter
}

// newParser creates a parser over a scanned token stream. The stream
// must be EOF-terminated, as produced by scan.
func newParser(tokens []*Token, reporter *Reporter) *Parser {
	return &Parser{
		tokens:   tokens,
		reporter: reporter,
	}
}

func (p *Parser) Consume() {
	if !p.AtEnd() {
		p.idx++
	}
}

func (p *Parser) Current() *Token {
	return p.Get(p.idx)
}

func (p *Parser) Previous() *Token {
	return p.Get(p.idx - 1)
}

// AtEnd reports whether the cursor reached the trailing EOF token.
func (p *Parser) AtEnd() bool {
	return p.Current().Typ == TokenEOF
}

func (p *Parser) Get(i int) *Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	if i < 0 {
		return p.tokens[0]
	}
	return p.tokens[i]
}

// PeekType returns the current token if it has the given type, without
// consuming it.
func (p *Parser) PeekType(typ TokenType) *Token {
	if t := p.Current(); t.Typ == typ {
		return t
	}
	return nil
}

// MatchType consumes and returns the current token if it has the given
// type.
func (p *Parser) MatchType(typ TokenType) *Token {
	if t := p.PeekType(typ); t != nil {
		p.Consume()
		return t
	}
	return nil
}

// MatchOneType consumes and returns the current token if it has any of
// the given types.
func (p *Parser) MatchOneType(typs ...TokenType) *Token {
	for _, typ := range typs {
		if t := p.MatchType(typ); t != nil {
			return t
		}
	}
	return nil
}

// Expect consumes a token of the given type or fails with a parse error
// at the current token.
func (p *Parser) Expect(typ TokenType, msg string) (*Token, error) {
	if t := p.MatchType(typ); t != nil {
		return t, nil
	}
	return nil, p.Error(msg, p.Current())
}

// Error builds a parse error pointing at the given token. A nil token
// defaults to the current one.
func (p *Parser) Error(msg string, token *Token) error {
	if token == nil {
		token = p.Current()
	}
	return &Error{
		Line:      token.Line,
		Token:     token,
		Sender:    "parser",
		OrigError: errors.New(msg),
	}
}

// Parse consumes the whole token stream and returns the program's
// top-level statements. A declaration that fails to parse is reported,
// dropped, and parsing resumes after synchronization; callers must
// check the reporter before executing the result.
func (p *Parser) Parse() []INode {
	statements := make([]INode, 0, 16)
	for !p.AtEnd() {
		stmt, err := p.parseDeclaration()
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) {
				p.reporter.Report(perr)
			} else {
				p.reporter.Error(p.Current().Line, err.Error())
			}
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

// synchronize discards tokens until a likely statement boundary: just
// past a semicolon, or right before a keyword that can begin a
// declaration or statement.
func (p *Parser) synchronize() {
	p.Consume()

	for !p.AtEnd() {
		if p.Previous().Typ == TokenSemicolon {
			return
		}

		switch p.Current().Typ {
		case TokenClass, TokenFor, TokenFun, TokenIf,
			TokenPrint, TokenReturn, TokenVar, TokenWhile:
			return
		}

		p.Consume()
	}
}

func (p *Parser) parseDeclaration() (INode, error) {
	if p.MatchType(TokenFun) != nil {
		return p.parseFunction("function")
	}
	if p.MatchType(TokenVar) != nil {
		return p.parseVarDeclaration()
	}
	return p.parseStatement()
}

func (p *Parser) parseFunction(kind string) (INode, error) {
	name, err := p.Expect(TokenIdentifier, fmt.Sprintf("Expect %s name.", kind))
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenLeftParen, fmt.Sprintf("Expect '(' after %s name.", kind)); err != nil {
		return nil, err
	}

	var params []*Token
	if p.PeekType(TokenRightParen) == nil {
		for {
			if len(params) >= maxCallArity {
				p.reporter.ErrorAtToken(p.Current(), "Can't have more than 255 parameters.")
			}
			param, err := p.Expect(TokenIdentifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.MatchType(TokenComma) == nil {
				break
			}
		}
	}
	if _, err := p.Expect(TokenRightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.Expect(TokenLeftBrace, fmt.Sprintf("Expect '{' before %s body.", kind)); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &functionStmt{name: name, params: params, body: body}, nil
}

func (p *Parser) parseVarDeclaration() (INode, error) {
	name, err := p.Expect(TokenIdentifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer IEvaluator
	if p.MatchType(TokenEqual) != nil {
		initializer, err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.Expect(TokenSemicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &varStmt{name: name, initializer: initializer}, nil
}

func (p *Parser) parseStatement() (INode, error) {
	switch {
	case p.MatchType(TokenFor) != nil:
		return p.parseForStatement()
	case p.MatchType(TokenIf) != nil:
		return p.parseIfStatement()
	case p.MatchType(TokenPrint) != nil:
		return p.parsePrintStatement()
	case p.MatchType(TokenReturn) != nil:
		return p.parseReturnStatement()
	case p.MatchType(TokenWhile) != nil:
		return p.parseWhileStatement()
	case p.MatchType(TokenLeftBrace) != nil:
		statements, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &blockStmt{statements: statements}, nil
	}
	return p.parseExpressionStatement()
}

// parseForStatement desugars the for loop in the parser: the evaluator
// never sees a for node. "for (I; C; U) B" becomes
// "{ I; while (C) { B; U; } }", with C defaulting to true and the outer
// block omitted when I is absent.
func (p *Parser) parseForStatement() (INode, error) {
	if _, err := p.Expect(TokenLeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer INode
	var err error
	switch {
	case p.MatchType(TokenSemicolon) != nil:
		// No initializer.
	case p.MatchType(TokenVar) != nil:
		initializer, err = p.parseVarDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		initializer, err = p.parseExpressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition IEvaluator
	if p.PeekType(TokenSemicolon) == nil {
		condition, err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.Expect(TokenSemicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment IEvaluator
	if p.PeekType(TokenRightParen) == nil {
		increment, err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.Expect(TokenRightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &blockStmt{statements: []INode{
			body,
			&expressionStmt{expression: increment},
		}}
	}
	if condition == nil {
		condition = &literalExpr{value: AsValue(true)}
	}
	body = &whileStmt{condition: condition, body: body}
	if initializer != nil {
		body = &blockStmt{statements: []INode{initializer, body}}
	}

	return body, nil
}

func (p *Parser) parseIfStatement() (INode, error) {
	if _, err := p.Expect(TokenLeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenRightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var elseBranch INode
	if p.MatchType(TokenElse) != nil {
		elseBranch, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	return &ifStmt{condition: condition, thenBranch: thenBranch, elseBranch: elseBranch}, nil
}

func (p *Parser) parsePrintStatement() (INode, error) {
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenSemicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &printStmt{expression: value}, nil
}

func (p *Parser) parseReturnStatement() (INode, error) {
	keyword := p.Previous()

	var value IEvaluator
	if p.PeekType(TokenSemicolon) == nil {
		var err error
		value, err = p.ParseExpression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.Expect(TokenSemicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &returnStmt{keyword: keyword, value: value}, nil
}

func (p *Parser) parseWhileStatement() (INode, error) {
	if _, err := p.Expect(TokenLeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenRightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &whileStmt{condition: condition, body: body}, nil
}

// parseBlock parses declarations up to the closing brace. The caller
// has already consumed the opening brace.
func (p *Parser) parseBlock() ([]INode, error) {
	statements := make([]INode, 0, 8)
	for p.PeekType(TokenRightBrace) == nil && !p.AtEnd() {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := p.Expect(TokenRightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) parseExpressionStatement() (INode, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(TokenSemicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &expressionStmt{expression: expr}, nil
}
