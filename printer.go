package golox

import (
	"fmt"
	"strings"
)

// Parenthesized debug forms for AST nodes: "(+ 1 2)", "(- (group 3))".
// Used by tests to pin down what the parser built; never shown to
// users.

func exprString(expr IEvaluator) string {
	switch e := expr.(type) {
	case *assignExpr:
		return fmt.Sprintf("(= %s %s)", e.name.Lexeme, exprString(e.value))
	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.op_token.Lexeme, exprString(e.left), exprString(e.right))
	case *logicalExpr:
		return fmt.Sprintf("(%s %s %s)", e.op_token.Lexeme, exprString(e.left), exprString(e.right))
	case *unaryExpr:
		return fmt.Sprintf("(%s%s)", e.op_token.Lexeme, exprString(e.right))
	case *callExpr:
		parts := make([]string, 0, len(e.args)+1)
		parts = append(parts, exprString(e.callee))
		for _, arg := range e.args {
			parts = append(parts, exprString(arg))
		}
		return fmt.Sprintf("(call %s)", strings.Join(parts, " "))
	case *groupingExpr:
		return fmt.Sprintf("(group %s)", exprString(e.expression))
	case *literalExpr:
		if e.value.IsString() {
			return fmt.Sprintf("%q", e.value.String())
		}
		return e.value.String()
	case *variableExpr:
		return e.name.Lexeme
	}
	return fmt.Sprintf("<unknown expr %T>", expr)
}

func stmtString(stmt INode) string {
	switch s := stmt.(type) {
	case *blockStmt:
		parts := make([]string, 0, len(s.statements)+1)
		parts = append(parts, "block")
		for _, inner := range s.statements {
			parts = append(parts, stmtString(inner))
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, " "))
	case *expressionStmt:
		return fmt.Sprintf("(; %s)", exprString(s.expression))
	case *functionStmt:
		params := make([]string, len(s.params))
		for i, param := range s.params {
			params[i] = param.Lexeme
		}
		body := make([]string, len(s.body))
		for i, inner := range s.body {
			body[i] = stmtString(inner)
		}
		return fmt.Sprintf("(fun %s (%s) %s)",
			s.name.Lexeme, strings.Join(params, " "), strings.Join(body, " "))
	case *ifStmt:
		if s.elseBranch != nil {
			return fmt.Sprintf("(if %s %s %s)",
				exprString(s.condition), stmtString(s.thenBranch), stmtString(s.elseBranch))
		}
		return fmt.Sprintf("(if %s %s)", exprString(s.condition), stmtString(s.thenBranch))
	case *printStmt:
		return fmt.Sprintf("(print %s)", exprString(s.expression))
	case *returnStmt:
		if s.value != nil {
			return fmt.Sprintf("(return %s)", exprString(s.value))
		}
		return "(return)"
	case *varStmt:
		if s.initializer != nil {
			return fmt.Sprintf("(var %s %s)", s.name.Lexeme, exprString(s.initializer))
		}
		return fmt.Sprintf("(var %s)", s.name.Lexeme)
	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", exprString(s.condition), stmtString(s.body))
	}
	return fmt.Sprintf("<unknown stmt %T>", stmt)
}

func programString(statements []INode) string {
	parts := make([]string, len(statements))
	for i, stmt := range statements {
		parts[i] = stmtString(stmt)
	}
	return strings.Join(parts, "\n")
}
