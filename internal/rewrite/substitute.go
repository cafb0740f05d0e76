package rewrite

import (
	"github.com/Andlon/numeric-literals/internal/ast"
)

// Substitute instantiates a replacement template for one literal: the
// template is deep-copied, then every path whose final segment is the
// placeholder identifier is swapped for (a copy of) the literal expression.
// Both a bare `literal` and a qualified `foo::literal` match.
func Substitute(template ast.Expr, placeholder string, literal ast.Expr) ast.Expr {
	clone := ast.CloneExpr(template)
	return replacePlaceholder(clone, placeholder, literal)
}

func replacePlaceholder(expr ast.Expr, placeholder string, literal ast.Expr) ast.Expr {
	if expr == nil {
		return nil
	}

	switch n := expr.(type) {
	case *ast.PathExpr:
		if last := n.LastSegment(); last != nil && last.Name.Name == placeholder {
			return ast.CloneExpr(literal)
		}
		return n

	case *ast.PrefixExpr:
		n.Expr = replacePlaceholder(n.Expr, placeholder, literal)
		return n

	case *ast.InfixExpr:
		n.Left = replacePlaceholder(n.Left, placeholder, literal)
		n.Right = replacePlaceholder(n.Right, placeholder, literal)
		return n

	case *ast.AssignExpr:
		n.Target = replacePlaceholder(n.Target, placeholder, literal)
		n.Value = replacePlaceholder(n.Value, placeholder, literal)
		return n

	case *ast.CallExpr:
		n.Callee = replacePlaceholder(n.Callee, placeholder, literal)
		replaceInExprs(n.Args, placeholder, literal)
		return n

	case *ast.MethodCallExpr:
		n.Receiver = replacePlaceholder(n.Receiver, placeholder, literal)
		replaceInExprs(n.Args, placeholder, literal)
		return n

	case *ast.FieldExpr:
		n.Target = replacePlaceholder(n.Target, placeholder, literal)
		return n

	case *ast.IndexExpr:
		n.Target = replacePlaceholder(n.Target, placeholder, literal)
		n.Index = replacePlaceholder(n.Index, placeholder, literal)
		return n

	case *ast.CastExpr:
		n.Expr = replacePlaceholder(n.Expr, placeholder, literal)
		return n

	case *ast.TryExpr:
		n.Expr = replacePlaceholder(n.Expr, placeholder, literal)
		return n

	case *ast.ArrayLit:
		replaceInExprs(n.Elems, placeholder, literal)
		return n

	case *ast.RepeatLit:
		n.Elem = replacePlaceholder(n.Elem, placeholder, literal)
		n.Len = replacePlaceholder(n.Len, placeholder, literal)
		return n

	case *ast.TupleLit:
		replaceInExprs(n.Elems, placeholder, literal)
		return n

	case *ast.StructLit:
		for _, field := range n.Fields {
			field.Value = replacePlaceholder(field.Value, placeholder, literal)
		}
		return n

	case *ast.BlockExpr:
		replaceInBlock(n, placeholder, literal)
		return n

	case *ast.IfExpr:
		n.Cond = replacePlaceholder(n.Cond, placeholder, literal)
		if n.Then != nil {
			replaceInBlock(n.Then, placeholder, literal)
		}
		n.Else = replacePlaceholder(n.Else, placeholder, literal)
		return n

	case *ast.WhileExpr:
		n.Cond = replacePlaceholder(n.Cond, placeholder, literal)
		if n.Body != nil {
			replaceInBlock(n.Body, placeholder, literal)
		}
		return n

	case *ast.ClosureExpr:
		n.Body = replacePlaceholder(n.Body, placeholder, literal)
		return n

	default:
		// Literals and macro invocations contain no placeholder paths.
		return expr
	}
}

func replaceInExprs(exprs []ast.Expr, placeholder string, literal ast.Expr) {
	for i, e := range exprs {
		exprs[i] = replacePlaceholder(e, placeholder, literal)
	}
}

func replaceInBlock(block *ast.BlockExpr, placeholder string, literal ast.Expr) {
	for _, stmt := range block.Stmts {
		switch s := stmt.(type) {
		case *ast.LetStmt:
			s.Value = replacePlaceholder(s.Value, placeholder, literal)
		case *ast.ReturnStmt:
			s.Value = replacePlaceholder(s.Value, placeholder, literal)
		case *ast.ExprStmt:
			s.Expr = replacePlaceholder(s.Expr, placeholder, literal)
		}
	}
	block.Tail = replacePlaceholder(block.Tail, placeholder, literal)
}
