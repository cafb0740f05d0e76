package rewrite

import (
	"github.com/Andlon/numeric-literals/internal/ast"
)

// Rewriter replaces numeric literals in expression trees with instantiated
// replacement templates. Which literal kinds are replaced is decided purely
// lexically: a token shaped like an integer is an integer, a token with a
// fraction, exponent or float suffix is a float. Substituted replacements
// are never re-scanned, so a template may itself contain numeric literals
// without causing infinite regress.
type Rewriter struct {
	// IntReplacement is applied to integer literals; nil leaves them alone.
	IntReplacement ast.Expr
	// FloatReplacement is applied to float literals; nil leaves them alone.
	FloatReplacement ast.Expr
	// VisitMacros controls descent into macro invocation bodies.
	VisitMacros bool

	placeholder string
}

// NewRewriter builds a rewriter from per-kind templates. Either template
// may be nil to exempt that literal kind.
func NewRewriter(intTemplate, floatTemplate ast.Expr, visitMacros bool) *Rewriter {
	return &Rewriter{
		IntReplacement:   intTemplate,
		FloatReplacement: floatTemplate,
		VisitMacros:      visitMacros,
		placeholder:      Placeholder,
	}
}

// RewriteItem rewrites all function bodies reachable from the item.
func (r *Rewriter) RewriteItem(item ast.Item) {
	switch n := item.(type) {
	case *ast.FnDecl:
		r.RewriteFn(n)
	case *ast.TraitDecl:
		for _, method := range n.Methods {
			r.RewriteFn(method)
		}
	case *ast.ImplDecl:
		for _, method := range n.Methods {
			r.RewriteFn(method)
		}
	}
}

// RewriteFn rewrites a single function's body, if it has one.
func (r *Rewriter) RewriteFn(fn *ast.FnDecl) {
	if fn.Body == nil {
		return
	}
	r.rewriteBlock(fn.Body)
}

func (r *Rewriter) rewriteBlock(block *ast.BlockExpr) {
	for _, stmt := range block.Stmts {
		r.rewriteStmt(stmt)
	}
	if block.Tail != nil {
		block.Tail = r.RewriteExpr(block.Tail)
	}
}

func (r *Rewriter) rewriteStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.LetStmt:
		if n.Type != nil {
			r.rewriteType(n.Type)
		}
		n.Value = r.RewriteExpr(n.Value)
	case *ast.ReturnStmt:
		if n.Value != nil {
			n.Value = r.RewriteExpr(n.Value)
		}
	case *ast.ExprStmt:
		n.Expr = r.RewriteExpr(n.Expr)
	case *ast.ItemStmt:
		r.RewriteItem(n.Item)
	}
}

// RewriteExpr returns the rewritten form of expr. Literal leaves are
// replaced wholesale; compound expressions are rewritten in place.
func (r *Rewriter) RewriteExpr(expr ast.Expr) ast.Expr {
	switch n := expr.(type) {
	case *ast.IntLit:
		if r.IntReplacement == nil {
			return n
		}
		return Substitute(r.IntReplacement, r.placeholder, n)

	case *ast.FloatLit:
		if r.FloatReplacement == nil {
			return n
		}
		return Substitute(r.FloatReplacement, r.placeholder, n)

	case *ast.MacroExpr:
		if !r.VisitMacros {
			return n
		}
		return r.rewriteMacro(n)

	case *ast.PrefixExpr:
		n.Expr = r.RewriteExpr(n.Expr)
		return n

	case *ast.InfixExpr:
		n.Left = r.RewriteExpr(n.Left)
		n.Right = r.RewriteExpr(n.Right)
		return n

	case *ast.AssignExpr:
		n.Target = r.RewriteExpr(n.Target)
		n.Value = r.RewriteExpr(n.Value)
		return n

	case *ast.CallExpr:
		n.Callee = r.RewriteExpr(n.Callee)
		r.rewriteExprs(n.Args)
		return n

	case *ast.MethodCallExpr:
		n.Receiver = r.RewriteExpr(n.Receiver)
		r.rewriteExprs(n.Args)
		return n

	case *ast.FieldExpr:
		n.Target = r.RewriteExpr(n.Target)
		return n

	case *ast.IndexExpr:
		n.Target = r.RewriteExpr(n.Target)
		n.Index = r.RewriteExpr(n.Index)
		return n

	case *ast.CastExpr:
		n.Expr = r.RewriteExpr(n.Expr)
		r.rewriteType(n.Type)
		return n

	case *ast.TryExpr:
		n.Expr = r.RewriteExpr(n.Expr)
		return n

	case *ast.ArrayLit:
		r.rewriteExprs(n.Elems)
		return n

	case *ast.RepeatLit:
		n.Elem = r.RewriteExpr(n.Elem)
		n.Len = r.RewriteExpr(n.Len)
		return n

	case *ast.TupleLit:
		r.rewriteExprs(n.Elems)
		return n

	case *ast.StructLit:
		for _, field := range n.Fields {
			field.Value = r.RewriteExpr(field.Value)
		}
		return n

	case *ast.BlockExpr:
		r.rewriteBlock(n)
		return n

	case *ast.IfExpr:
		n.Cond = r.RewriteExpr(n.Cond)
		if n.Then != nil {
			r.rewriteBlock(n.Then)
		}
		if n.Else != nil {
			n.Else = r.RewriteExpr(n.Else)
		}
		return n

	case *ast.WhileExpr:
		n.Cond = r.RewriteExpr(n.Cond)
		if n.Body != nil {
			r.rewriteBlock(n.Body)
		}
		return n

	case *ast.ClosureExpr:
		n.Body = r.RewriteExpr(n.Body)
		return n

	default:
		// Paths, string-like literals, bools: nothing to rewrite.
		return expr
	}
}

func (r *Rewriter) rewriteExprs(exprs []ast.Expr) {
	for i, e := range exprs {
		exprs[i] = r.RewriteExpr(e)
	}
}

// rewriteType descends into the const expressions embedded in types, such
// as array lengths.
func (r *Rewriter) rewriteType(typ ast.TypeExpr) {
	switch n := typ.(type) {
	case *ast.RefType:
		r.rewriteType(n.Elem)
	case *ast.SliceType:
		r.rewriteType(n.Elem)
	case *ast.ArrayType:
		r.rewriteType(n.Elem)
		n.Len = r.RewriteExpr(n.Len)
	case *ast.TupleType:
		for _, elem := range n.Elems {
			r.rewriteType(elem)
		}
	case *ast.PathType:
		for _, seg := range n.Segments {
			for _, arg := range seg.Args {
				if arg.Type != nil {
					r.rewriteType(arg.Type)
				}
			}
		}
	}
}
