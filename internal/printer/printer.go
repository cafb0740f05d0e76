package printer

import (
	"io"
	"strings"

	"github.com/Andlon/numeric-literals/internal/ast"
	"github.com/Andlon/numeric-literals/internal/lexer"
)

// The printer emits canonically formatted source from the AST. Grouping
// parentheses are not represented as nodes; they are re-inserted here
// whenever a child expression binds more loosely than its context
// requires.

const indentUnit = "    "

// Print renders a file to a string.
func Print(file *ast.File) string {
	var sb strings.Builder
	p := &printer{out: &sb}
	p.printFile(file)
	return sb.String()
}

// Fprint renders a file to the given writer.
func Fprint(w io.Writer, file *ast.File) error {
	p := &printer{out: &strings.Builder{}}
	p.printFile(file)
	_, err := io.WriteString(w, p.out.String())
	return err
}

// PrintExpr renders a single expression on one line.
func PrintExpr(expr ast.Expr) string {
	var sb strings.Builder
	p := &printer{out: &sb}
	p.printExpr(expr, precLowest)
	return sb.String()
}

// PrintItem renders a single item.
func PrintItem(item ast.Item) string {
	var sb strings.Builder
	p := &printer{out: &sb}
	p.printItem(item)
	return sb.String()
}

// PrintType renders a type expression.
func PrintType(typ ast.TypeExpr) string {
	var sb strings.Builder
	p := &printer{out: &sb}
	p.printType(typ)
	return sb.String()
}

// Expression binding powers, mirroring how the parser groups operators.
const (
	precLowest = iota
	precAssign
	precRange
	precOr
	precAnd
	precEquality
	precComparison
	precSum
	precProduct
	precCast
	precPrefix
	precPostfix
	precAtom
)

var infixPrec = map[lexer.TokenType]int{
	lexer.DOTDOT:   precRange,
	lexer.OR:       precOr,
	lexer.AND:      precAnd,
	lexer.EQ:       precEquality,
	lexer.NOT_EQ:   precEquality,
	lexer.LT:       precComparison,
	lexer.LE:       precComparison,
	lexer.GT:       precComparison,
	lexer.GE:       precComparison,
	lexer.PLUS:     precSum,
	lexer.MINUS:    precSum,
	lexer.ASTERISK: precProduct,
	lexer.SLASH:    precProduct,
	lexer.PERCENT:  precProduct,
}

type printer struct {
	out    *strings.Builder
	indent int
}

func (p *printer) write(s string) {
	p.out.WriteString(s)
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.write(indentUnit)
	}
}

func (p *printer) newline() {
	p.write("\n")
}

func (p *printer) printFile(file *ast.File) {
	for i, item := range file.Items {
		if i > 0 {
			p.newline()
		}
		p.printItem(item)
		p.newline()
	}
}

func (p *printer) printItem(item ast.Item) {
	switch n := item.(type) {
	case *ast.FnDecl:
		p.printFnDecl(n)
	case *ast.TraitDecl:
		p.printTraitDecl(n)
	case *ast.ImplDecl:
		p.printImplDecl(n)
	}
}

func (p *printer) printAttrs(attrs []*ast.Attribute) {
	for _, attr := range attrs {
		p.writeIndent()
		p.write("#[")
		p.write(attr.Name.Name)
		if attr.Raw != "" || len(attr.Tokens) > 0 {
			p.write("(")
			p.write(attr.Raw)
			p.write(")")
		}
		p.write("]")
		p.newline()
	}
}

func (p *printer) printFnDecl(decl *ast.FnDecl) {
	p.printAttrs(decl.Attrs)
	p.writeIndent()
	p.write("fn ")
	p.write(decl.Name.Name)
	p.printGenericParams(decl.Generics)

	p.write("(")
	for i, param := range decl.Params {
		if i > 0 {
			p.write(", ")
		}
		p.printParam(param)
	}
	p.write(")")

	if decl.ReturnType != nil {
		p.write(" -> ")
		p.printType(decl.ReturnType)
	}

	if decl.Where != nil {
		p.newline()
		p.writeIndent()
		p.write("where")
		p.newline()
		for _, pred := range decl.Where.Preds {
			p.writeIndent()
			p.write(indentUnit)
			p.printType(pred.Target)
			p.write(": ")
			p.printBounds(pred.Bounds)
			p.write(",")
			p.newline()
		}
		p.writeIndent()
	} else if decl.Body != nil {
		p.write(" ")
	}

	if decl.Body == nil {
		p.write(";")
		return
	}

	p.printBlock(decl.Body)
}

func (p *printer) printParam(param *ast.Param) {
	if param.Ref {
		p.write("&")
	}
	if param.Mut {
		p.write("mut ")
	}
	p.write(param.Name.Name)
	if param.Type != nil {
		p.write(": ")
		p.printType(param.Type)
	}
}

func (p *printer) printGenericParams(generics *ast.GenericParams) {
	if generics == nil {
		return
	}
	p.write("<")
	for i, param := range generics.Params {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Name.Name)
		if len(param.Bounds) > 0 {
			p.write(": ")
			p.printBounds(param.Bounds)
		}
	}
	p.write(">")
}

func (p *printer) printBounds(bounds []ast.TypeExpr) {
	for i, bound := range bounds {
		if i > 0 {
			p.write(" + ")
		}
		p.printType(bound)
	}
}

func (p *printer) printTraitDecl(decl *ast.TraitDecl) {
	p.printAttrs(decl.Attrs)
	p.writeIndent()
	p.write("trait ")
	p.write(decl.Name.Name)
	p.printGenericParams(decl.Generics)
	p.write(" {")
	p.newline()

	p.indent++
	for i, method := range decl.Methods {
		if i > 0 {
			p.newline()
		}
		p.printFnDecl(method)
		p.newline()
	}
	p.indent--

	p.writeIndent()
	p.write("}")
}

func (p *printer) printImplDecl(decl *ast.ImplDecl) {
	p.printAttrs(decl.Attrs)
	p.writeIndent()
	p.write("impl")
	p.printGenericParams(decl.Generics)
	p.write(" ")
	if decl.Trait != nil {
		p.printType(decl.Trait)
		p.write(" for ")
	}
	p.printType(decl.Target)

	if decl.Where != nil {
		p.newline()
		p.writeIndent()
		p.write("where")
		p.newline()
		for _, pred := range decl.Where.Preds {
			p.writeIndent()
			p.write(indentUnit)
			p.printType(pred.Target)
			p.write(": ")
			p.printBounds(pred.Bounds)
			p.write(",")
			p.newline()
		}
		p.writeIndent()
	} else {
		p.write(" ")
	}

	p.write("{")
	p.newline()

	p.indent++
	for i, method := range decl.Methods {
		if i > 0 {
			p.newline()
		}
		p.printFnDecl(method)
		p.newline()
	}
	p.indent--

	p.writeIndent()
	p.write("}")
}

func (p *printer) printType(typ ast.TypeExpr) {
	switch n := typ.(type) {
	case *ast.PathType:
		p.printSegments(n.Segments, false)

	case *ast.RefType:
		p.write("&")
		if n.Mut {
			p.write("mut ")
		}
		p.printType(n.Elem)

	case *ast.SliceType:
		p.write("[")
		p.printType(n.Elem)
		p.write("]")

	case *ast.ArrayType:
		p.write("[")
		p.printType(n.Elem)
		p.write("; ")
		p.printExpr(n.Len, precLowest)
		p.write("]")

	case *ast.TupleType:
		p.write("(")
		for i, elem := range n.Elems {
			if i > 0 {
				p.write(", ")
			}
			p.printType(elem)
		}
		if len(n.Elems) == 1 {
			p.write(",")
		}
		p.write(")")
	}
}

// printSegments renders a :: separated path. In expression position the
// generic arguments need the turbofish form (T::<f64>::from).
func (p *printer) printSegments(segments []*ast.PathSegment, turbofish bool) {
	for i, seg := range segments {
		if i > 0 {
			p.write("::")
		}
		p.write(seg.Name.Name)
		if len(seg.Args) > 0 {
			if turbofish {
				p.write("::")
			}
			p.write("<")
			for j, arg := range seg.Args {
				if j > 0 {
					p.write(", ")
				}
				if arg.Name != nil {
					p.write(arg.Name.Name)
					p.write(" = ")
				}
				p.printType(arg.Type)
			}
			p.write(">")
		}
	}
}

// printExpr renders expr, wrapping it in parentheses when its binding
// power is below what the surrounding context requires.
func (p *printer) printExpr(expr ast.Expr, ctx int) {
	if exprPrec(expr) < ctx {
		p.write("(")
		p.printExprInner(expr)
		p.write(")")
		return
	}
	p.printExprInner(expr)
}

func exprPrec(expr ast.Expr) int {
	switch n := expr.(type) {
	case *ast.AssignExpr:
		return precAssign
	case *ast.InfixExpr:
		if prec, ok := infixPrec[n.Op]; ok {
			return prec
		}
		return precLowest
	case *ast.CastExpr:
		return precCast
	case *ast.PrefixExpr:
		return precPrefix
	case *ast.CallExpr, *ast.MethodCallExpr, *ast.FieldExpr, *ast.IndexExpr, *ast.TryExpr:
		return precPostfix
	case *ast.ClosureExpr:
		return precLowest
	default:
		return precAtom
	}
}

func (p *printer) printExprInner(expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.PathExpr:
		p.printSegments(n.Segments, true)

	case *ast.IntLit:
		p.write(n.Text)

	case *ast.FloatLit:
		p.write(n.Text)

	case *ast.StringLit:
		p.write(n.Raw)

	case *ast.RawStringLit:
		p.write(n.Raw)

	case *ast.ByteStringLit:
		p.write(n.Raw)

	case *ast.ByteLit:
		p.write(n.Raw)

	case *ast.CharLit:
		p.write(n.Raw)

	case *ast.BoolLit:
		if n.Value {
			p.write("true")
		} else {
			p.write("false")
		}

	case *ast.PrefixExpr:
		switch n.Op {
		case lexer.REF_MUT:
			p.write("&mut ")
		default:
			p.write(string(n.Op))
		}
		p.printExpr(n.Expr, precPrefix)

	case *ast.InfixExpr:
		prec := exprPrec(n)
		p.printExpr(n.Left, prec)
		if n.Op == lexer.DOTDOT {
			p.write("..")
		} else {
			p.write(" " + string(n.Op) + " ")
		}
		p.printExpr(n.Right, prec+1)

	case *ast.AssignExpr:
		p.printExpr(n.Target, precAssign+1)
		p.write(" = ")
		p.printExpr(n.Value, precAssign)

	case *ast.CastExpr:
		p.printExpr(n.Expr, precCast)
		p.write(" as ")
		p.printType(n.Type)

	case *ast.CallExpr:
		p.printExpr(n.Callee, precPostfix)
		p.write("(")
		p.printExprList(n.Args)
		p.write(")")

	case *ast.MethodCallExpr:
		p.printExpr(n.Receiver, precPostfix)
		p.write(".")
		p.write(n.Method.Name)
		p.write("(")
		p.printExprList(n.Args)
		p.write(")")

	case *ast.FieldExpr:
		p.printExpr(n.Target, precPostfix)
		p.write(".")
		p.write(n.Field.Name)

	case *ast.IndexExpr:
		p.printExpr(n.Target, precPostfix)
		p.write("[")
		p.printExpr(n.Index, precLowest)
		p.write("]")

	case *ast.TryExpr:
		p.printExpr(n.Expr, precPostfix)
		p.write("?")

	case *ast.ArrayLit:
		p.write("[")
		p.printExprList(n.Elems)
		p.write("]")

	case *ast.RepeatLit:
		p.write("[")
		p.printExpr(n.Elem, precLowest)
		p.write("; ")
		p.printExpr(n.Len, precLowest)
		p.write("]")

	case *ast.TupleLit:
		p.write("(")
		p.printExprList(n.Elems)
		if len(n.Elems) == 1 {
			p.write(",")
		}
		p.write(")")

	case *ast.StructLit:
		p.printExprInner(n.Path)
		p.write(" {")
		for i, field := range n.Fields {
			if i > 0 {
				p.write(",")
			}
			p.write(" ")
			p.write(field.Name.Name)
			p.write(": ")
			p.printExpr(field.Value, precLowest)
		}
		p.write(" }")

	case *ast.BlockExpr:
		p.printBlock(n)

	case *ast.IfExpr:
		p.printIf(n)

	case *ast.WhileExpr:
		p.write("while ")
		p.printExpr(n.Cond, precLowest)
		p.write(" ")
		p.printBlock(n.Body)

	case *ast.ClosureExpr:
		p.write("|")
		for i, param := range n.Params {
			if i > 0 {
				p.write(", ")
			}
			p.printParam(param)
		}
		p.write("| ")
		p.printExpr(n.Body, precLowest)

	case *ast.MacroExpr:
		for i, ident := range n.Path {
			if i > 0 {
				p.write("::")
			}
			p.write(ident.Name)
		}
		p.write("!")
		p.write(string(n.Delim))
		p.write(n.Raw)
		p.write(string(closingFor(n.Delim)))
	}
}

func (p *printer) printExprList(exprs []ast.Expr) {
	for i, expr := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(expr, precLowest)
	}
}

func (p *printer) printIf(expr *ast.IfExpr) {
	p.write("if ")
	p.printExpr(expr.Cond, precLowest)
	p.write(" ")
	p.printBlock(expr.Then)
	if expr.Else != nil {
		p.write(" else ")
		switch els := expr.Else.(type) {
		case *ast.IfExpr:
			p.printIf(els)
		case *ast.BlockExpr:
			p.printBlock(els)
		}
	}
}

func (p *printer) printBlock(block *ast.BlockExpr) {
	if len(block.Stmts) == 0 && block.Tail == nil {
		p.write("{}")
		return
	}

	p.write("{")
	p.newline()

	p.indent++
	for _, stmt := range block.Stmts {
		p.printStmt(stmt)
	}
	if block.Tail != nil {
		p.writeIndent()
		p.printExpr(block.Tail, precLowest)
		p.newline()
	}
	p.indent--

	p.writeIndent()
	p.write("}")
}

func (p *printer) printStmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.LetStmt:
		p.writeIndent()
		p.write("let ")
		if n.Mut {
			p.write("mut ")
		}
		p.write(n.Name.Name)
		if n.Type != nil {
			p.write(": ")
			p.printType(n.Type)
		}
		p.write(" = ")
		p.printExpr(n.Value, precLowest)
		p.write(";")
		p.newline()

	case *ast.ReturnStmt:
		p.writeIndent()
		if n.Value == nil {
			p.write("return;")
		} else {
			p.write("return ")
			p.printExpr(n.Value, precLowest)
			p.write(";")
		}
		p.newline()

	case *ast.ExprStmt:
		p.writeIndent()
		p.printExpr(n.Expr, precLowest)
		if n.Semi {
			p.write(";")
		}
		p.newline()

	case *ast.ItemStmt:
		p.printItem(n.Item)
		p.newline()
	}
}

func closingFor(open lexer.TokenType) lexer.TokenType {
	switch open {
	case lexer.LPAREN:
		return lexer.RPAREN
	case lexer.LBRACKET:
		return lexer.RBRACKET
	default:
		return lexer.RBRACE
	}
}
