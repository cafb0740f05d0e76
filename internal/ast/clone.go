package ast

// CloneExpr returns a deep copy of an expression tree. Replacement templates
// are cloned before every substitution so that multiple literals rewritten
// by one template never share nodes.
func CloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}

	switch n := e.(type) {
	case *PathExpr:
		return &PathExpr{Segments: cloneSegments(n.Segments), span: n.span}

	case *IntLit:
		out := *n
		return &out

	case *FloatLit:
		out := *n
		return &out

	case *StringLit:
		out := *n
		return &out

	case *RawStringLit:
		out := *n
		return &out

	case *ByteStringLit:
		out := *n
		return &out

	case *ByteLit:
		out := *n
		return &out

	case *CharLit:
		out := *n
		return &out

	case *BoolLit:
		out := *n
		return &out

	case *PrefixExpr:
		return &PrefixExpr{Op: n.Op, Expr: CloneExpr(n.Expr), span: n.span}

	case *InfixExpr:
		return &InfixExpr{Op: n.Op, Left: CloneExpr(n.Left), Right: CloneExpr(n.Right), span: n.span}

	case *AssignExpr:
		return &AssignExpr{Target: CloneExpr(n.Target), Value: CloneExpr(n.Value), span: n.span}

	case *CallExpr:
		return &CallExpr{Callee: CloneExpr(n.Callee), Args: cloneExprs(n.Args), span: n.span}

	case *MethodCallExpr:
		return &MethodCallExpr{
			Receiver: CloneExpr(n.Receiver),
			Method:   cloneIdent(n.Method),
			Args:     cloneExprs(n.Args),
			span:     n.span,
		}

	case *FieldExpr:
		return &FieldExpr{Target: CloneExpr(n.Target), Field: cloneIdent(n.Field), span: n.span}

	case *IndexExpr:
		return &IndexExpr{Target: CloneExpr(n.Target), Index: CloneExpr(n.Index), span: n.span}

	case *CastExpr:
		return &CastExpr{Expr: CloneExpr(n.Expr), Type: cloneType(n.Type), span: n.span}

	case *TryExpr:
		return &TryExpr{Expr: CloneExpr(n.Expr), span: n.span}

	case *ArrayLit:
		return &ArrayLit{Elems: cloneExprs(n.Elems), span: n.span}

	case *RepeatLit:
		return &RepeatLit{Elem: CloneExpr(n.Elem), Len: CloneExpr(n.Len), span: n.span}

	case *TupleLit:
		return &TupleLit{Elems: cloneExprs(n.Elems), span: n.span}

	case *StructLit:
		out := &StructLit{span: n.span}
		if n.Path != nil {
			out.Path = CloneExpr(n.Path).(*PathExpr)
		}
		for _, field := range n.Fields {
			out.Fields = append(out.Fields, &FieldInit{
				Name:  cloneIdent(field.Name),
				Value: CloneExpr(field.Value),
				span:  field.span,
			})
		}
		return out

	case *BlockExpr:
		return cloneBlock(n)

	case *IfExpr:
		out := &IfExpr{Cond: CloneExpr(n.Cond), span: n.span}
		if n.Then != nil {
			out.Then = cloneBlock(n.Then)
		}
		out.Else = CloneExpr(n.Else)
		return out

	case *WhileExpr:
		out := &WhileExpr{Cond: CloneExpr(n.Cond), span: n.span}
		if n.Body != nil {
			out.Body = cloneBlock(n.Body)
		}
		return out

	case *ClosureExpr:
		return &ClosureExpr{Params: cloneParams(n.Params), Body: CloneExpr(n.Body), span: n.span}

	case *MacroExpr:
		out := &MacroExpr{Delim: n.Delim, Raw: n.Raw, span: n.span}
		for _, ident := range n.Path {
			out.Path = append(out.Path, cloneIdent(ident))
		}
		out.Tokens = append(out.Tokens, n.Tokens...)
		return out

	default:
		// The expression set is closed; reaching this is a logic defect.
		panic("ast: CloneExpr on unknown expression kind")
	}
}

func cloneExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = CloneExpr(e)
	}
	return out
}

func cloneIdent(ident *Ident) *Ident {
	if ident == nil {
		return nil
	}
	out := *ident
	return &out
}

func cloneBlock(block *BlockExpr) *BlockExpr {
	out := &BlockExpr{span: block.span}
	for _, stmt := range block.Stmts {
		out.Stmts = append(out.Stmts, cloneStmt(stmt))
	}
	out.Tail = CloneExpr(block.Tail)
	return out
}

func cloneStmt(stmt Stmt) Stmt {
	switch n := stmt.(type) {
	case *LetStmt:
		return &LetStmt{
			Mut:   n.Mut,
			Name:  cloneIdent(n.Name),
			Type:  cloneType(n.Type),
			Value: CloneExpr(n.Value),
			span:  n.span,
		}
	case *ReturnStmt:
		return &ReturnStmt{Value: CloneExpr(n.Value), span: n.span}
	case *ExprStmt:
		return &ExprStmt{Expr: CloneExpr(n.Expr), Semi: n.Semi, span: n.span}
	case *ItemStmt:
		// Nested items inside templates are not supported; share the node.
		return &ItemStmt{Item: n.Item, span: n.span}
	default:
		panic("ast: cloneStmt on unknown statement kind")
	}
}

func cloneParams(params []*Param) []*Param {
	if params == nil {
		return nil
	}
	out := make([]*Param, len(params))
	for i, p := range params {
		out[i] = &Param{
			Ref:  p.Ref,
			Mut:  p.Mut,
			Name: cloneIdent(p.Name),
			Type: cloneType(p.Type),
			span: p.span,
		}
	}
	return out
}

func cloneSegments(segments []*PathSegment) []*PathSegment {
	if segments == nil {
		return nil
	}
	out := make([]*PathSegment, len(segments))
	for i, seg := range segments {
		cloned := &PathSegment{Name: cloneIdent(seg.Name), span: seg.span}
		for _, arg := range seg.Args {
			cloned.Args = append(cloned.Args, &TypeArg{
				Name: cloneIdent(arg.Name),
				Type: cloneType(arg.Type),
				span: arg.span,
			})
		}
		out[i] = cloned
	}
	return out
}

func cloneType(t TypeExpr) TypeExpr {
	if t == nil {
		return nil
	}

	switch n := t.(type) {
	case *PathType:
		return &PathType{Segments: cloneSegments(n.Segments), span: n.span}
	case *RefType:
		return &RefType{Mut: n.Mut, Elem: cloneType(n.Elem), span: n.span}
	case *SliceType:
		return &SliceType{Elem: cloneType(n.Elem), span: n.span}
	case *ArrayType:
		return &ArrayType{Elem: cloneType(n.Elem), Len: CloneExpr(n.Len), span: n.span}
	case *TupleType:
		out := &TupleType{span: n.span}
		for _, elem := range n.Elems {
			out.Elems = append(out.Elems, cloneType(elem))
		}
		return out
	default:
		panic("ast: cloneType on unknown type kind")
	}
}
