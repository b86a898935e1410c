package tek

import "github.com/alecthomas/repr"

// Dump renders an AST node tree for human inspection via
// github.com/alecthomas/repr (SPEC_FULL.md §2.5). It is a pure debug
// affordance used by tests and any future driver — never part of the
// diagnostic contract.
//
// repr prints every field it's handed, so rendering a Node directly would
// surface its Span on every level and drown the structure that actually
// matters. Dump first reflects each node into an unexported "dump shadow"
// value that keeps the structural fields and drops Span/SpanVal, then
// hands that tree to repr.
func Dump(n Node) string {
	return repr.String(toDump(n), repr.Indent("  "))
}

func typeString(t *TypeExpr) string {
	if t == nil {
		return ""
	}
	return t.String()
}

func toDumpSlice(ns []Node) []interface{} {
	out := make([]interface{}, len(ns))
	for i, n := range ns {
		out[i] = toDump(n)
	}
	return out
}

type dumpProgram struct{ Body []interface{} }
type dumpVariableDecl struct {
	Name string
	Type string
	Init interface{}
}
type dumpEmptyVariableDecl struct {
	Name string
	Type string
}
type dumpFunctionDecl struct {
	Name       string
	Params     []string
	ReturnType string
	Body       []interface{}
}
type dumpClassDecl struct {
	Name     string
	Extends  string
	Static   []interface{}
	Instance []interface{}
}
type dumpImportDecl struct{ Path string }
type dumpLiteral struct {
	Kind   string
	Lexeme string
}
type dumpIdentifier struct{ Name string }
type dumpThis struct{}
type dumpSuper struct{}
type dumpUnary struct {
	Op      string
	Operand interface{}
}
type dumpBinary struct {
	Op    string
	Left  interface{}
	Right interface{}
}
type dumpWrapped struct{ Inner interface{} }
type dumpCall struct {
	Callee interface{}
	Args   []interface{}
}
type dumpIndex struct {
	Object interface{}
	Index  interface{}
}
type dumpMember struct {
	Object   interface{}
	Property string
}
type dumpNew struct {
	Object   interface{}
	TypeArgs []string
	Args     []interface{}
}
type dumpInstanceOf struct {
	Left interface{}
	Type string
}
type dumpAsync struct{ Operand interface{} }
type dumpArray struct{ Elements []interface{} }
type dumpObjectProperty struct {
	Key   string
	Value interface{}
}
type dumpObject struct{ Properties []dumpObjectProperty }
type dumpIf struct {
	Cond   interface{}
	Then   []interface{}
	ElseIf interface{}
	Else   []interface{}
}
type dumpSwitchCase struct {
	Cond interface{}
	Body []interface{}
}
type dumpSwitch struct {
	Subject interface{}
	Cases   []dumpSwitchCase
	Default []interface{}
}
type dumpFor struct {
	Var      string
	Iterable interface{}
	Body     []interface{}
}
type dumpWhile struct {
	Cond interface{}
	Body []interface{}
}
type dumpRepeat struct {
	Cond interface{}
	Body []interface{}
}
type dumpTry struct {
	Body      []interface{}
	CatchName string
	CatchBody []interface{}
	Finally   []interface{}
}
type dumpThrow struct{ Value interface{} }
type dumpReturn struct{ Value interface{} }
type dumpBreak struct{}
type dumpContinue struct{}
type dumpFallthrough struct{}
type dumpExpressionStmt struct{ Expr interface{} }

func toDump(n Node) interface{} {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *Program:
		return dumpProgram{Body: toDumpSlice(v.Body)}

	case *VariableDecl:
		return dumpVariableDecl{Name: v.Name, Type: typeString(v.Type), Init: toDump(v.Init)}
	case *EmptyVariableDecl:
		return dumpEmptyVariableDecl{Name: v.Name, Type: typeString(v.Type)}
	case *FunctionDecl:
		params := make([]string, len(v.Params))
		for i, p := range v.Params {
			params[i] = p.Name
			if p.Type != nil {
				params[i] += ": " + p.Type.String()
			}
		}
		return dumpFunctionDecl{Name: v.Name, Params: params, ReturnType: typeString(v.ReturnType), Body: toDumpSlice(v.Body)}
	case *ClassDecl:
		return dumpClassDecl{
			Name:     v.Name,
			Extends:  typeString(v.Extends),
			Static:   toDumpSlice(v.StaticBody),
			Instance: toDumpSlice(v.InstanceBody),
		}
	case *ImportDecl:
		path := ""
		for i, part := range v.Path {
			if i > 0 {
				path += "."
			}
			path += part
		}
		return dumpImportDecl{Path: path}

	case *Literal:
		return dumpLiteral{Kind: v.LiteralKind.String(), Lexeme: v.Lexeme}
	case *Identifier:
		return dumpIdentifier{Name: v.Name}
	case *This:
		return dumpThis{}
	case *Super:
		return dumpSuper{}
	case *Unary:
		return dumpUnary{Op: v.Op.String(), Operand: toDump(v.Operand)}
	case *Binary:
		return dumpBinary{Op: v.Op.String(), Left: toDump(v.Left), Right: toDump(v.Right)}
	case *Wrapped:
		return dumpWrapped{Inner: toDump(v.Inner)}
	case *Call:
		return dumpCall{Callee: toDump(v.Callee), Args: toDumpSlice(v.Args)}
	case *Index:
		return dumpIndex{Object: toDump(v.Object), Index: toDump(v.Index)}
	case *Member:
		return dumpMember{Object: toDump(v.Object), Property: v.Property}
	case *New:
		typeArgs := make([]string, len(v.TypeArgs))
		for i, t := range v.TypeArgs {
			typeArgs[i] = t.String()
		}
		return dumpNew{Object: toDump(v.Object), TypeArgs: typeArgs, Args: toDumpSlice(v.Args)}
	case *InstanceOf:
		return dumpInstanceOf{Left: toDump(v.Left), Type: v.Type.String()}
	case *Async:
		return dumpAsync{Operand: toDump(v.Operand)}
	case *Array:
		return dumpArray{Elements: toDumpSlice(v.Elements)}
	case *Object:
		props := make([]dumpObjectProperty, len(v.Properties))
		for i, p := range v.Properties {
			props[i] = dumpObjectProperty{Key: p.Key, Value: toDump(p.Value)}
		}
		return dumpObject{Properties: props}

	case *If:
		var elseIf interface{}
		if v.ElseIf != nil {
			elseIf = toDump(v.ElseIf)
		}
		return dumpIf{Cond: toDump(v.Cond), Then: toDumpSlice(v.Then), ElseIf: elseIf, Else: toDumpSlice(v.Else)}
	case *Switch:
		cases := make([]dumpSwitchCase, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = dumpSwitchCase{Cond: toDump(c.Cond), Body: toDumpSlice(c.Body)}
		}
		return dumpSwitch{Subject: toDump(v.Subject), Cases: cases, Default: toDumpSlice(v.Default)}
	case *For:
		return dumpFor{Var: v.Var, Iterable: toDump(v.Iterable), Body: toDumpSlice(v.Body)}
	case *While:
		return dumpWhile{Cond: toDump(v.Cond), Body: toDumpSlice(v.Body)}
	case *Repeat:
		return dumpRepeat{Cond: toDump(v.Cond), Body: toDumpSlice(v.Body)}
	case *Try:
		return dumpTry{Body: toDumpSlice(v.Body), CatchName: v.CatchName, CatchBody: toDumpSlice(v.CatchBody), Finally: toDumpSlice(v.Finally)}
	case *Throw:
		return dumpThrow{Value: toDump(v.Value)}
	case *Return:
		return dumpReturn{Value: toDump(v.Value)}
	case *Break:
		return dumpBreak{}
	case *Continue:
		return dumpContinue{}
	case *Fallthrough:
		return dumpFallthrough{}
	case *ExpressionStmt:
		return dumpExpressionStmt{Expr: toDump(v.Expr)}

	default:
		return n
	}
}
