package compiler

import (
	"fmt"
	"strings"
)

//  Statement nodes
//
// The tree is a closed set of variants with one operation: Render, which
// returns the C fragment for the node. Rendering is pure; it depends only on
// the node's fields and its children's Render output. Expressions and
// argument lists are carried as opaque strings — neither the parser nor the
// tree inspects them; they are emitted as-is.

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
	Render() string
}

// EmptyStmt renders to nothing, and a BlockStmt adds no newline after it.
// The parser never produces one; a statement that fails to parse makes Parse
// return nil instead.
type EmptyStmt struct{}

func (*EmptyStmt) stmtNode()      {}
func (*EmptyStmt) Render() string { return "" }

// BlockStmt is an ordered sequence of owned child statements.
type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) stmtNode() {}

// Render concatenates the children's renders, adding a newline after every
// child except empty ones.
func (b *BlockStmt) Render() string {
	var out strings.Builder
	for _, s := range b.Stmts {
		out.WriteString(s.Render())
		if _, empty := s.(*EmptyStmt); !empty {
			out.WriteString("\n")
		}
	}
	return out.String()
}

// Empty reports whether the block has no statements at all.
func (b *BlockStmt) Empty() bool {
	return len(b.Stmts) == 0
}

// Append adds a statement to the end of the block.
func (b *BlockStmt) Append(s Stmt) {
	b.Stmts = append(b.Stmts, s)
}

// ModuleStmt is the root of a translation unit: include directives, struct
// declarations, then function definitions. Each include directive is stored
// with its surrounding <> or "" delimiters.
type ModuleStmt struct {
	Name      string
	Includes  []string
	Structs   BlockStmt // only StructDecl children
	Functions BlockStmt // only FunctionDecl children
}

func (*ModuleStmt) stmtNode() {}

func (m *ModuleStmt) Render() string {
	var out strings.Builder
	for _, inc := range m.Includes {
		inner := inc
		if len(inner) >= 2 {
			inner = inner[1 : len(inner)-1]
		}
		fmt.Fprintf(&out, "#include <%s>\n", inner)
	}
	out.WriteString("\n")
	out.WriteString(m.Structs.Render())
	out.WriteString("\n")
	out.WriteString(m.Functions.Render())
	return out.String()
}

// FunctionDecl is a function definition. Args is the raw argument string as
// collected by the parser: comma-separated items, each item space-separated
// pieces of the form [mut] TYPE [EXT...] NAME.
type FunctionDecl struct {
	Name       string
	Args       string
	ReturnType string // source type identifier, e.g. "i32"
	Body       BlockStmt
}

func (*FunctionDecl) stmtNode() {}

func (f *FunctionDecl) Render() string {
	var out strings.Builder
	out.WriteString(BuiltinToC(BuiltinFromString(f.ReturnType)))
	out.WriteString(" ")
	out.WriteString(f.Name)
	out.WriteString("(")
	out.WriteString(renderArgs(f.Args))
	out.WriteString(") {\n")
	out.WriteString(f.Body.Render())
	out.WriteString("}\n")
	return out.String()
}

// renderArgs turns the raw argument string into a C parameter list.
// Arguments are const unless marked mut; type extensions glue directly onto
// the mapped type.
func renderArgs(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		pieces := strings.Fields(item)
		if len(pieces) == 0 {
			continue
		}

		isMutable := pieces[0] == "mut"
		if isMutable {
			pieces = pieces[1:]
		}
		if len(pieces) == 0 {
			continue
		}

		cType := BuiltinToC(BuiltinFromString(pieces[0]))
		name := pieces[len(pieces)-1]
		ext := ""
		if len(pieces) > 2 {
			ext = strings.Join(pieces[1:len(pieces)-1], "")
		}

		var arg strings.Builder
		if !isMutable {
			arg.WriteString("const ")
		}
		arg.WriteString(cType)
		arg.WriteString(ext)
		arg.WriteString(" ")
		arg.WriteString(name)
		rendered = append(rendered, arg.String())
	}
	return strings.Join(rendered, ", ")
}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition string
	Then      BlockStmt
	Else      BlockStmt
}

func (*IfStmt) stmtNode() {}

func (i *IfStmt) Render() string {
	var out strings.Builder
	out.WriteString("if (")
	out.WriteString(i.Condition)
	out.WriteString(") {\n")
	out.WriteString(i.Then.Render())
	if !i.Else.Empty() {
		out.WriteString("} else {\n")
		out.WriteString(i.Else.Render())
	}
	out.WriteString("}\n")
	return out.String()
}

// ReturnStmt returns an expression from the enclosing function.
type ReturnStmt struct {
	Expression string
}

func (*ReturnStmt) stmtNode() {}

func (r *ReturnStmt) Render() string {
	return "return " + r.Expression + ";"
}

// VariableDecl declares and initializes a single variable. Immutable
// variables get a const qualifier in C.
type VariableDecl struct {
	Mutable    bool
	Type       BuiltinType
	TypeExt    string // pointer suffix glued to the type, e.g. "*", "**"
	Name       string
	Expression string
}

func (*VariableDecl) stmtNode() {}

func (v *VariableDecl) Render() string {
	mutability := "const "
	if v.Mutable {
		mutability = ""
	}
	return mutability + BuiltinToC(v.Type) + v.TypeExt + " " + v.Name + " = " + v.Expression + ";"
}

// PlusEqualStmt is the compound assignment NAME += EXPR.
type PlusEqualStmt struct {
	Name       string
	Expression string
}

func (*PlusEqualStmt) stmtNode() {}

func (p *PlusEqualStmt) Render() string {
	return p.Name + " += " + p.Expression + ";"
}

// WhileStmt loops while its condition holds.
type WhileStmt struct {
	Condition string
	Body      BlockStmt
}

func (*WhileStmt) stmtNode() {}

func (w *WhileStmt) Render() string {
	var out strings.Builder
	out.WriteString("while (")
	out.WriteString(w.Condition)
	out.WriteString(") {\n")
	out.WriteString(w.Body.Render())
	out.WriteString("}\n")
	return out.String()
}

// ForStmt is a counted loop. Init is an owned child statement whose render
// ends in its own semicolon; Condition and Increment are inserted verbatim.
type ForStmt struct {
	Init      Stmt
	Condition string
	Increment string
	Body      BlockStmt
}

func (*ForStmt) stmtNode() {}

func (f *ForStmt) Render() string {
	var out strings.Builder
	out.WriteString("for (")
	out.WriteString(f.Init.Render())
	out.WriteString(" ")
	out.WriteString(f.Condition)
	out.WriteString("; ")
	out.WriteString(f.Increment)
	out.WriteString(") {\n")
	out.WriteString(f.Body.Render())
	out.WriteString("}\n")
	return out.String()
}

// ExprStmt is a bare expression followed by a semicolon.
type ExprStmt struct {
	Expression string
}

func (*ExprStmt) stmtNode() {}

func (e *ExprStmt) Render() string {
	return e.Expression + ";"
}

// ArrayDecl declares and initializes a fixed-size array. TypeExt carries the
// size suffix and glues onto the name, e.g. "[3]".
type ArrayDecl struct {
	Mutable  bool
	Type     BuiltinType
	TypeExt  string
	Name     string
	Elements string // comma-separated literal list
}

func (*ArrayDecl) stmtNode() {}

func (a *ArrayDecl) Render() string {
	mutability := "const "
	if a.Mutable {
		mutability = ""
	}
	return mutability + BuiltinToC(a.Type) + " " + a.Name + a.TypeExt + " = { " + a.Elements + " };"
}

// IndexAssignStmt assigns through the index operator: NAME[INDEX] = EXPR.
type IndexAssignStmt struct {
	Name       string
	Index      string
	Expression string
}

func (*IndexAssignStmt) stmtNode() {}

func (i *IndexAssignStmt) Render() string {
	return i.Name + "[" + i.Index + "] = " + i.Expression + ";"
}

// CallStmt is a function call in statement position.
type CallStmt struct {
	Name string
	Args string
}

func (*CallStmt) stmtNode() {}

func (c *CallStmt) Render() string {
	return c.Name + "(" + c.Args + ");"
}

// StructDecl declares a typedef'd struct. Each member is a fully-formed
// C-style declaration string, e.g. "int32_t x".
type StructDecl struct {
	Name    string
	Members []string
}

func (*StructDecl) stmtNode() {}

func (s *StructDecl) Render() string {
	var out strings.Builder
	out.WriteString("typedef struct ")
	out.WriteString(s.Name)
	out.WriteString(" {\n")
	for _, member := range s.Members {
		out.WriteString("    ")
		out.WriteString(member)
		out.WriteString(";\n")
	}
	out.WriteString("} ")
	out.WriteString(s.Name)
	out.WriteString(";\n")
	return out.String()
}
