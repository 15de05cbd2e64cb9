package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRender(t *testing.T) {
	assert.Equal(t, "", (&EmptyStmt{}).Render())
}

func TestBlockRender(t *testing.T) {
	tests := []struct {
		name     string
		block    BlockStmt
		expected string
	}{
		{
			name:     "Empty",
			block:    BlockStmt{},
			expected: "",
		},
		{
			name: "SingleChild",
			block: BlockStmt{Stmts: []Stmt{
				&ReturnStmt{Expression: "0"},
			}},
			expected: "return 0;\n",
		},
		{
			name: "OrderPreserved",
			block: BlockStmt{Stmts: []Stmt{
				&ExprStmt{Expression: "first()"},
				&ExprStmt{Expression: "second()"},
			}},
			expected: "first();\nsecond();\n",
		},
		{
			name: "NoNewlineAfterEmptyChildren",
			block: BlockStmt{Stmts: []Stmt{
				&EmptyStmt{},
				&ReturnStmt{Expression: "1"},
				&EmptyStmt{},
			}},
			expected: "return 1;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.block.Render())
		})
	}
}

// A block's render is exactly the concatenation of its children's renders
// with "\n" inserted after each non-empty child.
func TestBlockComposition(t *testing.T) {
	children := []Stmt{
		&ReturnStmt{Expression: "0"},
		&EmptyStmt{},
		&PlusEqualStmt{Name: "x", Expression: "1"},
	}
	block := BlockStmt{Stmts: children}

	var want strings.Builder
	for _, c := range children {
		want.WriteString(c.Render())
		if _, empty := c.(*EmptyStmt); !empty {
			want.WriteString("\n")
		}
	}
	assert.Equal(t, want.String(), block.Render())
}

func TestBlockEmpty(t *testing.T) {
	assert.True(t, (&BlockStmt{}).Empty())
	assert.False(t, (&BlockStmt{Stmts: []Stmt{&EmptyStmt{}}}).Empty())
}

func TestVariableRender(t *testing.T) {
	immutable := VariableDecl{Type: TypeI32, Name: "x", Expression: "42"}
	assert.Equal(t, "const int32_t x = 42;", immutable.Render())

	mutable := VariableDecl{Mutable: true, Type: TypeI32, Name: "x", Expression: "42"}
	assert.Equal(t, "int32_t x = 42;", mutable.Render())

	pointer := VariableDecl{Type: TypeU8, TypeExt: "**", Name: "p", Expression: "q"}
	assert.Equal(t, "const uint8_t** p = q;", pointer.Render())
}

func TestIfRender(t *testing.T) {
	withElse := IfStmt{
		Condition: "x == 0",
		Then:      BlockStmt{Stmts: []Stmt{&ReturnStmt{Expression: "1"}}},
		Else:      BlockStmt{Stmts: []Stmt{&ReturnStmt{Expression: "2"}}},
	}
	assert.Equal(t, "if (x == 0) {\nreturn 1;\n} else {\nreturn 2;\n}\n", withElse.Render())

	withoutElse := IfStmt{
		Condition: "x == 0",
		Then:      BlockStmt{Stmts: []Stmt{&ReturnStmt{Expression: "1"}}},
	}
	assert.Equal(t, "if (x == 0) {\nreturn 1;\n}\n", withoutElse.Render())
}

func TestReturnRender(t *testing.T) {
	r := ReturnStmt{Expression: "a + b"}
	assert.Equal(t, "return a + b;", r.Render())
}

func TestPlusEqualRender(t *testing.T) {
	p := PlusEqualStmt{Name: "total", Expression: "i * 2"}
	assert.Equal(t, "total += i * 2;", p.Render())
}

func TestWhileRender(t *testing.T) {
	w := WhileStmt{
		Condition: "i < 10",
		Body:      BlockStmt{Stmts: []Stmt{&PlusEqualStmt{Name: "i", Expression: "1"}}},
	}
	assert.Equal(t, "while (i < 10) {\ni += 1;\n}\n", w.Render())
}

func TestForRender(t *testing.T) {
	f := ForStmt{
		Init:      &VariableDecl{Mutable: true, Type: TypeI32, Name: "i", Expression: "0"},
		Condition: "i < 10",
		Increment: "i += 1",
		Body:      BlockStmt{Stmts: []Stmt{&PlusEqualStmt{Name: "total", Expression: "i"}}},
	}
	assert.Equal(t,
		"for (int32_t i = 0; i < 10; i += 1) {\ntotal += i;\n}\n",
		f.Render())
}

func TestExprStmtRender(t *testing.T) {
	e := ExprStmt{Expression: "x + 1"}
	assert.Equal(t, "x + 1;", e.Render())
}

func TestArrayRender(t *testing.T) {
	immutable := ArrayDecl{Type: TypeI32, TypeExt: "[3]", Name: "xs", Elements: "1, 2, 3"}
	assert.Equal(t, "const int32_t xs[3] = { 1, 2, 3 };", immutable.Render())

	mutable := ArrayDecl{Mutable: true, Type: TypeU8, TypeExt: "[2]", Name: "bs", Elements: "0, 255"}
	assert.Equal(t, "uint8_t bs[2] = { 0, 255 };", mutable.Render())
}

func TestIndexAssignRender(t *testing.T) {
	i := IndexAssignStmt{Name: "xs", Index: "i + 1", Expression: "0"}
	assert.Equal(t, "xs[i + 1] = 0;", i.Render())
}

func TestCallRender(t *testing.T) {
	c := CallStmt{Name: "printf", Args: `"%d", x`}
	assert.Equal(t, `printf("%d", x);`, c.Render())

	noArgs := CallStmt{Name: "tick"}
	assert.Equal(t, "tick();", noArgs.Render())
}

func TestStructRender(t *testing.T) {
	s := StructDecl{Name: "Point", Members: []string{"int32_t x", "int32_t y"}}
	assert.Equal(t,
		"typedef struct Point {\n    int32_t x;\n    int32_t y;\n} Point;\n",
		s.Render())
}

func TestFunctionRender(t *testing.T) {
	tests := []struct {
		name     string
		fn       FunctionDecl
		expected string
	}{
		{
			name: "NoArgs",
			fn: FunctionDecl{
				Name:       "main",
				ReturnType: "i32",
				Body:       BlockStmt{Stmts: []Stmt{&ReturnStmt{Expression: "0"}}},
			},
			expected: "int32_t main() {\nreturn 0;\n}\n",
		},
		{
			name: "ImmutableArgsGetConst",
			fn: FunctionDecl{
				Name:       "add",
				Args:       " i32 a , i32 b",
				ReturnType: "i32",
				Body:       BlockStmt{Stmts: []Stmt{&ReturnStmt{Expression: "a + b"}}},
			},
			expected: "int32_t add(const int32_t a, const int32_t b) {\nreturn a + b;\n}\n",
		},
		{
			name: "MutableArgSkipsConst",
			fn: FunctionDecl{
				Name:       "bump",
				Args:       " mut i32 * counter",
				ReturnType: "none",
				Body:       BlockStmt{},
			},
			expected: "void bump(int32_t* counter) {\n}\n",
		},
		{
			name: "MixedMutability",
			fn: FunctionDecl{
				Name:       "copy",
				Args:       " mut u8 * dst , u8 * src , u64 n",
				ReturnType: "none",
				Body:       BlockStmt{},
			},
			expected: "void copy(uint8_t* dst, const uint8_t* src, const uint64_t n) {\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn.Render())
		})
	}
}

func TestModuleRender(t *testing.T) {
	module := ModuleStmt{
		Name:     "main",
		Includes: []string{"<stdio.h>"},
		Functions: BlockStmt{Stmts: []Stmt{
			&FunctionDecl{
				Name:       "main",
				ReturnType: "i32",
				Body:       BlockStmt{Stmts: []Stmt{&ReturnStmt{Expression: "0"}}},
			},
		}},
	}

	out := module.Render()
	require.True(t, strings.HasPrefix(out, "#include <stdio.h>\n\n"),
		"output must start with the include block: %q", out)
	assert.Equal(t,
		"#include <stdio.h>\n"+
			"\n"+
			"\n"+
			"int32_t main() {\nreturn 0;\n}\n"+
			"\n",
		out)
}

// The directive keeps its wrapper characters in the tree; render strips the
// outer pair regardless of which quoting style the source used.
func TestModuleIncludeStripping(t *testing.T) {
	module := ModuleStmt{Includes: []string{"<stdint.h>", `"local.h"`}}
	out := module.Render()
	assert.Contains(t, out, "#include <stdint.h>\n")
	assert.Contains(t, out, "#include <local.h>\n")
}

func TestModuleSectionOrder(t *testing.T) {
	module := ModuleStmt{
		Includes: []string{"<stdint.h>"},
		Structs: BlockStmt{Stmts: []Stmt{
			&StructDecl{Name: "P", Members: []string{"int32_t v"}},
		}},
		Functions: BlockStmt{Stmts: []Stmt{
			&FunctionDecl{Name: "main", ReturnType: "i32",
				Body: BlockStmt{Stmts: []Stmt{&ReturnStmt{Expression: "0"}}}},
		}},
	}

	out := module.Render()
	includeAt := strings.Index(out, "#include <stdint.h>")
	structAt := strings.Index(out, "typedef struct P")
	fnAt := strings.Index(out, "int32_t main()")
	require.NotEqual(t, -1, includeAt)
	require.NotEqual(t, -1, structAt)
	require.NotEqual(t, -1, fnAt)
	assert.Less(t, includeAt, structAt)
	assert.Less(t, structAt, fnAt)
}
