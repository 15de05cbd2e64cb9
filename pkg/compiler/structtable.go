package compiler

// structTable tracks the struct names a module has declared so far. The
// transpiler does no real symbol resolution, but duplicate typedefs would
// make the emitted C uncompilable, so the parser rejects them here.
type structTable struct {
	declared map[string]*StructDecl
	order    []string
}

func newStructTable() *structTable {
	return &structTable{declared: make(map[string]*StructDecl)}
}

// Define registers a struct declaration. It returns false when the name is
// already taken.
func (t *structTable) Define(decl *StructDecl) bool {
	if _, exists := t.declared[decl.Name]; exists {
		return false
	}
	t.declared[decl.Name] = decl
	t.order = append(t.order, decl.Name)
	return true
}

// Defined reports whether a struct with the given name has been declared.
func (t *structTable) Defined(name string) bool {
	_, ok := t.declared[name]
	return ok
}

// Names returns the declared struct names in declaration order.
func (t *structTable) Names() []string {
	return t.order
}
