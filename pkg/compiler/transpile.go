// Package compiler translates dead_lang source text into a single C
// translation unit.
//
// Pipeline: source text → Lex → Parse → statement tree → Render → C source
package compiler

// Transpile runs the whole pipeline over one source file. On failure the
// returned error is the *Supervisor carrying every collected diagnostic;
// callers that want pretty output can type-assert and Dump it.
func Transpile(src string) (string, error) {
	supervisor := NewSupervisor(src)

	tokens := Lex(src, supervisor)
	if supervisor.HasErrors() {
		return "", supervisor
	}

	module := Parse(tokens, supervisor)
	if supervisor.HasErrors() || module == nil {
		return "", supervisor
	}

	return module.Render(), nil
}
