package meow

import (
	"io"
	"os"
	"strings"
)

// Version string
const Version = "v1"

// Script is a compiled MeowLang program: source, tokens and the Program
// root. Lexing and parsing happen eagerly at construction; a *Script can
// be Run any number of times, each run starting from a fresh environment.
type Script struct {
	// Input
	name   string
	source string
	lines  []string

	// Calculation
	tokens []*Token

	// Output
	root *Program
}

// FromBytes compiles the given source under the given name. A
// whitespace-only source fails with E004; lexer and parser failures come
// back as *Error diagnostics.
func FromBytes(name string, source []byte) (*Script, error) {
	return newScript(name, string(source))
}

// FromString compiles an in-memory source under the name "<string>".
func FromString(source string) (*Script, error) {
	return newScript("<string>", source)
}

// FromFile loads a script through the default source loader and compiles
// it. An unreadable file fails with E900.
func FromFile(path string) (*Script, error) {
	data, err := DefaultLoader.Load(path)
	if err != nil {
		return nil, NewError("E900", path, 1, 1).
			WithExtra("filename", path).
			WithOrigError(err)
	}
	return FromBytes(path, data)
}

// Must is a helper which panics if a script could not be compiled. This
// is how you would use it:
//
//	var script = meow.Must(meow.FromFile("scripts/hello.miaou"))
func Must(s *Script, err error) *Script {
	if err != nil {
		panic(err)
	}
	return s
}

func newScript(name, source string) (*Script, error) {
	if strings.TrimSpace(source) == "" {
		return nil, NewError("E004", name, 1, 1)
	}

	s := &Script{
		name:   name,
		source: source,
		lines:  splitLines(source),
	}

	// Tokenize it
	tokens, err := lex(name, source)
	if err != nil {
		return nil, err
	}
	s.tokens = tokens

	// Parse it
	root, perr := newParser(name, tokens, s.lines).Parse()
	if perr != nil {
		return nil, perr
	}
	s.root = root

	return s, nil
}

// Name returns the script's name (its path, or "<string>").
func (s *Script) Name() string {
	return s.name
}

// Run executes the script against the process's standard streams. The
// final program value is discarded; the first diagnostic aborts the run
// and is returned.
func (s *Script) Run() error {
	return s.RunWithStdio(os.Stdin, os.Stdout)
}

// RunWithStdio executes the script with the given streams standing in for
// stdin and stdout. ecrire writes to stdout; the demander built-ins read
// lines from stdin.
func (s *Script) RunWithStdio(stdin io.Reader, stdout io.Writer) error {
	ctx := newExecutionContext(s, stdin, stdout)
	if _, err := s.root.Evaluate(ctx); err != nil {
		return err
	}
	return nil
}

// RunFile loads, compiles and runs the script at the given path. This is
// the one-call form the command line uses.
func RunFile(path string) error {
	s, err := FromFile(path)
	if err != nil {
		return err
	}
	return s.Run()
}
