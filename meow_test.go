package meow

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.

func TestScenarios(t *testing.T) { TestingT(t) }

type ScenarioSuite struct{}

var _ = Suite(&ScenarioSuite{})

// run compiles and executes a program with empty stdin and returns its
// stdout.
func (s *ScenarioSuite) run(c *C, source string) string {
	script, err := FromString(source)
	c.Assert(err, IsNil)

	var out bytes.Buffer
	c.Assert(script.RunWithStdio(strings.NewReader(""), &out), IsNil)
	return out.String()
}

// diag compiles and executes a program and returns the diagnostic it must
// fail with.
func (s *ScenarioSuite) diag(c *C, source string) *Error {
	script, err := FromString(source)
	if err != nil {
		diag, ok := err.(*Error)
		c.Assert(ok, Equals, true)
		return diag
	}

	var out bytes.Buffer
	runErr := script.RunWithStdio(strings.NewReader(""), &out)
	c.Assert(runErr, NotNil)
	diag, ok := runErr.(*Error)
	c.Assert(ok, Equals, true)
	return diag
}

func (s *ScenarioSuite) TestHello(c *C) {
	c.Check(s.run(c, "miaou\necrire \"bonjour\"\nmeow"), Equals, "bonjour\n")
}

func (s *ScenarioSuite) TestArithmetic(c *C) {
	c.Check(s.run(c, "miaou\nx = 2 + 3 * 4\necrire x\nmeow"), Equals, "14\n")
}

func (s *ScenarioSuite) TestRepeatCounter(c *C) {
	c.Check(s.run(c, "miaou\nrepeter 3 fois:\n    ecrire compteur\nmeow"), Equals, "1\n2\n3\n")
}

func (s *ScenarioSuite) TestIfElse(c *C) {
	source := "miaou\nsi 5 > 3 alors:\n    ecrire \"oui\"\nsinon:\n    ecrire \"non\"\nmeow"
	c.Check(s.run(c, source), Equals, "oui\n")
}

func (s *ScenarioSuite) TestFunction(c *C) {
	source := "miaou\nfonction carre(n):\n    retour n * n\necrire carre(4)\nmeow"
	c.Check(s.run(c, source), Equals, "16\n")
}

func (s *ScenarioSuite) TestTryExcept(c *C) {
	source := "miaou\nessayer:\n    ecrire 10 / 0\nsauf erreur:\n    ecrire \"sauvé\"\nmeow"
	c.Check(s.run(c, source), Equals, "sauvé\n")
}

func (s *ScenarioSuite) TestFramingDiagnostics(c *C) {
	c.Check(s.diag(c, "ecrire 1\nmeow").Code(), Equals, "E000")
	c.Check(s.diag(c, "miaou\necrire 1").Code(), Equals, "E001")
	c.Check(s.diag(c, "   \n\t\n").Code(), Equals, "E004")
}

func (s *ScenarioSuite) TestDiagnosticContextWindow(c *C) {
	diag := s.diag(c, "miaou\nx = 1\necrire fantome\ny = 2\nmeow")
	c.Check(diag.Code(), Equals, "E200")
	rendered := diag.Error()
	c.Check(strings.Contains(rendered, "Contexte :"), Equals, true)
	c.Check(strings.Contains(rendered, "ecrire fantome"), Equals, true)
}

func (s *ScenarioSuite) TestFromFile(c *C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "hello.miaou")
	err := os.WriteFile(path, []byte("miaou\necrire \"salut\"\nmeow\n"), 0o644)
	c.Assert(err, IsNil)

	script, ferr := FromFile(path)
	c.Assert(ferr, IsNil)
	c.Check(script.Name(), Equals, path)

	var out bytes.Buffer
	c.Assert(script.RunWithStdio(strings.NewReader(""), &out), IsNil)
	c.Check(out.String(), Equals, "salut\n")
}

func (s *ScenarioSuite) TestFromFileMissing(c *C) {
	_, err := FromFile(filepath.Join(c.MkDir(), "absent.miaou"))
	c.Assert(err, NotNil)
	diag, ok := err.(*Error)
	c.Assert(ok, Equals, true)
	c.Check(diag.Code(), Equals, "E900")
	c.Check(strings.Contains(diag.Error(), "absent.miaou"), Equals, true)
	c.Check(diag.Unwrap(), NotNil)
}

func (s *ScenarioSuite) TestMustPanics(c *C) {
	c.Check(func() { Must(FromString("pas de miaou")) }, PanicMatches, `(?s).*E000.*`)
	c.Check(Must(FromString("miaou\nmeow")), NotNil)
}

func (s *ScenarioSuite) TestRunTwiceStartsFresh(c *C) {
	script, err := FromString("miaou\nx = 1\necrire x\nmeow")
	c.Assert(err, IsNil)

	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		c.Assert(script.RunWithStdio(strings.NewReader(""), &out), IsNil)
		c.Check(out.String(), Equals, "1\n")
	}
}

func (s *ScenarioSuite) TestLocalFilesystemLoaderBaseDir(c *C) {
	dir := c.MkDir()
	err := os.WriteFile(filepath.Join(dir, "chat.miaou"), []byte("miaou\nmeow\n"), 0o644)
	c.Assert(err, IsNil)

	loader := NewLocalFileSystemLoader(dir)
	data, lerr := loader.Load("chat.miaou")
	c.Assert(lerr, IsNil)
	c.Check(string(data), Equals, "miaou\nmeow\n")

	_, lerr = loader.Load("inexistant.miaou")
	c.Check(lerr, NotNil)
}
