package meow

import "github.com/juju/loggo"

// logger is the package logger. It stays silent unless the embedding
// program raises the "meow" module to TRACE, in which case the lexer
// dumps its token stream through it.
var logger = loggo.GetLogger("meow")

// Logger exposes the package logger so embedders and the CLI can
// reconfigure its level.
func Logger() loggo.Logger {
	return logger
}
