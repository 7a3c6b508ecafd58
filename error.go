package meow

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity classifies how grumpy the cat gets about an error. It only
// affects presentation, never control flow.
type Severity int

const (
	SeverityFaible Severity = iota
	SeverityMoyenne
	SeverityForte
)

// Label returns the severity banner text (FAIBLE, MOYENNE, FORTE).
func (s Severity) Label() string {
	switch s {
	case SeverityFaible:
		return "FAIBLE"
	case SeverityMoyenne:
		return "MOYENNE"
	default:
		return "FORTE"
	}
}

// Emoji returns the cat face shown in the diagnostic banner.
func (s Severity) Emoji() string {
	switch s {
	case SeverityFaible:
		return "😺"
	case SeverityMoyenne:
		return "😾"
	default:
		return "🙀"
	}
}

// ErrorDefinition is one immutable entry of the error catalog. The two
// message templates, the suggestion and the example may contain {name}
// placeholders which get replaced from the diagnostic's substitutions at
// render time.
type ErrorDefinition struct {
	Code        string
	Name        string
	MessageTech string
	MessageMeow string
	Severity    Severity
	Mood        string
	Suggestion  string
	Example     string
}

// This Error type is being used to address an error during lexing, parsing
// or execution. It combines a catalog definition with everything needed to
// render a useful diagnostic: file/line/column, the offending instruction
// (if any), a window of source lines around the error and a list of named
// substitutions for the {name} placeholders of the definition's templates.
//
// Construction never fails and every With* method returns the receiver, so
// errors are built fluently:
//
//	return NewError("E200", filename, pos.Line, pos.Col).
//	    WithExtra("var_name", name).
//	    WithContext(lines)
type Error struct {
	Def         ErrorDefinition
	Filename    string
	Line        int
	Column      int
	Instruction string

	// OrigError optionally carries the underlying plumbing error (e.g. an
	// annotated I/O failure beneath an E900). It is reachable through
	// Unwrap but never rendered to the script author.
	OrigError error

	contextLines []string
	extras       []extraInfo
}

type extraInfo struct {
	key   string
	value string
}

// NewError builds a diagnostic for the given catalog code at the given
// location. Unknown codes fold to the internal-crash definition E902.
func NewError(code, filename string, line, column int) *Error {
	return &Error{
		Def:      LookupDefinition(code),
		Filename: filename,
		Line:     line,
		Column:   column,
	}
}

// WithInstruction attaches the offending instruction text.
func (e *Error) WithInstruction(instruction string) *Error {
	e.Instruction = instruction
	return e
}

// WithContext extracts a ±2 line window around the error line from the
// given source lines. The offending line is marked with '>'.
func (e *Error) WithContext(sourceLines []string) *Error {
	e.contextLines = extractContext(sourceLines, e.Line)
	return e
}

// WithExtra records a named substitution for the {name} placeholders.
// Substitutions are applied in insertion order.
func (e *Error) WithExtra(key, value string) *Error {
	e.extras = append(e.extras, extraInfo{key: key, value: value})
	return e
}

// WithOrigError attaches the underlying plumbing error.
func (e *Error) WithOrigError(err error) *Error {
	e.OrigError = err
	return e
}

// Unwrap exposes the underlying plumbing error, if any.
func (e *Error) Unwrap() error {
	return e.OrigError
}

// Code returns the catalog code of this diagnostic (e.g. "E200").
func (e *Error) Code() string {
	return e.Def.Code
}

// formatMessage replaces every {key} placeholder for which a substitution
// exists. Unresolved placeholders are left as-is so a half-filled template
// still renders something readable.
func (e *Error) formatMessage(template string) string {
	message := template
	for _, extra := range e.substitutions() {
		message = strings.ReplaceAll(message, "{"+extra.key+"}", extra.value)
	}
	return message
}

// substitutions returns the stored extras plus the convenience values some
// catalog templates imply. E700 talks about {size_minus_one} while the
// evaluator only provides {size}.
func (e *Error) substitutions() []extraInfo {
	subs := e.extras
	for _, extra := range e.extras {
		if extra.key != "size" {
			continue
		}
		if e.hasExtra("size_minus_one") {
			break
		}
		if size, err := strconv.Atoi(extra.value); err == nil {
			subs = append(subs, extraInfo{key: "size_minus_one", value: strconv.Itoa(size - 1)})
		}
		break
	}
	return subs
}

func (e *Error) hasExtra(key string) bool {
	for _, extra := range e.extras {
		if extra.key == key {
			return true
		}
	}
	return false
}

// Error renders the full multi-line diagnostic block. The output is plain
// text; any terminal styling is the caller's business.
func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s ERREUR MEOWLANG [%s] — GRIFFURE %s\n", e.Def.Severity.Emoji(), e.Def.Code, e.Def.Severity.Label())
	b.WriteString("\n")
	fmt.Fprintf(&b, "Fichier      : %s\n", e.Filename)
	fmt.Fprintf(&b, "Ligne        : %d\n", e.Line)
	fmt.Fprintf(&b, "Colonne      : %d\n", e.Column)

	if e.Instruction != "" {
		fmt.Fprintf(&b, "Instruction  : %s\n", e.Instruction)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Type         : %s\n", e.Def.Name)
	b.WriteString("\n")
	b.WriteString("Message technique :\n")
	b.WriteString(e.formatMessage(e.Def.MessageTech))
	b.WriteString("\n\n")
	b.WriteString("Message MeowLang 🐱 :\n")
	b.WriteString(e.formatMessage(e.Def.MessageMeow))
	b.WriteString("\n")

	if len(e.contextLines) > 0 {
		b.WriteString("\n")
		b.WriteString("Contexte :\n")
		for _, line := range e.contextLines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("État du chat :\n")
	b.WriteString(e.Def.Mood)
	b.WriteString("\n")

	if e.Def.Suggestion != "" {
		b.WriteString("\n")
		b.WriteString("Suggestion du chat 💡 :\n")
		b.WriteString(e.formatMessage(e.Def.Suggestion))
		b.WriteString("\n")
	}

	if e.Def.Example != "" {
		b.WriteString("\n")
		b.WriteString("Exemple recommandé :\n")
		b.WriteString(e.formatMessage(e.Def.Example))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("Fin du jugement.\n")
	b.WriteString("Le chat te surveille.\n")

	return b.String()
}

// extractContext returns up to two lines above and below the error line,
// each prefixed with its line number and a '>' marker on the error line.
func extractContext(sourceLines []string, errorLine int) []string {
	const contextSize = 2

	start := errorLine - contextSize
	if start < 1 {
		start = 1
	}
	end := errorLine + contextSize
	if end > len(sourceLines) {
		end = len(sourceLines)
	}

	var context []string
	for lineNo := start; lineNo <= end; lineNo++ {
		prefix := "  "
		if lineNo == errorLine {
			prefix = "> "
		}
		context = append(context, fmt.Sprintf("%s  %3d | %s", prefix, lineNo, sourceLines[lineNo-1]))
	}
	return context
}
