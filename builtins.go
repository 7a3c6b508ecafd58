package meow

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// BuiltinFunction is the type built-in functions must fulfil. Arguments
// arrive already evaluated, left to right; pos is the call site for
// diagnostics.
type BuiltinFunction func(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error)

// builtins maps built-in names to their implementations. Built-ins are
// dispatched before the user function table, so a user function named
// like a built-in is unreachable by call.
var builtins = make(map[string]BuiltinFunction)

// RegisterBuiltin registers a built-in function under the given name.
// Registering the same name twice panics; this runs from init only.
func RegisterBuiltin(name string, fn BuiltinFunction) {
	if _, existing := builtins[name]; existing {
		panic(fmt.Sprintf("builtin with name '%s' is already registered", name))
	}
	builtins[name] = fn
}

// BuiltinExists returns true if the given name is a built-in function.
func BuiltinExists(name string) bool {
	_, existing := builtins[name]
	return existing
}

func init() {
	RegisterBuiltin("ecrire", builtinEcrire)
	RegisterBuiltin("demander_texte", builtinDemanderTexte)
	RegisterBuiltin("demander_nombre", builtinDemanderNombre)
	RegisterBuiltin("minuscule", builtinMinuscule)
	RegisterBuiltin("majuscule", builtinMajuscule)
	RegisterBuiltin("longueur", builtinLongueur)
	RegisterBuiltin("aleatoire", builtinAleatoire)
	RegisterBuiltin("sqrt", builtinSqrt)
	RegisterBuiltin("abs", builtinAbs)
	RegisterBuiltin("round", builtinRound)
	RegisterBuiltin("floor", builtinFloor)
	RegisterBuiltin("ceil", builtinCeil)
	RegisterBuiltin("attendre", builtinAttendre)
}

// builtinEcrire prints the space-joined display forms of its arguments
// followed by a newline.
func builtinEcrire(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	fmt.Fprintln(ctx.stdout, strings.Join(parts, " "))
	return valueNone, nil
}

// readLine reads one line from the interpreter's stdin with leading and
// trailing whitespace (the newline included) trimmed. Read errors are not
// diagnosed; the partial (possibly empty) line is trimmed and returned.
func (ctx *ExecutionContext) readLine() string {
	line, _ := ctx.stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

func (ctx *ExecutionContext) writePrompt(args []*Value) {
	if len(args) > 0 {
		fmt.Fprintf(ctx.stdout, "%s ", args[0].String())
	}
}

func builtinDemanderTexte(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	if len(args) == 0 {
		return AsValue(""), nil
	}
	ctx.writePrompt(args)
	return AsValue(ctx.readLine()), nil
}

func builtinDemanderNombre(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	if len(args) == 0 {
		return AsValue(0.0), nil
	}
	ctx.writePrompt(args)
	number, err := strconv.ParseFloat(ctx.readLine(), 64)
	if err != nil {
		number = 0.0
	}
	return AsValue(number), nil
}

func builtinMinuscule(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	if len(args) == 0 {
		return AsValue(""), nil
	}
	return AsValue(strings.ToLower(args[0].String())), nil
}

func builtinMajuscule(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	if len(args) == 0 {
		return AsValue(""), nil
	}
	return AsValue(strings.ToUpper(args[0].String())), nil
}

// builtinLongueur returns the byte length of a string (not the rune
// count), the element count of a list, and 0 for anything else.
func builtinLongueur(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	if len(args) == 0 {
		return AsValue(int64(0)), nil
	}
	v := args[0]
	switch v.Kind() {
	case KindString:
		return AsValue(int64(len(v.String()))), nil
	case KindList:
		return AsValue(int64(len(v.List()))), nil
	default:
		return AsValue(int64(0)), nil
	}
}

// builtinAleatoire draws an integer uniformly from the inclusive range
// [start, end].
func builtinAleatoire(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	if len(args) < 2 {
		return AsValue(int64(0)), nil
	}
	start := args[0].Integer()
	end := args[1].Integer()
	if end < start {
		start, end = end, start
	}
	return AsValue(start + rand.Int63n(end-start+1)), nil
}

func numericArg(args []*Value) float64 {
	if len(args) == 0 {
		return 0.0
	}
	f, _ := args[0].Number()
	return f
}

func builtinSqrt(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	return AsValue(math.Sqrt(numericArg(args))), nil
}

func builtinAbs(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	return AsValue(math.Abs(numericArg(args))), nil
}

func builtinRound(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	return AsValue(int64(math.Round(numericArg(args)))), nil
}

func builtinFloor(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	return AsValue(int64(math.Floor(numericArg(args)))), nil
}

func builtinCeil(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	return AsValue(int64(math.Ceil(numericArg(args)))), nil
}

// builtinAttendre sleeps for the given number of seconds. A negative
// duration fails with E800 carrying the requested value.
func builtinAttendre(ctx *ExecutionContext, pos Position, args []*Value) (*Value, error) {
	if len(args) == 0 {
		return valueNone, nil
	}
	seconds := numericArg(args)
	if seconds < 0 {
		return nil, ctx.Error("E800", pos).
			WithExtra("duration", strconv.FormatFloat(seconds, 'f', -1, 64))
	}
	time.Sleep(time.Duration(seconds * float64(time.Second)))
	return valueNone, nil
}
