package meow

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// astCmpOpts lets go-cmp look inside literal values and ignore node
// positions, which the AST-shape tests don't care about.
var astCmpOpts = []cmp.Option{
	cmp.AllowUnexported(Value{}),
	cmpopts.IgnoreTypes(Position{}),
}

func mustParse(t *testing.T, source string) *Program {
	t.Helper()
	tokens, lerr := lex("<test>", source)
	if lerr != nil {
		t.Fatalf("lex failed: %v", lerr)
	}
	root, err := newParser("<test>", tokens, splitLines(source)).Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return root
}

func parseError(t *testing.T, source string) *Error {
	t.Helper()
	tokens, lerr := lex("<test>", source)
	if lerr != nil {
		t.Fatalf("lex failed: %v", lerr)
	}
	_, err := newParser("<test>", tokens, splitLines(source)).Parse()
	if err == nil {
		t.Fatalf("parse succeeded, want error")
	}
	return err.(*Error)
}

func TestParseFraming(t *testing.T) {
	t.Run("empty frame parses to an empty program", func(t *testing.T) {
		root := mustParse(t, "miaou\n# rien ici\n\nmeow")
		if len(root.Statements) != 0 {
			t.Errorf("got %d statements, want 0", len(root.Statements))
		}
	})

	t.Run("leading blank lines before miaou", func(t *testing.T) {
		root := mustParse(t, "\n\nmiaou\nmeow")
		if len(root.Statements) != 0 {
			t.Errorf("got %d statements, want 0", len(root.Statements))
		}
	})

	t.Run("missing miaou fails with E000 at 1:1", func(t *testing.T) {
		err := parseError(t, "ecrire 1\nmeow")
		if err.Code() != "E000" {
			t.Errorf("code = %s, want E000", err.Code())
		}
		if err.Line != 1 || err.Column != 1 {
			t.Errorf("position = %d:%d, want 1:1", err.Line, err.Column)
		}
	})

	t.Run("missing meow fails with E001", func(t *testing.T) {
		err := parseError(t, "miaou\necrire 1")
		if err.Code() != "E001" {
			t.Errorf("code = %s, want E001", err.Code())
		}
	})
}

func TestParseAssignment(t *testing.T) {
	root := mustParse(t, "miaou\nx = 2 + 3 * 4\nmeow")

	want := []Node{
		&Assignment{
			Name: "x",
			Value: &BinaryOp{
				Left:     &Literal{Value: AsValue(int64(2))},
				Operator: "+",
				Right: &BinaryOp{
					Left:     &Literal{Value: AsValue(int64(3))},
					Operator: "*",
					Right:    &Literal{Value: AsValue(int64(4))},
				},
			},
		},
	}
	if diff := cmp.Diff(want, root.Statements, astCmpOpts...); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEqualsIsEqualityInExpressions(t *testing.T) {
	root := mustParse(t, "miaou\nsi x = 1 alors:\n    ecrire 1\nmeow")

	ifStmt, ok := root.Statements[0].(*IfStatement)
	if !ok {
		t.Fatalf("statement is %T, want *IfStatement", root.Statements[0])
	}
	cond, ok := ifStmt.Condition.(*BinaryOp)
	if !ok {
		t.Fatalf("condition is %T, want *BinaryOp", ifStmt.Condition)
	}
	if cond.Operator != "=" {
		t.Errorf("operator = %q, want %q", cond.Operator, "=")
	}
}

func TestParseEcrireDesugarsToCall(t *testing.T) {
	root := mustParse(t, "miaou\necrire 1, \"a\", x\nmeow")

	call, ok := root.Statements[0].(*FunctionCall)
	if !ok {
		t.Fatalf("statement is %T, want *FunctionCall", root.Statements[0])
	}
	if call.Name != "ecrire" {
		t.Errorf("name = %q, want %q", call.Name, "ecrire")
	}
	if len(call.Arguments) != 3 {
		t.Errorf("got %d arguments, want 3", len(call.Arguments))
	}
}

func TestParseIfChain(t *testing.T) {
	source := `miaou
si x alors:
    ecrire 1
sinon si b alors:
    ecrire 2
sinon si c alors:
    ecrire 3
sinon:
    ecrire 4
meow`
	root := mustParse(t, source)

	ifStmt, ok := root.Statements[0].(*IfStatement)
	if !ok {
		t.Fatalf("statement is %T, want *IfStatement", root.Statements[0])
	}
	if len(ifStmt.ElifArms) != 2 {
		t.Errorf("got %d elif arms, want 2", len(ifStmt.ElifArms))
	}
	if ifStmt.ElseBlock == nil {
		t.Error("else block missing")
	}
	if len(ifStmt.ThenBlock) != 1 {
		t.Errorf("got %d then statements, want 1", len(ifStmt.ThenBlock))
	}
}

func TestParseLoops(t *testing.T) {
	t.Run("repeter", func(t *testing.T) {
		root := mustParse(t, "miaou\nrepeter 3 fois:\n    ecrire compteur\nmeow")
		repeat, ok := root.Statements[0].(*RepeatLoop)
		if !ok {
			t.Fatalf("statement is %T, want *RepeatLoop", root.Statements[0])
		}
		if len(repeat.Body) != 1 {
			t.Errorf("got %d body statements, want 1", len(repeat.Body))
		}
	})

	t.Run("tant que", func(t *testing.T) {
		root := mustParse(t, "miaou\ntant que x < 10:\n    x = x + 1\nmeow")
		if _, ok := root.Statements[0].(*WhileLoop); !ok {
			t.Fatalf("statement is %T, want *WhileLoop", root.Statements[0])
		}
	})

	t.Run("pour chaque", func(t *testing.T) {
		root := mustParse(t, "miaou\npour chaque x dans liste(1, 2):\n    ecrire x\nmeow")
		loop, ok := root.Statements[0].(*ForEachLoop)
		if !ok {
			t.Fatalf("statement is %T, want *ForEachLoop", root.Statements[0])
		}
		if loop.Iterator != "x" {
			t.Errorf("iterator = %q, want %q", loop.Iterator, "x")
		}
		if _, ok := loop.Iterable.(*ListExpr); !ok {
			t.Errorf("iterable is %T, want *ListExpr", loop.Iterable)
		}
	})
}

func TestParseFunctionDef(t *testing.T) {
	root := mustParse(t, "miaou\nfonction somme(x, y):\n    retour x + y\nmeow")

	def, ok := root.Statements[0].(*FunctionDef)
	if !ok {
		t.Fatalf("statement is %T, want *FunctionDef", root.Statements[0])
	}
	if def.Name != "somme" {
		t.Errorf("name = %q, want %q", def.Name, "somme")
	}
	if diff := cmp.Diff([]string{"x", "y"}, def.Parameters); diff != "" {
		t.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}
	ret, ok := def.Body[0].(*ReturnStatement)
	if !ok {
		t.Fatalf("body statement is %T, want *ReturnStatement", def.Body[0])
	}
	if ret.Value == nil {
		t.Error("return value missing")
	}
}

func TestParseBareReturn(t *testing.T) {
	root := mustParse(t, "miaou\nfonction f():\n    retour\nmeow")

	def := root.Statements[0].(*FunctionDef)
	ret := def.Body[0].(*ReturnStatement)
	if ret.Value != nil {
		t.Errorf("return value = %v, want nil", ret.Value)
	}
}

func TestParseTryExcept(t *testing.T) {
	source := `miaou
essayer:
    ecrire 1 / 0
sauf erreur:
    ecrire "sauvé"
meow`
	root := mustParse(t, source)

	try, ok := root.Statements[0].(*TryExcept)
	if !ok {
		t.Fatalf("statement is %T, want *TryExcept", root.Statements[0])
	}
	if len(try.TryBlock) != 1 || len(try.ExceptBlock) != 1 {
		t.Errorf("got %d/%d try/except statements, want 1/1", len(try.TryBlock), len(try.ExceptBlock))
	}
}

func TestParseDemanderDesugars(t *testing.T) {
	t.Run("texte", func(t *testing.T) {
		root := mustParse(t, "miaou\nnom = demander texte \"Nom ?\"\nmeow")
		assign := root.Statements[0].(*Assignment)
		call, ok := assign.Value.(*FunctionCall)
		if !ok {
			t.Fatalf("value is %T, want *FunctionCall", assign.Value)
		}
		if call.Name != "demander_texte" || len(call.Arguments) != 1 {
			t.Errorf("got call %q with %d args, want demander_texte with 1", call.Name, len(call.Arguments))
		}
	})

	t.Run("nombre", func(t *testing.T) {
		root := mustParse(t, "miaou\nage = demander nombre \"Age ?\"\nmeow")
		assign := root.Statements[0].(*Assignment)
		call := assign.Value.(*FunctionCall)
		if call.Name != "demander_nombre" {
			t.Errorf("name = %q, want demander_nombre", call.Name)
		}
	})

	t.Run("unknown kind fails with E104", func(t *testing.T) {
		err := parseError(t, "miaou\nx = demander truc \"?\"\nmeow")
		if err.Code() != "E104" {
			t.Errorf("code = %s, want E104", err.Code())
		}
	})
}

func TestParseBuiltinKeywordCalls(t *testing.T) {
	t.Run("aleatoire takes start a end", func(t *testing.T) {
		root := mustParse(t, "miaou\nx = aleatoire 1 a 10\nmeow")
		assign := root.Statements[0].(*Assignment)
		call, ok := assign.Value.(*FunctionCall)
		if !ok {
			t.Fatalf("value is %T, want *FunctionCall", assign.Value)
		}
		if call.Name != "aleatoire" || len(call.Arguments) != 2 {
			t.Errorf("got call %q with %d args, want aleatoire with 2", call.Name, len(call.Arguments))
		}
	})

	t.Run("single expression argument", func(t *testing.T) {
		for _, source := range []string{
			"miaou\nx = longueur \"chat\"\nmeow",
			"miaou\nx = minuscule \"CHAT\"\nmeow",
			"miaou\nx = sqrt 16\nmeow",
			"miaou\nx = round 2.5\nmeow",
		} {
			root := mustParse(t, source)
			assign := root.Statements[0].(*Assignment)
			call, ok := assign.Value.(*FunctionCall)
			if !ok {
				t.Fatalf("value is %T, want *FunctionCall", assign.Value)
			}
			if len(call.Arguments) != 1 {
				t.Errorf("%q: got %d args, want 1", call.Name, len(call.Arguments))
			}
		}
	})
}

func TestParsePostfixChains(t *testing.T) {
	root := mustParse(t, "miaou\nx = grille[0][1]\nmeow")

	assign := root.Statements[0].(*Assignment)
	outer, ok := assign.Value.(*IndexAccess)
	if !ok {
		t.Fatalf("value is %T, want *IndexAccess", assign.Value)
	}
	if _, ok := outer.Object.(*IndexAccess); !ok {
		t.Errorf("object is %T, want *IndexAccess", outer.Object)
	}
}

func TestParseCallStatement(t *testing.T) {
	root := mustParse(t, "miaou\nsaluer(\"Felix\")\nmeow")

	stmt, ok := root.Statements[0].(*ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ExpressionStatement", root.Statements[0])
	}
	call, ok := stmt.Expression.(*FunctionCall)
	if !ok {
		t.Fatalf("expression is %T, want *FunctionCall", stmt.Expression)
	}
	if call.Name != "saluer" {
		t.Errorf("name = %q, want %q", call.Name, "saluer")
	}
}

func TestParseMissingColonFailsWithE104(t *testing.T) {
	err := parseError(t, "miaou\nsi vrai alors\n    ecrire 1\nmeow")
	if err.Code() != "E104" {
		t.Errorf("code = %s, want E104", err.Code())
	}
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	root := mustParse(t, "miaou\nx = 2 ** 3 ** 2\nmeow")

	assign := root.Statements[0].(*Assignment)
	top, ok := assign.Value.(*BinaryOp)
	if !ok {
		t.Fatalf("value is %T, want *BinaryOp", assign.Value)
	}
	if top.Operator != "**" {
		t.Fatalf("operator = %q, want **", top.Operator)
	}
	if _, ok := top.Right.(*BinaryOp); !ok {
		t.Errorf("right side is %T, want nested *BinaryOp", top.Right)
	}
	if _, ok := top.Left.(*Literal); !ok {
		t.Errorf("left side is %T, want *Literal", top.Left)
	}
}

func TestParseParenthesizedExpression(t *testing.T) {
	root := mustParse(t, "miaou\nx = (2 + 3) * 4\nmeow")

	assign := root.Statements[0].(*Assignment)
	top := assign.Value.(*BinaryOp)
	if top.Operator != "*" {
		t.Fatalf("operator = %q, want *", top.Operator)
	}
	left, ok := top.Left.(*BinaryOp)
	if !ok {
		t.Fatalf("left side is %T, want *BinaryOp", top.Left)
	}
	if left.Operator != "+" {
		t.Errorf("left operator = %q, want +", left.Operator)
	}
}
