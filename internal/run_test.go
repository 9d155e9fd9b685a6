package internal

import (
	"reflect"
	"testing"
)

// checkOutput runs source and asserts its output log equals want, in the
// teacher's exec_test.go checkExpression/checkStatements style — one
// assertion helper per shape of check, source compiled fresh each time.
func checkOutput(t *testing.T, source string, want []string) {
	t.Helper()
	result := Run(source)
	if !result.Succeeded {
		t.Fatalf("source failed to run: %v\nsource:\n%s", result.Errors, source)
	}
	if !reflect.DeepEqual(result.Output, want) {
		t.Errorf("output mismatch\nsource:\n%s\nwant: %v\ngot:  %v", source, want, result.Output)
	}
}

func checkRuntimeError(t *testing.T, source string, message string) {
	t.Helper()
	result := Run(source)
	if result.Succeeded {
		t.Fatalf("expected failure, source succeeded with output %v\nsource:\n%s", result.Output, source)
	}
	if len(result.Errors) == 0 {
		t.Fatalf("expected a diagnostic, got none\nsource:\n%s", source)
	}
	got := result.Errors[0]
	if got.Phase != Runtime {
		t.Errorf("expected Runtime phase, got %s\nsource:\n%s", got.Phase, source)
	}
	if got.Message != message {
		t.Errorf("message mismatch\nsource:\n%s\nwant: %q\ngot:  %q", source, message, got.Message)
	}
}

func checkSyntaxError(t *testing.T, source string, message string) {
	t.Helper()
	result := Run(source)
	if result.Succeeded {
		t.Fatalf("expected failure, source succeeded\nsource:\n%s", source)
	}
	got := result.Errors[0]
	if got.Phase != Syntax {
		t.Errorf("expected Syntax phase, got %s\nsource:\n%s", got.Phase, source)
	}
	if got.Message != message {
		t.Errorf("message mismatch\nsource:\n%s\nwant: %q\ngot:  %q", source, message, got.Message)
	}
}

func checkLexicalError(t *testing.T, source string, message string) {
	t.Helper()
	result := Run(source)
	if result.Succeeded {
		t.Fatalf("expected failure, source succeeded\nsource:\n%s", source)
	}
	got := result.Errors[0]
	if got.Phase != Lexical {
		t.Errorf("expected Lexical phase, got %s\nsource:\n%s", got.Phase, source)
	}
	if got.Message != message {
		t.Errorf("message mismatch\nsource:\n%s\nwant: %q\ngot:  %q", source, message, got.Message)
	}
}

// --- SPEC_FULL.md §8 concrete end-to-end scenarios ---

func TestConcreteScenarios(t *testing.T) {
	checkOutput(t, `print 1 + 2;`, []string{"3"})

	checkOutput(t, `let x = 10; { let x = 20; print x; } print x;`, []string{"20", "10"})

	checkOutput(t, `
		fun mk(){ let n=0; fun inc(){ n=n+1; return n; } return inc; }
		let f=mk();
		print f();
		print f();
		print f();
	`, []string{"1", "2", "3"})

	checkOutput(t, `
		class A{ speak(){print "A";} }
		class B inherits A{ speak(){ super.speak(); print "B"; } }
		B().speak();
	`, []string{"A", "B"})

	checkOutput(t, `let a=[1,2]; let b=[3,4]; print (a+b)[2];`, []string{"3"})

	checkRuntimeError(t, `print 10/0;`, "Division by zero.")

	checkRuntimeError(t, `return 5;`, "Cannot return from top-level code.")

	checkLexicalError(t, `"unterminated`, "Unterminated string.")
}

// --- arithmetic, comparisons, strings, arrays ---

func TestArithmetic(t *testing.T) {
	checkOutput(t, `print 1;`, []string{"1"})
	checkOutput(t, `print -1;`, []string{"-1"})
	checkOutput(t, `print 1 + 2 + 3;`, []string{"6"})
	checkOutput(t, `print 8 - 2;`, []string{"6"})
	checkOutput(t, `print 1 * 2 * 3;`, []string{"6"})
	checkOutput(t, `print 12 / 2;`, []string{"6"})
	checkOutput(t, `print 7 % 3;`, []string{"1"})
	checkOutput(t, `print 1 == 1;`, []string{"true"})
	checkOutput(t, `print 1 != 2;`, []string{"true"})
	checkOutput(t, `print 1 < 2 and 2 < 3;`, []string{"true"})
	checkOutput(t, `print false or 2;`, []string{"2"})
	checkOutput(t, `print false and 2;`, []string{"false"})
	checkOutput(t, `print true or 2;`, []string{"true"})

	checkRuntimeError(t, `print 1 + "a";`, "Operands must both be numbers, strings or arrays.")
	checkRuntimeError(t, `print -"a";`, "Operand must be a number.")
	checkRuntimeError(t, `print 1 < "a";`, "Operands must be numbers.")
}

func TestStringsAndArrays(t *testing.T) {
	checkOutput(t, `print "a" + "b";`, []string{"ab"})
	checkOutput(t, `print [1, 2, 3];`, []string{"[1, 2, 3]"})
	checkOutput(t, `let a = [1,2,3]; print a[1];`, []string{"2"})
	checkOutput(t, `let a = [1,2,3]; a[1] = 9; print a;`, []string{"[1, 9, 3]"})
	checkOutput(t, `print "hello"[1];`, []string{"e"})

	checkRuntimeError(t, `let a = [1,2,3]; print a[3];`, "Index out of bounds.")
	checkRuntimeError(t, `let a = [1,2,3]; print a[-1];`, "Index must be a non-negative integer.")
	checkRuntimeError(t, `let a = [1,2,3]; print a[1.5];`, "Index must be a non-negative integer.")
	checkRuntimeError(t, `print 1[0];`, "Only arrays and strings can be indexed.")
	checkRuntimeError(t, `"hello"[0] = "a";`, "Only arrays can be indexed.")
}

// --- closures and functions ---

func TestClosuresAndFunctions(t *testing.T) {
	checkOutput(t, `
		fun counter() {
			let n = 0;
			fun next() { n = n + 1; return n; }
			return next;
		}
		let a = counter();
		let b = counter();
		print a();
		print a();
		print b();
	`, []string{"1", "2", "1"})

	checkRuntimeError(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`, "Expected 2 arguments but got 1.")

	checkRuntimeError(t, `
		let x = 1;
		x();
	`, "Can only call functions and classes.")
}

// --- classes, inheritance, super, this ---

func TestClassesAndInheritance(t *testing.T) {
	checkOutput(t, `
		class Counter {
			init(start) { this.n = start; }
			next() { this.n = this.n + 1; return this.n; }
		}
		let c = Counter(10);
		print c.next();
		print c.next();
	`, []string{"11", "12"})

	checkOutput(t, `
		class Animal {
			init(name) { this.name = name; }
			describe() { return "animal " + this.name; }
		}
		class Dog inherits Animal {
			describe() { return super.describe() + " (a dog)"; }
		}
		print Dog("Rex").describe();
	`, []string{"animal Rex (a dog)"})

	checkRuntimeError(t, `
		class A {}
		let a = A();
		print a.missing;
	`, "Undefined property 'missing'.")

	checkRuntimeError(t, `
		print 1.foo;
	`, "Only instances have properties.")

	checkOutput(t, `
		class Empty {}
		print Empty;
		print Empty();
		fun add(a, b) { return a + b; }
		print add;
	`, []string{"Empty", "<instanceof Empty>", "<fn add(a,b)>"})
}

// --- control flow: while/for/break/continue ---

func TestControlFlow(t *testing.T) {
	checkOutput(t, `
		let i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`, []string{"0", "1", "2"})

	checkOutput(t, `
		for (let i = 0; i < 5; i = i + 1) {
			if (i == 3) { break; }
			print i;
		}
	`, []string{"0", "1", "2"})

	checkOutput(t, `
		let i = 0;
		let out = [];
		while (i < 5) {
			i = i + 1;
			if (i == 3) { continue; }
			out = out + [i];
		}
		print out;
	`, []string{"[1, 2, 4, 5]"})

	checkOutput(t, `
		let x = 1;
		x += 2;
		print x;
		x -= 1;
		print x;
		x *= 5;
		print x;
		x /= 2;
		print x;
	`, []string{"3", "2", "10", "5"})

	checkOutput(t, `
		let x = 1;
		x++;
		print x;
		x--;
		print x;
	`, []string{"2", "1"})

	checkRuntimeError(t, `break;`, "Cannot use 'break' outside of a loop.")
	checkRuntimeError(t, `continue;`, "Cannot use 'continue' outside of a loop.")
}

// --- parser error message contracts (a sample; not exhaustive) ---

func TestParserErrorMessages(t *testing.T) {
	checkSyntaxError(t, `if x { }`, "Expect '(' after 'if'")
	checkSyntaxError(t, `if (x { }`, "Expect ')' after 'if' condition.")
	checkSyntaxError(t, `let x = 1`, "Expect ';' after variable declaration.")
	checkSyntaxError(t, `1 = 2;`, "Invalid assignment target.")
}

func TestSelfInheritance(t *testing.T) {
	checkRuntimeError(t, `class A inherits A {}`, "A class cannot inherit from itself.")
}

// --- resolver static errors ---

func TestResolverStaticErrors(t *testing.T) {
	checkRuntimeError(t, `this;`, "Cannot use 'this' outside of a class.")
	checkRuntimeError(t, `super.m();`, "Cannot use 'super' outside of a class.")
	checkRuntimeError(t, `
		class A { m() { super.m(); } }
	`, "Cannot use 'super' in a class with no superclass.")
	checkRuntimeError(t, `
		class A {
			init() { return 1; }
		}
	`, "Cannot return a value from an initializer.")
	checkRuntimeError(t, `
		{
			let a = 1;
			let a = 2;
		}
	`, "Variable with name 'a' already declared in this scope.")
}
