package internal

import (
	"fmt"
	"math"
)

// runtimeError is panicked by Interpreter.runtimeErr and recovered at the
// top of Interpret. Grounded on the teacher's state.runtimeErr/panic-recover
// pair in internal/state.go and archive/internal/exec.go's interpret(); kept
// distinct from the return/break/continue signal values in control.go,
// which never panic (SPEC_FULL.md §9).
type runtimeError struct {
	token   Token
	message string
}

func (e *runtimeError) Error() string { return e.message }

// Interpreter is the tree-walking evaluator: it holds the global
// environment, the environment currently in scope, the resolver's
// local-depth map, and the Reporter it writes diagnostics and print output
// through. Grounded on the teacher's execute/exec.go shape.
type Interpreter struct {
	globals  *environment
	env      *environment
	locals   map[id]int
	reporter *Reporter

	// Trace gates call-site logging through the Reporter's logrus logger;
	// normal runs leave it false and stay silent (SPEC_FULL.md §2.2).
	Trace bool
}

// NewInterpreter builds an Interpreter with an empty global environment.
// The source language has no built-in functions (SPEC_FULL.md names none),
// unlike the teacher's grotskyGlobals.go-populated globals — so there is
// nothing to install here.
func NewInterpreter(reporter *Reporter) *Interpreter {
	globals := newEnvironment(nil)
	return &Interpreter{
		globals:  globals,
		env:      globals,
		locals:   make(map[id]int),
		reporter: reporter,
	}
}

func (i *Interpreter) runtimeErr(tok Token, message string) {
	panic(&runtimeError{token: tok, message: message})
}

// resolve records the lexical depth the resolver computed for a variable
// reference, keyed by AST-node identity (SPEC_FULL.md §9).
func (i *Interpreter) resolve(nodeID id, depth int) {
	i.locals[nodeID] = depth
}

// Interpret runs a program's statements, recovering any runtimeError into a
// reported diagnostic rather than letting it escape to the caller (the
// teacher's execute.interpret does the same with a deferred recover).
func (i *Interpreter) Interpret(statements []stmt) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, isRuntime := r.(*runtimeError); isRuntime {
				i.reporter.ReportRuntime(rerr.token, rerr.message)
				ok = false
				return
			}
			panic(r)
		}
	}()

	for _, s := range statements {
		i.execute(s)
	}
	return true
}

func (i *Interpreter) execute(s stmt) interface{} {
	return s.accept(i)
}

func (i *Interpreter) eval(e expr) Value {
	return e.accept(i)
}

// executeBlock runs statements inside env, restoring the previous current
// environment even when a signal unwinds through it.
func (i *Interpreter) executeBlock(statements []stmt, env *environment) interface{} {
	previous := i.env
	defer func() { i.env = previous }()
	i.env = env

	for _, s := range statements {
		if sig := i.execute(s); sig != nil {
			return sig
		}
	}
	return nil
}

func (i *Interpreter) lookupVariable(name Token, nodeID id) Value {
	if depth, ok := i.locals[nodeID]; ok {
		return i.env.getAt(depth, name.Lexeme)
	}
	value, ok := i.globals.get(name)
	if !ok {
		i.runtimeErr(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
	}
	return value
}

func (i *Interpreter) indexValue(v Value, tok Token) int {
	num, ok := v.(Number)
	if !ok || float64(num) < 0 || float64(num) != math.Trunc(float64(num)) {
		i.runtimeErr(tok, "Index must be a non-negative integer.")
	}
	return int(num)
}

// --- expression visitors ---

func (i *Interpreter) visitLiteralExpr(e *literalExpr) interface{} {
	return e.value
}

func (i *Interpreter) visitArrayExpr(e *arrayExpr) interface{} {
	elements := make([]Value, len(e.elements))
	for idx, el := range e.elements {
		elements[idx] = i.eval(el)
	}
	return &Array{Elements: elements}
}

func (i *Interpreter) visitVariableExpr(e *variableExpr) interface{} {
	return i.lookupVariable(e.name, e.nodeID)
}

func (i *Interpreter) visitGroupingExpr(e *groupingExpr) interface{} {
	return i.eval(e.expression)
}

func (i *Interpreter) visitUnaryExpr(e *unaryExpr) interface{} {
	right := i.eval(e.right)
	switch e.operator.Kind {
	case Bang:
		return Bool(!isTruthy(right))
	case Minus:
		num, ok := right.(Number)
		if !ok {
			i.runtimeErr(e.operator, "Operand must be a number.")
		}
		return -num
	}
	return nil
}

func (i *Interpreter) visitBinaryExpr(e *binaryExpr) interface{} {
	left := i.eval(e.left)
	right := i.eval(e.right)

	switch e.operator.Kind {
	case Plus:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs
			}
		}
		if la, ok := left.(*Array); ok {
			if ra, ok := right.(*Array); ok {
				elements := make([]Value, 0, len(la.Elements)+len(ra.Elements))
				elements = append(elements, la.Elements...)
				elements = append(elements, ra.Elements...)
				return &Array{Elements: elements}
			}
		}
		i.runtimeErr(e.operator, "Operands must both be numbers, strings or arrays.")
	case Minus:
		ln, rn := i.numberOperands(left, right, e.operator)
		return ln - rn
	case Star:
		ln, rn := i.numberOperands(left, right, e.operator)
		return ln * rn
	case Slash:
		ln, rn := i.numberOperands(left, right, e.operator)
		if rn == 0 {
			i.runtimeErr(e.operator, "Division by zero.")
		}
		return ln / rn
	case Percent:
		ln, rn := i.numberOperands(left, right, e.operator)
		if rn == 0 {
			i.runtimeErr(e.operator, "Division by zero.")
		}
		return Number(math.Mod(float64(ln), float64(rn)))
	case Greater:
		ln, rn := i.numberOperands(left, right, e.operator)
		return Bool(ln > rn)
	case GreaterEqual:
		ln, rn := i.numberOperands(left, right, e.operator)
		return Bool(ln >= rn)
	case Less:
		ln, rn := i.numberOperands(left, right, e.operator)
		return Bool(ln < rn)
	case LessEqual:
		ln, rn := i.numberOperands(left, right, e.operator)
		return Bool(ln <= rn)
	case EqualEqual:
		return Bool(valuesEqual(left, right))
	case BangEqual:
		return Bool(!valuesEqual(left, right))
	}
	return nil
}

func (i *Interpreter) numberOperands(left, right Value, operator Token) (Number, Number) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		i.runtimeErr(operator, "Operands must be numbers.")
	}
	return ln, rn
}

func (i *Interpreter) visitLogicalExpr(e *logicalExpr) interface{} {
	left := i.eval(e.left)
	if e.operator.Kind == Or {
		if isTruthy(left) {
			return Bool(true)
		}
	} else {
		if !isTruthy(left) {
			return Bool(false)
		}
	}
	return i.eval(e.right)
}

func (i *Interpreter) visitAssignExpr(e *assignExpr) interface{} {
	value := i.eval(e.value)
	if depth, ok := i.locals[e.nodeID]; ok {
		i.env.assignAt(depth, e.name.Lexeme, value)
	} else if !i.globals.assign(e.name, value) {
		i.runtimeErr(e.name, fmt.Sprintf("Undefined variable '%s'.", e.name.Lexeme))
	}
	return value
}

func (i *Interpreter) visitCallExpr(e *callExpr) interface{} {
	callee := i.eval(e.callee)

	arguments := make([]Value, len(e.arguments))
	for idx, arg := range e.arguments {
		arguments[idx] = i.eval(arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		i.runtimeErr(e.paren, "Can only call functions and classes.")
	}

	if len(arguments) != callable.Arity() {
		i.runtimeErr(e.paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(arguments)))
	}

	if i.Trace {
		i.reporter.Log.WithField("line", e.paren.Line).Debugf("call %s", callable)
	}

	return callable.Call(i, arguments, e.paren)
}

func (i *Interpreter) visitGetExpr(e *getExpr) interface{} {
	object := i.eval(e.object)
	if instance, ok := object.(*Instance); ok {
		return instance.get(i, e.name)
	}
	i.runtimeErr(e.name, "Only instances have properties.")
	return nil
}

func (i *Interpreter) visitSetExpr(e *setExpr) interface{} {
	object := i.eval(e.object)
	instance, ok := object.(*Instance)
	if !ok {
		i.runtimeErr(e.name, "Only instances have fields.")
	}
	value := i.eval(e.value)
	instance.set(e.name, value)
	return value
}

func (i *Interpreter) visitGetIndexedExpr(e *getIndexedExpr) interface{} {
	object := i.eval(e.object)
	switch obj := object.(type) {
	case *Array:
		idx := i.indexValue(i.eval(e.index), e.bracket)
		if idx < 0 || idx >= len(obj.Elements) {
			i.runtimeErr(e.bracket, "Index out of bounds.")
		}
		return obj.Elements[idx]
	case String:
		idx := i.indexValue(i.eval(e.index), e.bracket)
		if idx < 0 || idx >= len(obj) {
			i.runtimeErr(e.bracket, "Index out of bounds.")
		}
		return String(obj[idx])
	default:
		i.runtimeErr(e.bracket, "Only arrays and strings can be indexed.")
	}
	return nil
}

func (i *Interpreter) visitSetIndexedExpr(e *setIndexedExpr) interface{} {
	object := i.eval(e.object)
	switch obj := object.(type) {
	case *Array:
		idx := i.indexValue(i.eval(e.index), e.bracket)
		value := i.eval(e.value)
		if idx < 0 || idx >= len(obj.Elements) {
			i.runtimeErr(e.bracket, "Index out of bounds.")
		}
		obj.Elements[idx] = value
		return value
	case String:
		i.runtimeErr(e.bracket, "Only arrays can be indexed.")
	default:
		i.runtimeErr(e.bracket, "Only arrays and strings can be indexed.")
	}
	return nil
}

func (i *Interpreter) visitThisExpr(e *thisExpr) interface{} {
	return i.lookupVariable(e.keyword, e.nodeID)
}

func (i *Interpreter) visitSuperExpr(e *superExpr) interface{} {
	depth := i.locals[e.nodeID]
	superclass := i.env.getAt(depth, "super").(*Class)
	object := i.env.getAt(depth-1, "this").(*Instance)

	method := superclass.findMethod(e.method.Lexeme)
	if method == nil {
		i.runtimeErr(e.method, fmt.Sprintf("Undefined property '%s'.", e.method.Lexeme))
	}
	return method.bind(object)
}

// --- statement visitors ---

func (i *Interpreter) visitExprStmt(s *exprStmt) interface{} {
	i.eval(s.expression)
	return nil
}

func (i *Interpreter) visitPrintStmt(s *printStmt) interface{} {
	value := i.eval(s.expression)
	i.reporter.Print(stringify(value))
	return nil
}

func (i *Interpreter) visitVarStmt(s *varStmt) interface{} {
	var value Value
	if s.initializer != nil {
		value = i.eval(s.initializer)
	}
	i.env.define(s.name.Lexeme, value)
	return nil
}

func (i *Interpreter) visitBlockStmt(s *blockStmt) interface{} {
	return i.executeBlock(s.statements, newEnvironment(i.env))
}

func (i *Interpreter) visitIfStmt(s *ifStmt) interface{} {
	if isTruthy(i.eval(s.condition)) {
		return i.execute(s.thenBranch)
	} else if s.elseBranch != nil {
		return i.execute(s.elseBranch)
	}
	return nil
}

func (i *Interpreter) visitWhileStmt(s *whileStmt) interface{} {
	for isTruthy(i.eval(s.condition)) {
		sig := i.execute(s.body)
		switch sig.(type) {
		case *returnSignal:
			return sig
		case *breakSignal:
			return nil
		case *continueSignal:
			continue
		}
	}
	return nil
}

func (i *Interpreter) visitFunctionStmt(s *functionStmt) interface{} {
	fn := &function{declaration: s, closure: i.env}
	i.env.define(s.name.Lexeme, fn)
	return nil
}

func (i *Interpreter) visitReturnStmt(s *returnStmt) interface{} {
	var value Value
	if s.value != nil {
		value = i.eval(s.value)
	}
	return &returnSignal{value: value}
}

func (i *Interpreter) visitClassStmt(s *classStmt) interface{} {
	var superclass *Class
	if s.superclass != nil {
		sc := i.eval(s.superclass)
		class, ok := sc.(*Class)
		if !ok {
			i.runtimeErr(s.superclass.name, "Superclass must be a class.")
		}
		superclass = class
	}

	i.env.define(s.name.Lexeme, nil)

	methodEnv := i.env
	if s.superclass != nil {
		methodEnv = newEnvironment(i.env)
		methodEnv.define("super", superclass)
	}

	methods := make(map[string]*function)
	for _, m := range s.methods {
		methods[m.name.Lexeme] = &function{
			declaration:   m,
			closure:       methodEnv,
			isInitializer: m.name.Lexeme == "init",
		}
	}

	class := &Class{name: s.name.Lexeme, superclass: superclass, methods: methods}
	i.env.assign(s.name, class)
	return nil
}

func (i *Interpreter) visitBreakStmt(s *breakStmt) interface{} {
	return &breakSignal{}
}

func (i *Interpreter) visitContinueStmt(s *continueStmt) interface{} {
	return &continueSignal{}
}
