package internal

import "fmt"

type functionType int

const (
	functionTypeNone functionType = iota
	functionTypeFunction
	functionTypeMethod
	functionTypeInitializer
)

type classType int

const (
	classTypeNone classType = iota
	classTypeClass
	classTypeSubclass
)

// scope maps an identifier to whether its initializer has finished
// resolving yet (the declare/define two-phase of SPEC_FULL.md §4.3).
type scope map[string]bool

// resolver is the static pre-execution AST walk that computes the
// interpreter's local-depth map. The teacher's evaluator has no equivalent
// pass — grounded directly on SPEC_FULL.md §4.3, shaped like a textbook
// scope-stack resolver.
type resolver struct {
	interp   *Interpreter
	reporter *Reporter

	scopes          []scope
	currentFunction functionType
	currentClass    classType
	loopDepth       int
}

func newResolver(interp *Interpreter, reporter *Reporter) *resolver {
	return &resolver{
		interp:   interp,
		reporter: reporter,
	}
}

func (r *resolver) resolveStmts(statements []stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	s.accept(r)
}

func (r *resolver) resolveExpr(e expr) {
	e.accept(r)
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.reporter.ReportRuntime(name, fmt.Sprintf("Variable with name '%s' already declared in this scope.", name.Lexeme))
	}
	sc[name.Lexeme] = false
}

func (r *resolver) define(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *resolver) resolveLocal(nodeID id, name Token) {
	for depth := len(r.scopes) - 1; depth >= 0; depth-- {
		if _, ok := r.scopes[depth][name.Lexeme]; ok {
			r.interp.resolve(nodeID, len(r.scopes)-1-depth)
			return
		}
	}
	// Not found in any scope: left as a global, resolved at runtime.
}

func (r *resolver) resolveFunction(s *functionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range s.params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(s.body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// --- statement visitors ---

func (r *resolver) visitExprStmt(s *exprStmt) interface{} {
	r.resolveExpr(s.expression)
	return nil
}

func (r *resolver) visitPrintStmt(s *printStmt) interface{} {
	r.resolveExpr(s.expression)
	return nil
}

func (r *resolver) visitVarStmt(s *varStmt) interface{} {
	r.declare(s.name)
	if s.initializer != nil {
		r.resolveExpr(s.initializer)
	}
	r.define(s.name)
	return nil
}

func (r *resolver) visitBlockStmt(s *blockStmt) interface{} {
	r.beginScope()
	r.resolveStmts(s.statements)
	r.endScope()
	return nil
}

func (r *resolver) visitIfStmt(s *ifStmt) interface{} {
	r.resolveExpr(s.condition)
	r.resolveStmt(s.thenBranch)
	if s.elseBranch != nil {
		r.resolveStmt(s.elseBranch)
	}
	return nil
}

func (r *resolver) visitWhileStmt(s *whileStmt) interface{} {
	r.resolveExpr(s.condition)
	r.loopDepth++
	r.resolveStmt(s.body)
	r.loopDepth--
	return nil
}

func (r *resolver) visitFunctionStmt(s *functionStmt) interface{} {
	r.declare(s.name)
	r.define(s.name)
	r.resolveFunction(s, functionTypeFunction)
	return nil
}

func (r *resolver) visitReturnStmt(s *returnStmt) interface{} {
	if r.currentFunction == functionTypeNone {
		r.reporter.ReportRuntime(s.keyword, "Cannot return from top-level code.")
	}
	if s.value != nil {
		if r.currentFunction == functionTypeInitializer {
			r.reporter.ReportRuntime(s.keyword, "Cannot return a value from an initializer.")
		}
		r.resolveExpr(s.value)
	}
	return nil
}

func (r *resolver) visitClassStmt(s *classStmt) interface{} {
	enclosingClass := r.currentClass
	r.currentClass = classTypeClass

	r.declare(s.name)
	r.define(s.name)

	if s.superclass != nil {
		if s.superclass.name.Lexeme == s.name.Lexeme {
			r.reporter.ReportRuntime(s.superclass.name, "A class cannot inherit from itself.")
		}
		r.currentClass = classTypeSubclass
		r.resolveExpr(s.superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.methods {
		kind := functionTypeMethod
		if method.name.Lexeme == "init" {
			kind = functionTypeInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
	return nil
}

func (r *resolver) visitBreakStmt(s *breakStmt) interface{} {
	if r.loopDepth == 0 {
		r.reporter.ReportRuntime(s.keyword, "Cannot use 'break' outside of a loop.")
	}
	return nil
}

func (r *resolver) visitContinueStmt(s *continueStmt) interface{} {
	if r.loopDepth == 0 {
		r.reporter.ReportRuntime(s.keyword, "Cannot use 'continue' outside of a loop.")
	}
	return nil
}

// --- expression visitors ---

func (r *resolver) visitLiteralExpr(e *literalExpr) interface{} {
	return nil
}

func (r *resolver) visitArrayExpr(e *arrayExpr) interface{} {
	for _, el := range e.elements {
		r.resolveExpr(el)
	}
	return nil
}

func (r *resolver) visitVariableExpr(e *variableExpr) interface{} {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.name.Lexeme]; ok && !defined {
			r.reporter.ReportRuntime(e.name, fmt.Sprintf("Cannot read local variable '%s' in its own initializer.", e.name.Lexeme))
		}
	}
	r.resolveLocal(e.nodeID, e.name)
	return nil
}

func (r *resolver) visitGroupingExpr(e *groupingExpr) interface{} {
	r.resolveExpr(e.expression)
	return nil
}

func (r *resolver) visitUnaryExpr(e *unaryExpr) interface{} {
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitBinaryExpr(e *binaryExpr) interface{} {
	r.resolveExpr(e.left)
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitLogicalExpr(e *logicalExpr) interface{} {
	r.resolveExpr(e.left)
	r.resolveExpr(e.right)
	return nil
}

func (r *resolver) visitAssignExpr(e *assignExpr) interface{} {
	r.resolveExpr(e.value)
	r.resolveLocal(e.nodeID, e.name)
	return nil
}

func (r *resolver) visitCallExpr(e *callExpr) interface{} {
	r.resolveExpr(e.callee)
	for _, arg := range e.arguments {
		r.resolveExpr(arg)
	}
	return nil
}

func (r *resolver) visitGetExpr(e *getExpr) interface{} {
	r.resolveExpr(e.object)
	return nil
}

func (r *resolver) visitSetExpr(e *setExpr) interface{} {
	r.resolveExpr(e.value)
	r.resolveExpr(e.object)
	return nil
}

func (r *resolver) visitGetIndexedExpr(e *getIndexedExpr) interface{} {
	r.resolveExpr(e.object)
	r.resolveExpr(e.index)
	return nil
}

func (r *resolver) visitSetIndexedExpr(e *setIndexedExpr) interface{} {
	r.resolveExpr(e.object)
	r.resolveExpr(e.index)
	r.resolveExpr(e.value)
	return nil
}

func (r *resolver) visitThisExpr(e *thisExpr) interface{} {
	if r.currentClass == classTypeNone {
		r.reporter.ReportRuntime(e.keyword, "Cannot use 'this' outside of a class.")
		return nil
	}
	r.resolveLocal(e.nodeID, e.keyword)
	return nil
}

func (r *resolver) visitSuperExpr(e *superExpr) interface{} {
	if r.currentClass == classTypeNone {
		r.reporter.ReportRuntime(e.keyword, "Cannot use 'super' outside of a class.")
	} else if r.currentClass != classTypeSubclass {
		r.reporter.ReportRuntime(e.keyword, "Cannot use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e.nodeID, e.keyword)
	return nil
}
