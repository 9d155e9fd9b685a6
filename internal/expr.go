package internal

// expr is the AST sum type for expressions. Grounded on the teacher's
// internal/expr.go visitor-pattern shape (accept/exprVisitor), trimmed to
// the variant list in SPEC_FULL.md §3.
type expr interface {
	accept(exprVisitor) interface{}
}

type exprVisitor interface {
	visitLiteralExpr(e *literalExpr) interface{}
	visitArrayExpr(e *arrayExpr) interface{}
	visitVariableExpr(e *variableExpr) interface{}
	visitGroupingExpr(e *groupingExpr) interface{}
	visitUnaryExpr(e *unaryExpr) interface{}
	visitBinaryExpr(e *binaryExpr) interface{}
	visitLogicalExpr(e *logicalExpr) interface{}
	visitAssignExpr(e *assignExpr) interface{}
	visitCallExpr(e *callExpr) interface{}
	visitGetExpr(e *getExpr) interface{}
	visitSetExpr(e *setExpr) interface{}
	visitGetIndexedExpr(e *getIndexedExpr) interface{}
	visitSetIndexedExpr(e *setIndexedExpr) interface{}
	visitThisExpr(e *thisExpr) interface{}
	visitSuperExpr(e *superExpr) interface{}
}

// id is a unique node identity, allocated by the parser, used to key the
// resolver's local-depth map without relying on structural equality (per
// SPEC_FULL.md §9).
type id uint64

type literalExpr struct {
	nodeID id
	value  Value
}

func (e *literalExpr) accept(v exprVisitor) interface{} { return v.visitLiteralExpr(e) }

type arrayExpr struct {
	nodeID   id
	elements []expr
	bracket  Token
}

func (e *arrayExpr) accept(v exprVisitor) interface{} { return v.visitArrayExpr(e) }

type variableExpr struct {
	nodeID id
	name   Token
}

func (e *variableExpr) accept(v exprVisitor) interface{} { return v.visitVariableExpr(e) }

type groupingExpr struct {
	nodeID     id
	expression expr
}

func (e *groupingExpr) accept(v exprVisitor) interface{} { return v.visitGroupingExpr(e) }

type unaryExpr struct {
	nodeID   id
	operator Token
	right    expr
}

func (e *unaryExpr) accept(v exprVisitor) interface{} { return v.visitUnaryExpr(e) }

type binaryExpr struct {
	nodeID   id
	left     expr
	operator Token
	right    expr
}

func (e *binaryExpr) accept(v exprVisitor) interface{} { return v.visitBinaryExpr(e) }

type logicalExpr struct {
	nodeID   id
	left     expr
	operator Token
	right    expr
}

func (e *logicalExpr) accept(v exprVisitor) interface{} { return v.visitLogicalExpr(e) }

type assignExpr struct {
	nodeID id
	name   Token
	value  expr
}

func (e *assignExpr) accept(v exprVisitor) interface{} { return v.visitAssignExpr(e) }

type callExpr struct {
	nodeID    id
	callee    expr
	paren     Token
	arguments []expr
}

func (e *callExpr) accept(v exprVisitor) interface{} { return v.visitCallExpr(e) }

type getExpr struct {
	nodeID id
	object expr
	name   Token
}

func (e *getExpr) accept(v exprVisitor) interface{} { return v.visitGetExpr(e) }

type setExpr struct {
	nodeID id
	object expr
	name   Token
	value  expr
}

func (e *setExpr) accept(v exprVisitor) interface{} { return v.visitSetExpr(e) }

type getIndexedExpr struct {
	nodeID  id
	object  expr
	index   expr
	bracket Token
}

func (e *getIndexedExpr) accept(v exprVisitor) interface{} { return v.visitGetIndexedExpr(e) }

type setIndexedExpr struct {
	nodeID  id
	object  expr
	index   expr
	value   expr
	bracket Token
}

func (e *setIndexedExpr) accept(v exprVisitor) interface{} { return v.visitSetIndexedExpr(e) }

type thisExpr struct {
	nodeID  id
	keyword Token
}

func (e *thisExpr) accept(v exprVisitor) interface{} { return v.visitThisExpr(e) }

type superExpr struct {
	nodeID  id
	keyword Token
	method  Token
}

func (e *superExpr) accept(v exprVisitor) interface{} { return v.visitSuperExpr(e) }
