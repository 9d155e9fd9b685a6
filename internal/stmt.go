package internal

// stmt is the AST sum type for statements. Grounded on the teacher's
// internal/stmt.go visitor-pattern shape, trimmed to the variant list in
// SPEC_FULL.md §3, plus break/continue (supplemented per SPEC_FULL.md §4.4).
type stmt interface {
	accept(stmtVisitor) interface{}
}

type stmtVisitor interface {
	visitExprStmt(s *exprStmt) interface{}
	visitPrintStmt(s *printStmt) interface{}
	visitVarStmt(s *varStmt) interface{}
	visitBlockStmt(s *blockStmt) interface{}
	visitIfStmt(s *ifStmt) interface{}
	visitWhileStmt(s *whileStmt) interface{}
	visitFunctionStmt(s *functionStmt) interface{}
	visitReturnStmt(s *returnStmt) interface{}
	visitClassStmt(s *classStmt) interface{}
	visitBreakStmt(s *breakStmt) interface{}
	visitContinueStmt(s *continueStmt) interface{}
}

type exprStmt struct {
	expression expr
}

func (s *exprStmt) accept(v stmtVisitor) interface{} { return v.visitExprStmt(s) }

type printStmt struct {
	keyword    Token
	expression expr
}

func (s *printStmt) accept(v stmtVisitor) interface{} { return v.visitPrintStmt(s) }

type varStmt struct {
	name        Token
	initializer expr
}

func (s *varStmt) accept(v stmtVisitor) interface{} { return v.visitVarStmt(s) }

type blockStmt struct {
	statements []stmt
}

func (s *blockStmt) accept(v stmtVisitor) interface{} { return v.visitBlockStmt(s) }

type ifStmt struct {
	keyword     Token
	condition   expr
	thenBranch  stmt
	elseBranch  stmt
}

func (s *ifStmt) accept(v stmtVisitor) interface{} { return v.visitIfStmt(s) }

type whileStmt struct {
	keyword   Token
	condition expr
	body      stmt
}

func (s *whileStmt) accept(v stmtVisitor) interface{} { return v.visitWhileStmt(s) }

// functionStmt doubles as a top-level `fun` declaration and a class method
// declaration (teacher's fnStmt plays the same dual role).
type functionStmt struct {
	name   Token
	params []Token
	body   []stmt
}

func (s *functionStmt) accept(v stmtVisitor) interface{} { return v.visitFunctionStmt(s) }

type returnStmt struct {
	keyword Token
	value   expr
}

func (s *returnStmt) accept(v stmtVisitor) interface{} { return v.visitReturnStmt(s) }

type classStmt struct {
	name       Token
	superclass *variableExpr
	methods    []*functionStmt
}

func (s *classStmt) accept(v stmtVisitor) interface{} { return v.visitClassStmt(s) }

type breakStmt struct {
	keyword Token
}

func (s *breakStmt) accept(v stmtVisitor) interface{} { return v.visitBreakStmt(s) }

type continueStmt struct {
	keyword Token
}

func (s *continueStmt) accept(v stmtVisitor) interface{} { return v.visitContinueStmt(s) }
