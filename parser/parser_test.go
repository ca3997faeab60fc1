package parser_test

import (
	"errors"
	"testing"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser"
	"github.com/t14raptor/go-esm/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parse(code string, opts *parser.Options) (*ast.Program, error) {
	p, err := parser.New(code, opts)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// mustParse parses module code with the default options and fails the test
// if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	return mustParseWith(t, code, nil)
}

func mustParseScript(t *testing.T, code string) *ast.Program {
	t.Helper()
	return mustParseWith(t, code, &parser.Options{SourceType: ast.SourceTypeScript})
}

func mustParseWith(t *testing.T, code string, opts *parser.Options) *ast.Program {
	t.Helper()
	p, err := parse(code, opts)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// syntaxError parses code and returns the syntax error it must fail with.
func syntaxError(t *testing.T, code string, opts *parser.Options) *parser.SyntaxError {
	t.Helper()
	_, err := parse(code, opts)
	if err == nil {
		t.Fatalf("expected parse error for: %s", code)
	}
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error for %q is %T; want *parser.SyntaxError", code, err)
	}
	return se
}

// firstStmt returns the concrete statement node from the i-th top-level statement.
func firstStmt(p *ast.Program, i int) ast.Stmt {
	return p.Body[i].Stmt
}

// exprOf extracts the inner concrete expression from an ExpressionStatement.
func exprOf(s ast.Stmt) ast.Expr {
	return s.(*ast.ExpressionStatement).Expression.Expr
}

// initializerExpr extracts the initializer expression from the first
// VariableDeclarator of a VariableDeclaration statement.
func initializerExpr(s ast.Stmt) ast.Expr {
	init := s.(*ast.VariableDeclaration).List[0].Initializer
	if init == nil {
		return nil
	}
	return init.Expr
}

// tolerateAll accepts every recoverable error.
type tolerateAll struct{}

func (tolerateAll) Name() string { return "tolerate-all" }

func (tolerateAll) Install(h *parser.Hooks) error {
	return h.OnRecoverable(func(*parser.Parser, ast.Irregularity) bool { return true })
}

// debuggerAsEmpty turns debugger statements into empty statements.
type debuggerAsEmpty struct{}

func (debuggerAsEmpty) Name() string { return "debugger-as-empty" }

func (debuggerAsEmpty) Install(h *parser.Hooks) error {
	return h.OnStatement(func(p *parser.Parser) (*ast.Statement, bool) {
		if p.Kind() != token.Debugger {
			return nil, false
		}
		idx := p.Offset()
		p.Next()
		p.Semicolon()
		return &ast.Statement{Stmt: &ast.EmptyStatement{Semicolon: idx}}, true
	})
}

// ===========================================================================
// OPTIONS
// ===========================================================================

func TestResolveOptionsDefaults(t *testing.T) {
	opts, err := parser.ResolveOptions(nil)
	if err != nil {
		t.Fatalf("ResolveOptions(nil): %v", err)
	}
	if opts.EcmaVersion != parser.DefaultEcmaVersion {
		t.Errorf("EcmaVersion = %d; want %d", opts.EcmaVersion, parser.DefaultEcmaVersion)
	}
	if opts.SourceType != ast.SourceTypeModule {
		t.Errorf("SourceType = %q; want module", opts.SourceType)
	}
}

func TestResolveOptionsYear(t *testing.T) {
	opts, err := parser.ResolveOptions(&parser.Options{EcmaVersion: 2020})
	if err != nil {
		t.Fatalf("ResolveOptions: %v", err)
	}
	if opts.EcmaVersion != 11 {
		t.Errorf("EcmaVersion = %d; want 11", opts.EcmaVersion)
	}
}

func TestResolveOptionsInvalid(t *testing.T) {
	cases := []parser.Options{
		{EcmaVersion: 4},
		{EcmaVersion: 14},
		{SourceType: "commonjs"},
		{EcmaVersion: 5, SourceType: ast.SourceTypeModule},
	}
	for _, opts := range cases {
		opts := opts
		if _, err := parser.New("", &opts); !errors.Is(err, parser.ErrInvalidOptions) {
			t.Errorf("New(%+v) error = %v; want ErrInvalidOptions", opts, err)
		}
	}
}

// ===========================================================================
// PARSER LIFECYCLE
// ===========================================================================

func TestParseProgramFields(t *testing.T) {
	p := mustParse(t, "a;\nb;")
	if p.SourceType != ast.SourceTypeModule {
		t.Errorf("SourceType = %q; want module", p.SourceType)
	}
	if got := len(p.Body); got != 2 {
		t.Errorf("body length = %d; want 2", got)
	}
	if p.End != 5 {
		t.Errorf("End = %d; want 5", p.End)
	}
	if p.TopLevelAwait || p.RelaxedAwait {
		t.Errorf("await flags set on a program without await")
	}

	s := mustParseScript(t, "a")
	if s.SourceType != ast.SourceTypeScript {
		t.Errorf("SourceType = %q; want script", s.SourceType)
	}
}

func TestParseReused(t *testing.T) {
	p, err := parser.New("a", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(); err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	if _, err := p.Parse(); !errors.Is(err, parser.ErrReused) {
		t.Errorf("second Parse error = %v; want ErrReused", err)
	}
	if err := p.Install(tolerateAll{}); !errors.Is(err, parser.ErrHooksFrozen) {
		t.Errorf("Install after Parse error = %v; want ErrHooksFrozen", err)
	}
}

func TestInstallIdempotent(t *testing.T) {
	p, err := parser.New("", nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := p.Install(tolerateAll{}); err != nil {
			t.Fatalf("Install: %v", err)
		}
	}
	if err := p.Install(debuggerAsEmpty{}); err != nil {
		t.Fatalf("Install: %v", err)
	}
	got := p.Installed()
	if len(got) != 2 || got[0] != "tolerate-all" || got[1] != "debugger-as-empty" {
		t.Errorf("Installed() = %v; want [tolerate-all debugger-as-empty]", got)
	}
}

func TestStatementHook(t *testing.T) {
	p, err := parser.New("debugger; { debugger }", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Install(debuggerAsEmpty{}); err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := firstStmt(prog, 0).(*ast.EmptyStatement); !ok {
		t.Errorf("stmt[0] = %T; want *ast.EmptyStatement", firstStmt(prog, 0))
	}
	block := firstStmt(prog, 1).(*ast.BlockStatement)
	if _, ok := block.List[0].Stmt.(*ast.EmptyStatement); !ok {
		t.Errorf("block stmt = %T; want *ast.EmptyStatement", block.List[0].Stmt)
	}

	plain := mustParse(t, "debugger")
	if _, ok := firstStmt(plain, 0).(*ast.DebuggerStatement); !ok {
		t.Errorf("without hook stmt = %T; want *ast.DebuggerStatement", firstStmt(plain, 0))
	}
}

// ---------------------------------------------------------------------------
// Lookahead never moves the cursor
// ---------------------------------------------------------------------------

type peekRecorder struct {
	peeks []parser.Peek
	kinds []token.Token
}

func (r *peekRecorder) Name() string { return "peek-recorder" }

func (r *peekRecorder) Install(h *parser.Hooks) error {
	return h.OnStatement(func(p *parser.Parser) (*ast.Statement, bool) {
		before := p.Kind()
		r.peeks = append(r.peeks, parser.Lookahead(p), parser.Lookahead(p))
		if p.Kind() != before {
			r.kinds = append(r.kinds, p.Kind())
		}
		return nil, false
	})
}

func TestLookahead(t *testing.T) {
	rec := &peekRecorder{}
	p, err := parser.New("foo\n(bar)", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Install(rec); err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rec.kinds) != 0 {
		t.Errorf("Lookahead moved the cursor to %v", rec.kinds)
	}
	if len(rec.peeks) == 0 {
		t.Fatalf("statement hook never ran")
	}
	for _, pk := range rec.peeks[1:] {
		if pk != rec.peeks[0] {
			t.Errorf("repeated Lookahead differs: %+v vs %+v", rec.peeks[0], pk)
		}
	}
	pk := rec.peeks[0]
	if pk.Kind != token.LeftParenthesis || !pk.OnNewLine || pk.Idx0 != 4 {
		t.Errorf("peek = %+v; want ( on a new line at 4", pk)
	}
	// foo\n(bar) is a call: no semicolon is inserted before (.
	if _, ok := exprOf(firstStmt(prog, 0)).(*ast.CallExpression); !ok {
		t.Errorf("stmt[0] = %T; want call", exprOf(firstStmt(prog, 0)))
	}
}

// ===========================================================================
// AST STRUCTURE VERIFICATION TESTS
// ===========================================================================

func TestArrayLiteralAST(t *testing.T) {
	p := mustParse(t, "var a = [1, 'two', true, null]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != 4 {
		t.Fatalf("array length = %d; want 4", got)
	}
	if n := arr.Value[0].Expr.(*ast.NumberLiteral); n.Value != 1 {
		t.Errorf("arr[0] value = %v; want 1", n.Value)
	}
	if s := arr.Value[1].Expr.(*ast.StringLiteral); s.Value != "two" {
		t.Errorf("arr[1] value = %q; want \"two\"", s.Value)
	}
	if k := arr.Value[2].Kind(); k != ast.KindBoolean {
		t.Errorf("arr[2] kind = %v; want Boolean", k)
	}
	if k := arr.Value[3].Kind(); k != ast.KindNull {
		t.Errorf("arr[3] kind = %v; want Null", k)
	}
}

func TestArrayLiteralElisionsAST(t *testing.T) {
	p := mustParse(t, "var a = [1,,2,,3]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != 5 {
		t.Fatalf("array length = %d; want 5", got)
	}
	if arr.Value[1].Kind() != ast.KindNone || arr.Value[3].Kind() != ast.KindNone {
		t.Errorf("holes = %v, %v; want None", arr.Value[1].Kind(), arr.Value[3].Kind())
	}
}

func TestSequenceExpressionAST(t *testing.T) {
	p := mustParse(t, "a, b, c")
	seq := exprOf(firstStmt(p, 0)).(*ast.SequenceExpression)
	if got := len(seq.Sequence); got != 3 {
		t.Errorf("sequence length = %d; want 3", got)
	}
}

func TestTemplateLiteralAST(t *testing.T) {
	p := mustParse(t, "var s = `a${b}c${d}e`")
	tmpl := initializerExpr(firstStmt(p, 0)).(*ast.TemplateLiteral)
	if got := len(tmpl.Elements); got != 3 {
		t.Errorf("template elements = %d; want 3", got)
	}
	if got := len(tmpl.Expressions); got != 2 {
		t.Errorf("template expressions = %d; want 2", got)
	}
	if tmpl.Tag != nil {
		t.Errorf("untagged template has a tag")
	}

	tagged := mustParse(t, "tag`x`")
	if exprOf(firstStmt(tagged, 0)).(*ast.TemplateLiteral).Tag == nil {
		t.Errorf("tagged template has no tag")
	}
}

func TestRegExpAST(t *testing.T) {
	p := mustParse(t, "var r = /ab+c/gi")
	re := initializerExpr(firstStmt(p, 0)).(*ast.RegExpLiteral)
	if re.Pattern != "ab+c" {
		t.Errorf("pattern = %q; want \"ab+c\"", re.Pattern)
	}
	if re.Flags != "gi" {
		t.Errorf("flags = %q; want \"gi\"", re.Flags)
	}
}

func TestDirectiveAST(t *testing.T) {
	p := mustParseScript(t, "'use strict'; 'other'\nfoo")
	if got := firstStmt(p, 0).(*ast.ExpressionStatement).Directive; got != "use strict" {
		t.Errorf("directive = %q; want \"use strict\"", got)
	}
	if got := firstStmt(p, 1).(*ast.ExpressionStatement).Directive; got != "other" {
		t.Errorf("directive = %q; want \"other\"", got)
	}
	if got := firstStmt(p, 2).(*ast.ExpressionStatement).Directive; got != "" {
		t.Errorf("non-directive = %q; want empty", got)
	}

	// A parenthesized string does not start a directive.
	q := mustParseScript(t, "('use strict'); with (a) {}")
	if got := firstStmt(q, 0).(*ast.ExpressionStatement).Directive; got != "" {
		t.Errorf("parenthesized directive = %q; want empty", got)
	}
}

func TestSwitchStatementAST(t *testing.T) {
	p := mustParse(t, "switch (x) { case 1: a; b; default: c; case 2: }")
	sw := firstStmt(p, 0).(*ast.SwitchStatement)
	if got := len(sw.Body); got != 3 {
		t.Fatalf("clauses = %d; want 3", got)
	}
	if sw.Default != 1 {
		t.Errorf("default index = %d; want 1", sw.Default)
	}
	if got := len(sw.Body[0].Consequent); got != 2 {
		t.Errorf("case 1 consequent = %d; want 2", got)
	}
	if sw.Body[1].Test != nil {
		t.Errorf("default clause has a test")
	}

	none := mustParse(t, "switch (x) { case 1: }")
	if d := firstStmt(none, 0).(*ast.SwitchStatement).Default; d != -1 {
		t.Errorf("default index without default = %d; want -1", d)
	}
}

func TestForStatementsAST(t *testing.T) {
	p := mustParse(t, "for (let i = 0; i < n; i++) {}\nfor (const k in o) {}\nfor (x of xs) {}\nfor (;;) break")
	loop := firstStmt(p, 0).(*ast.ForStatement)
	if decl, ok := loop.Initializer.ForLoopInit.(*ast.VariableDeclaration); !ok || decl.Token != token.Let {
		t.Errorf("for initializer = %T; want let declaration", loop.Initializer.ForLoopInit)
	}
	if loop.Test == nil || loop.Update == nil {
		t.Errorf("for test/update missing")
	}

	forIn := firstStmt(p, 1).(*ast.ForInStatement)
	if _, ok := forIn.Into.Into.(*ast.VariableDeclaration); !ok {
		t.Errorf("for-in target = %T; want declaration", forIn.Into.Into)
	}

	forOf := firstStmt(p, 2).(*ast.ForOfStatement)
	if _, ok := forOf.Into.Into.(*ast.Expression); !ok {
		t.Errorf("for-of target = %T; want expression", forOf.Into.Into)
	}
	if forOf.Await {
		t.Errorf("plain for-of marked await")
	}

	empty := firstStmt(p, 3).(*ast.ForStatement)
	if empty.Initializer != nil || empty.Test != nil || empty.Update != nil {
		t.Errorf("for(;;) has clauses")
	}
}

func TestForAwaitAST(t *testing.T) {
	p := mustParse(t, "async function f() { for await (const x of xs) {} }")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration).Function
	loop := fn.Body.List[0].Stmt.(*ast.ForOfStatement)
	if !loop.Await {
		t.Errorf("for await not marked")
	}
	if fn.RelaxedAwait {
		t.Errorf("async function marked relaxed")
	}
}

func TestTryStatementAST(t *testing.T) {
	p := mustParse(t, "try { a } catch (e) { b } finally { c }")
	try := firstStmt(p, 0).(*ast.TryStatement)
	if try.Catch == nil || try.Finally == nil {
		t.Fatalf("try = %+v; want catch and finally", try)
	}
	if id := try.Catch.Parameter.Expr.(*ast.Identifier); id.Name != "e" {
		t.Errorf("catch param = %q; want e", id.Name)
	}

	optional := mustParseWith(t, "try {} catch {}", &parser.Options{EcmaVersion: 10})
	if firstStmt(optional, 0).(*ast.TryStatement).Catch.Parameter != nil {
		t.Errorf("optional catch binding has a parameter")
	}
}

func TestArrowFunctionAST(t *testing.T) {
	p := mustParse(t, "var f = (a, [b], {c}) => a + b")
	arrow := initializerExpr(firstStmt(p, 0)).(*ast.ArrowFunctionLiteral)
	params := arrow.ParameterList.List
	if got := len(params); got != 3 {
		t.Fatalf("params = %d; want 3", got)
	}
	if k := params[1].Kind(); k != ast.KindArrayPattern {
		t.Errorf("param 1 kind = %v; want ArrayPattern", k)
	}
	if k := params[2].Kind(); k != ast.KindObjectPattern {
		t.Errorf("param 2 kind = %v; want ObjectPattern", k)
	}
	if _, ok := arrow.Body.Body.(*ast.Expression); !ok {
		t.Errorf("concise body = %T; want expression", arrow.Body.Body)
	}
}

func TestDestructuringAssignmentAST(t *testing.T) {
	p := mustParse(t, "({a, b: [c, ...d], e = 1} = obj)")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
	pattern, ok := assign.Left.Expr.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("left = %T; want ObjectPattern", assign.Left.Expr)
	}
	if got := len(pattern.Properties); got != 3 {
		t.Fatalf("properties = %d; want 3", got)
	}
	keyed := pattern.Properties[1].Prop.(*ast.PropertyKeyed)
	arr := keyed.Value.Expr.(*ast.ArrayPattern)
	if k := arr.Elements[1].Kind(); k != ast.KindRest {
		t.Errorf("last element kind = %v; want Rest", k)
	}
	short := pattern.Properties[2].Prop.(*ast.PropertyShort)
	if short.Initializer == nil {
		t.Errorf("shorthand default lost")
	}
}

func TestClassBodyAST(t *testing.T) {
	p := mustParseWith(t, "class A extends B { static x = 1; #y; get z() { return this.#y } static {} }",
		&parser.Options{EcmaVersion: 13})
	class := firstStmt(p, 0).(*ast.ClassDeclaration).Class
	if class.Name.Name != "A" || class.SuperClass == nil {
		t.Errorf("class header = %+v", class)
	}
	if got := len(class.Body); got != 4 {
		t.Fatalf("class elements = %d; want 4", got)
	}
	if f := class.Body[0].Element.(*ast.FieldDefinition); !f.Static {
		t.Errorf("x is not static")
	}
	if k := class.Body[1].Element.(*ast.FieldDefinition).Key.Kind(); k != ast.KindPrivateIdentifier {
		t.Errorf("#y key kind = %v; want PrivateIdentifier", k)
	}
	if m := class.Body[2].Element.(*ast.MethodDefinition); m.Kind != ast.PropertyKindGet {
		t.Errorf("z kind = %q; want get", m.Kind)
	}
	if _, ok := class.Body[3].Element.(*ast.ClassStaticBlock); !ok {
		t.Errorf("element 3 = %T; want static block", class.Body[3].Element)
	}
}

func TestOptionalChainAST(t *testing.T) {
	p := mustParseWith(t, "a?.b.c()", &parser.Options{EcmaVersion: 11})
	if _, ok := exprOf(firstStmt(p, 0)).(*ast.OptionalChain); !ok {
		t.Errorf("expr = %T; want OptionalChain", exprOf(firstStmt(p, 0)))
	}
}

// ===========================================================================
// MODULE DECLARATIONS
// ===========================================================================

func TestImportDeclarationAST(t *testing.T) {
	p := mustParse(t, `import d, {a, b as c} from "m"; import * as ns from "n"; import "side"`)

	first := firstStmt(p, 0).(*ast.ImportDeclaration)
	if got := len(first.Specifiers); got != 3 {
		t.Fatalf("specifiers = %d; want 3", got)
	}
	if _, ok := first.Specifiers[0].(*ast.ImportDefaultSpecifier); !ok {
		t.Errorf("spec 0 = %T; want default", first.Specifiers[0])
	}
	renamed := first.Specifiers[2].(*ast.ImportSpecifier)
	if renamed.Imported.Name != "b" || renamed.Local.Name != "c" {
		t.Errorf("renamed = %s as %s; want b as c", renamed.Imported.Name, renamed.Local.Name)
	}
	if first.Source.Value != "m" {
		t.Errorf("source = %q; want m", first.Source.Value)
	}

	ns := firstStmt(p, 1).(*ast.ImportDeclaration)
	if spec := ns.Specifiers[0].(*ast.ImportNamespaceSpecifier); spec.Local.Name != "ns" {
		t.Errorf("namespace local = %q; want ns", spec.Local.Name)
	}

	bare := firstStmt(p, 2).(*ast.ImportDeclaration)
	if len(bare.Specifiers) != 0 {
		t.Errorf("bare import has %d specifiers", len(bare.Specifiers))
	}
}

func TestExportDeclarationAST(t *testing.T) {
	p, err := parser.New(`export const a = 1; export function f() {} export default 1; export {a as b}; export * from "m"`, nil)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if decl := firstStmt(prog, 0).(*ast.ExportNamedDeclaration); decl.Declaration == nil {
		t.Errorf("export const has no declaration")
	}
	if def := firstStmt(prog, 2).(*ast.ExportDefaultDeclaration); def.Expression == nil {
		t.Errorf("export default 1 has no expression")
	}
	named := firstStmt(prog, 3).(*ast.ExportNamedDeclaration)
	if spec := named.Specifiers[0].(*ast.ExportSpecifier); spec.Exported.Name != "b" {
		t.Errorf("exported = %q; want b", spec.Exported.Name)
	}
	if all := firstStmt(prog, 4).(*ast.ExportAllDeclaration); all.Exported != nil {
		t.Errorf("export * has an exported name")
	}

	want := []string{"a", "b", "default", "f"}
	got := p.ExportedNames()
	if len(got) != len(want) {
		t.Fatalf("ExportedNames() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ExportedNames()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestExportAllAs(t *testing.T) {
	p := mustParseWith(t, `export * as ns from "m"`, &parser.Options{EcmaVersion: 11})
	if all := firstStmt(p, 0).(*ast.ExportAllDeclaration); all.Exported == nil || all.Exported.Name != "ns" {
		t.Errorf("export * as ns = %+v", all)
	}

	se := syntaxError(t, `export * as ns from "m"`, nil)
	if se.Message != "Unexpected token" {
		t.Errorf("message = %q; want Unexpected token", se.Message)
	}
}

// ===========================================================================
// RECOVERABLE ERRORS
// ===========================================================================

func parseTolerant(t *testing.T, code string, opts *parser.Options) *ast.Program {
	t.Helper()
	p, err := parser.New(code, opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Install(tolerateAll{}); err != nil {
		t.Fatal(err)
	}
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return prog
}

func TestRecoverableErrors(t *testing.T) {
	cases := []struct {
		code string
		kind ast.IrregularityKind
		msg  string
	}{
		{"1 = 2", ast.IrregularAssignTarget, "Invalid left-hand side in assignment"},
		{"eval = 1", ast.IrregularAssignTarget, "Assigning to eval in strict mode"},
		{"a() += 1", ast.IrregularAssignTarget, "Invalid left-hand side in assignment"},
		{"1++", ast.IrregularAssignTarget, "Invalid left-hand side expression in postfix operation"},
		{"delete a", ast.IrregularStrictDelete, "Deleting local variable in strict mode"},
		{"017", ast.IrregularLegacyOctal, "Octal literal in strict mode"},
		{"with (a) {}", ast.IrregularStrictWith, "'with' in strict mode"},
		{"export var a; export {a}", ast.IrregularDuplicateExport, "Duplicate export 'a'"},
	}
	for _, c := range cases {
		// Without an extension every one of them is fatal.
		if se := syntaxError(t, c.code, nil); se.Message != c.msg {
			t.Errorf("%q: message = %q; want %q", c.code, se.Message, c.msg)
		}

		prog := parseTolerant(t, c.code, nil)
		if got := len(prog.Irregularities); got != 1 {
			t.Errorf("%q: irregularities = %d; want 1", c.code, got)
			continue
		}
		irr := prog.Irregularities[0]
		if irr.Kind != c.kind || irr.Message != c.msg {
			t.Errorf("%q: irregularity = %v %q; want %v %q", c.code, irr.Kind, irr.Message, c.kind, c.msg)
		}
	}
}

func TestRecoveredNodes(t *testing.T) {
	p := parseTolerant(t, "1 = 2; with (a) {}", nil)

	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
	rec, ok := assign.Left.Expr.(*ast.RecoveredExpression)
	if !ok {
		t.Fatalf("assign target = %T; want RecoveredExpression", assign.Left.Expr)
	}
	if k := rec.Expression.Kind(); k != ast.KindNumber {
		t.Errorf("recovered kind = %v; want Number", k)
	}

	stmt, ok := firstStmt(p, 1).(*ast.RecoveredStatement)
	if !ok {
		t.Fatalf("with = %T; want RecoveredStatement", firstStmt(p, 1))
	}
	if _, ok := stmt.Statement.Stmt.(*ast.WithStatement); !ok {
		t.Errorf("recovered statement = %T; want WithStatement", stmt.Statement.Stmt)
	}
	if stmt.Irregularity.Kind != ast.IrregularStrictWith {
		t.Errorf("irregularity kind = %v; want StrictWith", stmt.Irregularity.Kind)
	}
}

func TestSloppyScriptHasNoIrregularities(t *testing.T) {
	p := mustParseScript(t, "with (a) {}; delete b; 017")
	if len(p.Irregularities) != 0 {
		t.Errorf("irregularities = %v; want none", p.Irregularities)
	}
}

// ===========================================================================
// OPERATOR PRECEDENCE TESTS
// ===========================================================================

func TestPrecedenceMultiplicativeOverAdditive(t *testing.T) {
	p := mustParse(t, "var x = a + b * c")
	bin := initializerExpr(firstStmt(p, 0)).(*ast.BinaryExpression)
	if bin.Operator != token.Plus {
		t.Fatalf("top operator = %v; want +", bin.Operator)
	}
	if right := bin.Right.Expr.(*ast.BinaryExpression); right.Operator != token.Multiply {
		t.Errorf("right operator = %v; want *", right.Operator)
	}
}

func TestPrecedenceComparisonOverLogical(t *testing.T) {
	p := mustParse(t, "var x = a < b && c > d")
	bin := initializerExpr(firstStmt(p, 0)).(*ast.BinaryExpression)
	if bin.Operator != token.LogicalAnd {
		t.Fatalf("top operator = %v; want &&", bin.Operator)
	}
	if left := bin.Left.Expr.(*ast.BinaryExpression); left.Operator != token.Less {
		t.Errorf("left operator = %v; want <", left.Operator)
	}
	if right := bin.Right.Expr.(*ast.BinaryExpression); right.Operator != token.Greater {
		t.Errorf("right operator = %v; want >", right.Operator)
	}
}

func TestPrecedenceOrOverAnd(t *testing.T) {
	p := mustParse(t, "var x = a || b && c")
	bin := initializerExpr(firstStmt(p, 0)).(*ast.BinaryExpression)
	if bin.Operator != token.LogicalOr {
		t.Fatalf("top operator = %v; want ||", bin.Operator)
	}
	if right := bin.Right.Expr.(*ast.BinaryExpression); right.Operator != token.LogicalAnd {
		t.Errorf("right operator = %v; want &&", right.Operator)
	}
}

func TestPrecedenceLeftAssociative(t *testing.T) {
	p := mustParse(t, "var x = a - b - c")
	bin := initializerExpr(firstStmt(p, 0)).(*ast.BinaryExpression)
	if k := bin.Left.Kind(); k != ast.KindBinary {
		t.Errorf("left kind = %v; want Binary", k)
	}
	if k := bin.Right.Kind(); k != ast.KindIdentifier {
		t.Errorf("right kind = %v; want Identifier", k)
	}
}

func TestPrecedenceExponentiationRightAssociative(t *testing.T) {
	p := mustParse(t, "var x = a ** b ** c")
	bin := initializerExpr(firstStmt(p, 0)).(*ast.BinaryExpression)
	if bin.Operator != token.Exponent {
		t.Fatalf("top operator = %v; want **", bin.Operator)
	}
	if k := bin.Left.Kind(); k != ast.KindIdentifier {
		t.Errorf("left kind = %v; want Identifier", k)
	}
	if right := bin.Right.Expr.(*ast.BinaryExpression); right.Operator != token.Exponent {
		t.Errorf("right operator = %v; want **", right.Operator)
	}
}

func TestPrecedenceNullishCoalescing(t *testing.T) {
	p := mustParseWith(t, "var x = a ?? (b || c)", &parser.Options{EcmaVersion: 11})
	if bin := initializerExpr(firstStmt(p, 0)).(*ast.BinaryExpression); bin.Operator != token.Coalesce {
		t.Errorf("top operator = %v; want ??", bin.Operator)
	}
}

func TestPrecedenceTernaryOverAssignment(t *testing.T) {
	p := mustParse(t, "x = a ? b : c")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
	if k := assign.Right.Kind(); k != ast.KindConditional {
		t.Errorf("right kind = %v; want Conditional", k)
	}
}

// ===========================================================================
// ASI
// ===========================================================================

func TestASIReturnNewline(t *testing.T) {
	p := mustParse(t, "function f() {\n  return\n  1\n}")
	body := firstStmt(p, 0).(*ast.FunctionDeclaration).Function.Body
	if got := len(body.List); got != 2 {
		t.Fatalf("body statements = %d; want 2", got)
	}
	if ret := body.List[0].Stmt.(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("return argument = %v; want nil", ret.Argument)
	}
}

func TestASIPostfixNewline(t *testing.T) {
	p := mustParse(t, "a\n++b")
	if got := len(p.Body); got != 2 {
		t.Fatalf("statements = %d; want 2", got)
	}
	if upd := exprOf(firstStmt(p, 1)).(*ast.UpdateExpression); upd.Postfix {
		t.Errorf("++b parsed as postfix")
	}
}

func TestASIBreakNewline(t *testing.T) {
	p := mustParse(t, "a: while (1) { break\na }")
	loop := firstStmt(p, 0).(*ast.LabelledStatement).Statement.Stmt.(*ast.WhileStatement)
	block := loop.Body.Stmt.(*ast.BlockStatement)
	if brk := block.List[0].Stmt.(*ast.BreakStatement); brk.Label != nil {
		t.Errorf("break label = %q; want none", brk.Label.Name)
	}
}

// ===========================================================================
// SYNTAX-ONLY TESTS
// ===========================================================================

func TestModuleSyntax(t *testing.T) {
	cases := []string{
		"",
		";;;",
		"var r = /[/]/g",
		"x = y / z; var r = /abc/",
		"let [a, , b = 1, ...c] = d",
		"const {a, b: {c}, ...d} = e",
		"label: for (;;) { continue label }",
		"do x(); while (y)",
		"if (a) b; else if (c) d; else e",
		"function* g() { yield; yield* h(); const x = yield 1 }",
		"async function f() { await x; for await (const y of z); }",
		"var f = async (a) => await a",
		"var f = async a => a",
		"class A { static async *m() {} get [k]() {} set v(x) {} }",
		"new A; new A.b(); new new A()()",
		"a ? b : c ? d : e",
		"`a${`b${c}`}`",
		"x = function () { 'use strict' }",
		"({ get a() {}, set a(v) {}, [b]: 1, c() {}, ...d })",
		"export default function () {}",
		"export default class {}",
		"export default async function f() {}",
		"export {a as default} from 'm'",
		"import {default as x} from 'm'",
		"0x1F; 0o17; 0b11; 1e3; .5",
	}
	for _, code := range cases {
		mustParse(t, code)
	}
}

func TestScriptSyntax(t *testing.T) {
	cases := []string{
		"var await = 1",
		"var yield = 2",
		"var let = 3",
		"with (a) b",
		"function f(a, a) {}",
		"if (a) function f() {}",
		"await(1)",
		"x = { await: 1 }",
		"typeof import_",
	}
	for _, code := range cases {
		mustParseScript(t, code)
	}
}

// ===========================================================================
// PARSE ERROR TESTS
// ===========================================================================

func TestParseErrors(t *testing.T) {
	cases := []string{
		"var",
		"function",
		"if",
		"if ()",
		"for (;;",
		"switch",
		"class {",
		"(1 +)",
		"var x = {,}",
		"let [",
		"=> x",
		"import(a)",
	}
	for _, code := range cases {
		if _, err := parse(code, nil); err == nil {
			t.Errorf("expected parse error for: %s", code)
		}
	}
}

func TestParseErrorMessages(t *testing.T) {
	script := &parser.Options{SourceType: ast.SourceTypeScript}
	cases := []struct {
		code string
		opts *parser.Options
		msg  string
	}{
		{"return 1", script, "'return' outside of function"},
		{"break", nil, "Unsyntactic break"},
		{"continue", nil, "Unsyntactic continue"},
		{"a: a: ;", nil, "Label 'a' is already declared"},
		{"throw\n1", nil, "Illegal newline after throw"},
		{"try {}", nil, "Missing catch or finally clause"},
		{"switch (a) { default: default: }", nil, "Multiple default clauses"},
		{"const a;", nil, "Missing initializer in const declaration"},
		{"var [a];", nil, "Complex binding patterns require an initialization value"},
		{"for (var a = 1 of b);", nil, "for-in or for-of loop variable declaration may not have an initializer"},
		{"import x from 'm'", script, "'import' and 'export' may appear only with 'sourceType: module'"},
		{"{ import x from 'm' }", nil, "'import' and 'export' may only appear at the top level"},
		{"{ export var a }", nil, "'import' and 'export' may only appear at the top level"},
		{"import(a)", nil, "Unexpected token"},
		{"new import(a)", nil, "Cannot use new with import()"},
		{"await x", nil, "Cannot use keyword 'await' outside an async function"},
		{"class A { constructor() {} constructor() {} }", nil, "Duplicate constructor in the same class"},
		{"-a ** b", nil, "Unary operator used immediately before exponentiation expression. Parenthesis must be used to disambiguate operator precedence"},
		{"new.target", nil, "'new.target' can only be used in functions and class static block"},
		{"function f(a, a) {}", nil, "Argument name clash"},
		{"({a = 1})", nil, "Shorthand property assignments are valid only in destructuring patterns"},
		{"if (a) function f() {}", nil, "In strict mode code, functions can only be declared at top level or inside a block."},
		{"var a = (", nil, "Unexpected end of input"},
	}
	for _, c := range cases {
		se := syntaxError(t, c.code, c.opts)
		if se.Message != c.msg {
			t.Errorf("%q: message = %q; want %q", c.code, se.Message, c.msg)
		}
	}
}

func TestRedeclarationErrors(t *testing.T) {
	script := &parser.Options{SourceType: ast.SourceTypeScript}
	latest := &parser.Options{EcmaVersion: 13}
	cases := []struct {
		code string
		opts *parser.Options
		name string
		idx  ast.Idx
	}{
		{"let a; let a;", nil, "a", 11},
		{"import {a} from 'x'; import {a} from 'y'", nil, "a", 29},
		{"const a = 1; var a", nil, "a", 17},
		{"function f(a){ let a }", nil, "a", 19},
		{"class A {} class A {}", nil, "A", 17},
		{"function f() {} let f", nil, "f", 20},
		{"let a; { var a }", nil, "a", 13},
		{"let [a, a] = b", nil, "a", 8},
		{"try {} catch (e) { let e }", nil, "e", 23},
		{"try {} catch ([e]) { var e }", nil, "e", 25},
		{"for (let a of b) { var a }", nil, "a", 23},
		{"switch (x) { case 1: let a; case 2: let a }", nil, "a", 40},
		{"(a) => { const a = 1 }", nil, "a", 15},
		{"class A { static { var a; let a } }", latest, "a", 30},
		{"{ var a; function a() {} }", script, "a", 18},
		{"let f; function f() {}", script, "f", 16},
	}
	for _, c := range cases {
		se := syntaxError(t, c.code, c.opts)
		if want := "Identifier '" + c.name + "' has already been declared"; se.Message != want {
			t.Errorf("%q: message = %q; want %q", c.code, se.Message, want)
		}
		if se.Idx != c.idx {
			t.Errorf("%q: Idx = %d; want %d", c.code, se.Idx, c.idx)
		}
	}
}

func TestAllowedRedeclarations(t *testing.T) {
	for _, code := range []string{
		"var a; var a",
		"let a; { let a }",
		"let a; function f() { let a }",
		"function f(a) { var a }",
		"function f(a, b = () => { let a }) {}",
		"try {} catch (e) { var e }",
		"for (let i;;) {} for (let i;;) {}",
		"switch (x) { case 1: { let a } case 2: { let a } }",
		"export {a}; let a",
		"export {f}; function f() {}",
		"export {C}; class C {}",
		"export {d, ns}; import d, * as ns from 'm'",
	} {
		mustParse(t, code)
	}
	for _, code := range []string{
		"function f() {} function f() {}",
		"var f; function f() {}",
		"function f() {} var f",
		"{ function f() {} function f() {} }",
		"function g() { function f() {} var f }",
	} {
		mustParseScript(t, code)
	}
}

func TestUndefinedExports(t *testing.T) {
	cases := []struct {
		code string
		name string
		idx  ast.Idx
	}{
		{"export {undeclared}", "undeclared", 8},
		{"export {a, b}; let b", "a", 8},
		{"export {a as b}", "a", 8},
		{"function f() { var a } export {a}", "a", 31},
		{"{ let a } export {a}", "a", 18},
	}
	for _, c := range cases {
		se := syntaxError(t, c.code, nil)
		if want := "Export '" + c.name + "' is not defined"; se.Message != want {
			t.Errorf("%q: message = %q; want %q", c.code, se.Message, want)
		}
		if se.Idx != c.idx {
			t.Errorf("%q: Idx = %d; want %d", c.code, se.Idx, c.idx)
		}
	}

	// Re-exports name bindings of another module.
	mustParse(t, "export {undeclared} from 'm'")
}

func TestSyntaxErrorPosition(t *testing.T) {
	se := syntaxError(t, "var a;\nvar b = ;", nil)
	if se.Idx != 15 {
		t.Errorf("Idx = %d; want 15", se.Idx)
	}
	if se.Line != 2 || se.Column != 8 {
		t.Errorf("position = %d:%d; want 2:8", se.Line, se.Column)
	}
	if want := "Unexpected token (2:8)"; se.Error() != want {
		t.Errorf("Error() = %q; want %q", se.Error(), want)
	}
}

func TestPosition(t *testing.T) {
	cases := []struct {
		src          string
		idx          ast.Idx
		line, column int
	}{
		{"abc", 2, 1, 2},
		{"a\nb", 2, 2, 0},
		{"a\r\nb", 3, 2, 0},
		{"a\u2028b", 4, 2, 0},
		{"ab", 10, 1, 2},
	}
	for _, c := range cases {
		line, column := parser.Position(c.src, c.idx)
		if line != c.line || column != c.column {
			t.Errorf("Position(%q, %d) = %d:%d; want %d:%d", c.src, c.idx, line, column, c.line, c.column)
		}
	}
}
