package ast

type (
	// ImportDeclaration is a static import. Specifiers is empty for a bare
	// `import "m"`.
	ImportDeclaration struct {
		Import     Idx
		Specifiers ImportSpecifiers
		Source     *StringLiteral
		End        Idx
	}

	ImportSpecifiers []ImportSpec

	ImportSpec interface {
		Node
		_importSpec()
	}

	// ImportDefaultSpecifier is `d` in `import d from "m"`.
	ImportDefaultSpecifier struct {
		Local *Identifier
	}

	// ImportNamespaceSpecifier is `* as ns` in `import * as ns from "m"`.
	ImportNamespaceSpecifier struct {
		Star  Idx
		Local *Identifier
	}

	// ImportSpecifier is `a` or `a as b` inside braces.
	ImportSpecifier struct {
		Imported *Identifier
		Local    *Identifier
	}

	// ExportNamedDeclaration carries either a Declaration or a specifier list,
	// the latter optionally re-exported from Source.
	ExportNamedDeclaration struct {
		Export      Idx
		Declaration *Statement
		Specifiers  ExportSpecifiers
		Source      *StringLiteral
		End         Idx
	}

	ExportSpecifiers []ExportSpec

	ExportSpec interface {
		Node
		_exportSpec()
	}

	// ExportSpecifier is `a` or `a as b` inside braces.
	ExportSpecifier struct {
		Local    *Identifier
		Exported *Identifier
	}

	// ExportDefaultSpecifier is `v` in `export v from "m"`.
	ExportDefaultSpecifier struct {
		Exported *Identifier
	}

	// ExportNamespaceSpecifier is `* as ns` in `export * as ns from "m"` when
	// combined with other specifiers.
	ExportNamespaceSpecifier struct {
		Star     Idx
		Exported *Identifier
	}

	// ExportDefaultDeclaration has exactly one of Declaration (a function or
	// class declaration, possibly anonymous) or Expression.
	ExportDefaultDeclaration struct {
		Export      Idx
		Declaration *Statement
		Expression  *Expression
		End         Idx
	}

	// ExportAllDeclaration is `export * from "m"`, or `export * as ns from "m"`
	// when Exported is set.
	ExportAllDeclaration struct {
		Export   Idx
		Exported *Identifier
		Source   *StringLiteral
		End      Idx
	}
)

func (*ImportDefaultSpecifier) _importSpec()   {}
func (*ImportNamespaceSpecifier) _importSpec() {}
func (*ImportSpecifier) _importSpec()          {}

func (*ExportSpecifier) _exportSpec()          {}
func (*ExportDefaultSpecifier) _exportSpec()   {}
func (*ExportNamespaceSpecifier) _exportSpec() {}
