package parser

import (
	"fmt"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-esm/ast"
)

var log = commonlog.GetLogger("esm.parser")

type (
	// AtomHook may parse a primary expression starting at the current token.
	// It reports false, without consuming input, to decline.
	AtomHook func(p *Parser) (*ast.Expression, bool)

	// StatementHook may parse a statement starting at the current token.
	StatementHook func(p *Parser) (*ast.Statement, bool)

	// DeclarationHook may parse the rest of an import or export declaration.
	// The keyword at start has already been consumed.
	DeclarationHook func(p *Parser, start ast.Idx) (*ast.Statement, bool)

	// AwaitHook decides whether an await at idx is accepted as an await
	// expression, or as the await of a for-await-of head when forAwait is
	// set, although the enclosing context does not allow one. The current
	// token is the await keyword.
	AwaitHook func(p *Parser, idx ast.Idx, forAwait bool) bool

	// RecoverHook decides whether a malformed construct is tolerated.
	RecoverHook func(p *Parser, irr ast.Irregularity) bool
)

// Hooks is the table of grammar extension points. Each point runs its hooks
// in registration order and the first one that accepts wins.
type Hooks struct {
	atom        []AtomHook
	statement   []StatementHook
	export      []DeclarationHook
	imprt       []DeclarationHook
	await       []AwaitHook
	recoverable []RecoverHook

	installed []string
	frozen    bool
}

// Extension is a named set of grammar hooks.
type Extension interface {
	Name() string
	Install(h *Hooks) error
}

func (h *Hooks) register() error {
	if h.frozen {
		return ErrHooksFrozen
	}
	return nil
}

func (h *Hooks) OnAtom(hook AtomHook) error {
	if err := h.register(); err != nil {
		return err
	}
	h.atom = append(h.atom, hook)
	return nil
}

func (h *Hooks) OnStatement(hook StatementHook) error {
	if err := h.register(); err != nil {
		return err
	}
	h.statement = append(h.statement, hook)
	return nil
}

// OnExport registers a hook consulted right after the export keyword.
func (h *Hooks) OnExport(hook DeclarationHook) error {
	if err := h.register(); err != nil {
		return err
	}
	h.export = append(h.export, hook)
	return nil
}

// OnImport registers a hook consulted after the import keyword of an import
// declaration. Dynamic import and import.meta never reach it.
func (h *Hooks) OnImport(hook DeclarationHook) error {
	if err := h.register(); err != nil {
		return err
	}
	h.imprt = append(h.imprt, hook)
	return nil
}

func (h *Hooks) OnAwait(hook AwaitHook) error {
	if err := h.register(); err != nil {
		return err
	}
	h.await = append(h.await, hook)
	return nil
}

func (h *Hooks) OnRecoverable(hook RecoverHook) error {
	if err := h.register(); err != nil {
		return err
	}
	h.recoverable = append(h.recoverable, hook)
	return nil
}

// Installed lists the installed extensions in installation order.
func (h *Hooks) Installed() []string {
	return slices.Clone(h.installed)
}

// Install adds ext to the parser. Installing an extension with a name that is
// already installed does nothing.
func (p *Parser) Install(ext Extension) error {
	name := ext.Name()
	if p.hooks.frozen {
		return fmt.Errorf("install %s: %w", name, ErrHooksFrozen)
	}
	if slices.Contains(p.hooks.installed, name) {
		log.Debugf("extension %s already installed", name)
		return nil
	}
	if err := ext.Install(&p.hooks); err != nil {
		return fmt.Errorf("install %s: %w", name, err)
	}
	p.hooks.installed = append(p.hooks.installed, name)
	log.Debugf("installed extension %s", name)
	return nil
}

// Installed lists the extensions installed on p.
func (p *Parser) Installed() []string {
	return p.hooks.Installed()
}

func (p *Parser) tryAtom() (*ast.Expression, bool) {
	for _, hook := range p.hooks.atom {
		if expr, ok := hook(p); ok {
			return expr, true
		}
	}
	return nil, false
}

func (p *Parser) tryStatement() (*ast.Statement, bool) {
	for _, hook := range p.hooks.statement {
		if stmt, ok := hook(p); ok {
			return stmt, true
		}
	}
	return nil, false
}

func (p *Parser) tryDeclaration(hooks []DeclarationHook, start ast.Idx) (*ast.Statement, bool) {
	for _, hook := range hooks {
		if stmt, ok := hook(p, start); ok {
			return stmt, true
		}
	}
	return nil, false
}

func (p *Parser) relaxAwait(idx ast.Idx, forAwait bool) bool {
	for _, hook := range p.hooks.await {
		if hook(p, idx, forAwait) {
			return true
		}
	}
	return false
}
