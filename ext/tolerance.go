package ext

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-esm/ast"
	"github.com/t14raptor/go-esm/parser"
)

// Tolerance accepts a fixed set of early errors that leave the tree
// well-formed. Each accepted error is recorded on the program and the
// affected node is wrapped in a RecoveredExpression or RecoveredStatement.
type Tolerance struct{}

// Tolerated lists the irregularity kinds Tolerance accepts.
var Tolerated = []ast.IrregularityKind{
	ast.IrregularAssignTarget,
	ast.IrregularStrictDelete,
	ast.IrregularLegacyOctal,
	ast.IrregularStrictWith,
	ast.IrregularDuplicateExport,
}

func (Tolerance) Name() string { return NameTolerance }

func (Tolerance) Install(h *parser.Hooks) error {
	return h.OnRecoverable(tolerate)
}

func tolerate(p *parser.Parser, irr ast.Irregularity) bool {
	if !slices.Contains(Tolerated, irr.Kind) {
		return false
	}
	line, column := parser.Position(p.Source(), irr.Idx)
	log.Debugf("tolerating %s at %d:%d: %s", irr.Kind, line, column, irr.Message)
	return true
}
