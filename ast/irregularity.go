package ast

// IrregularityKind enumerates the malformed constructs a tolerant parse may
// recover from.
type IrregularityKind int

const (
	_ IrregularityKind = iota

	// IrregularAssignTarget is an assignment or update whose target is not
	// assignable, or assigns to eval/arguments in strict code.
	IrregularAssignTarget
	// IrregularStrictDelete is `delete identifier` in strict code.
	IrregularStrictDelete
	// IrregularLegacyOctal is a legacy octal literal or escape in strict code.
	IrregularLegacyOctal
	// IrregularStrictWith is a with statement in strict code.
	IrregularStrictWith
	// IrregularDuplicateExport is a second export of the same name.
	IrregularDuplicateExport
)

var irregularityNames = [...]string{
	IrregularAssignTarget:    "AssignTarget",
	IrregularStrictDelete:    "StrictDelete",
	IrregularLegacyOctal:     "LegacyOctal",
	IrregularStrictWith:      "StrictWith",
	IrregularDuplicateExport: "DuplicateExport",
}

func (k IrregularityKind) String() string {
	if k > 0 && int(k) < len(irregularityNames) {
		return irregularityNames[k]
	}
	return "Irregularity"
}

// Irregularity records one recovered error: what went wrong and where.
type Irregularity struct {
	Kind    IrregularityKind
	Idx     Idx
	Message string
}
