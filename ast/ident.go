package ast

type (
	Identifier struct {
		Idx  Idx
		Name string
	}

	// PrivateIdentifier is a #name class member key.
	PrivateIdentifier struct {
		Idx  Idx
		Name string // without the leading #
	}
)

func (*Identifier) _expr()        {}
func (*PrivateIdentifier) _expr() {}
