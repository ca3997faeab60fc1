// Package ext provides the grammar extensions installed on top of the base
// parser. Each extension is a parser.Extension that registers hooks on the
// parser's hook table.
package ext

import (
	"github.com/tliron/commonlog"

	"github.com/t14raptor/go-esm/parser"
)

var log = commonlog.GetLogger("esm.ext")

// Extension names, as reported by parser.Hooks.Installed.
const (
	NameAwaitAnywhere    = "await-anywhere"
	NameDynamicImport    = "dynamic-import"
	NameTolerance        = "tolerance"
	NameExportExtensions = "export-extensions"
	NameImportExtensions = "import-extensions"
)

var (
	_ parser.Extension = AwaitAnywhere{}
	_ parser.Extension = DynamicImport{}
	_ parser.Extension = Tolerance{}
	_ parser.Extension = ExportExtensions{}
	_ parser.Extension = ImportExtensions{}
)
