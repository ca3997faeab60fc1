package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t14raptor/go-esm/frontend"
)

type pragmaCase struct {
	Code   string `yaml:"code"`
	Pragma string `yaml:"pragma"`
	Pos    int    `yaml:"pos"`
	Want   bool   `yaml:"want"`
}

func TestHasPragma(t *testing.T) {
	var cases []pragmaCase
	loadYAML(t, "testdata/pragmas.yaml", &cases)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		got := frontend.HasPragmaAt(c.Code, c.Pragma, c.Pos)
		assert.Equal(t, c.Want, got, "HasPragmaAt(%q, %q, %d)", c.Code, c.Pragma, c.Pos)
		if c.Pos == 0 {
			assert.Equal(t, got, frontend.HasPragma(c.Code, c.Pragma), c.Code)
		}
	}
}

func TestHasPragmaPositions(t *testing.T) {
	code := `"use strict"`
	assert.False(t, frontend.HasPragmaAt(code, "use strict", 1))
	assert.False(t, frontend.HasPragmaAt(code, "use strict", len(code)))
	assert.True(t, frontend.HasPragmaAt(code, "use strict", -3))
}
