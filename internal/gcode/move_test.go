package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMove(t *testing.T) {
	testCases := []struct {
		desc string
		line string
		want bool
	}{
		{"extrusion move", "G1 X10.5 Y20.1 E0.5", true},
		{"travel move", "G1 X10 Y20 F9000", true},
		{"missing Y", "G1 X10 E0.5", false},
		{"missing X", "G1 Y20 E0.5", false},
		{"z only", "G1 Z1.4 F1200", false},
		{"not G1", "G0 X10 Y20", false},
		{"indented G1", " G1 X10 Y20", false},
		{"comment", "; G1 X10 Y20", false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, IsMove(tc.line))
		})
	}
}

func TestRewriteExtrusion(t *testing.T) {
	testCases := []struct {
		desc       string
		line       string
		multiplier float64
		want       string
		ok         bool
	}{
		{"doubles and renders five decimals", "G1 X1 Y1 E0.5", 2.0, "G1 X1 Y1 E1.00000", true},
		{"identity multiplier re-renders", "G1 X1 Y1 E0.5", 1.0, "G1 X1 Y1 E0.50000", true},
		{"negative value", "G1 X1 Y1 E-0.25", 2.0, "G1 X1 Y1 E-0.50000", true},
		{"trims surrounding whitespace", "G1 X1 Y1 E0.5 ", 1.5, "G1 X1 Y1 E0.75000", true},
		{"bare E has no value", "G1 X1 Y1 E", 2.0, "G1 X1 Y1 E", false},
		{"no E field", "G1 X1 Y1 F9000", 2.0, "G1 X1 Y1 F9000", false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, ok := RewriteExtrusion(tc.line, tc.multiplier)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestZMove(t *testing.T) {
	assert.Equal(t, "G1 Z1.100 F1200 ; Z shift for inner wall", ZMove(1.1, "Z shift for inner wall"))
	assert.Equal(t, "G1 Z0.000 F1200 ; Reset Z at object end", ZMove(0, "Reset Z at object end"))
}
