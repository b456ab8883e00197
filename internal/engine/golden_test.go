package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bricklayers/internal/gcode"
)

// Golden tests pin the full rewritten output for realistic fixture files.
// To regenerate golden files, run:
//
//	go test ./internal/engine -update
func TestProcess_Golden(t *testing.T) {
	testCases := []struct {
		name    string
		opts    Options
		dialect gcode.Dialect
	}{
		{
			name:    "bambu_cube",
			opts:    Options{LayerHeight: 0.2, ExtrusionMultiplier: 1.5},
			dialect: gcode.DialectBambu,
		},
		{
			name:    "prusa_ring",
			opts:    Options{LayerHeight: 0.2, ExtrusionMultiplier: 1.0},
			dialect: gcode.DialectPrusa,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", tc.name+".gcode"))
			require.NoError(t, err)
			lines := strings.Split(string(data), "\n")

			result, err := Process(lines, tc.opts)
			require.NoError(t, err)
			require.Equal(t, tc.dialect, result.Dialect)

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, tc.name, []byte(strings.Join(result.Lines, "\n")))
		})
	}
}
