package hcl

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/perdiem/internal/reimburse"
	"github.com/vk/perdiem/internal/testutil"
	"github.com/vk/perdiem/internal/trip"
	"github.com/vk/perdiem/internal/tripinput"
)

func TestLoad_TripsAndRates(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := testutil.WriteFiles(t, map[string]string{
		"trips.hcl": `
			rates "low" {
				travel = 40
				full   = "70"
			}

			trip "kickoff" {
				cost  = "low"
				start = "2024-01-01"
				end   = "2024-01-03"
			}

			trip "review" {
				cost  = "-hc"
				start = "01/04/2024"
				end   = "01/05/2024"
			}
		`,
	})

	// --- Act ---
	batch, err := NewLoader().Load(context.Background(), filepath.Join(dir, "trips.hcl"))

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []tripinput.Tuple{
		{Cost: "--low", Start: "2024-01-01", End: "2024-01-03", Source: `trips.hcl:trip "kickoff"`},
		{Cost: "-hc", Start: "01/04/2024", End: "01/05/2024", Source: `trips.hcl:trip "review"`},
	}, batch.Tuples)
	assert.Equal(t, reimburse.RateTable{trip.LowCost: {Travel: 40, Full: 70}}, batch.Rates)
}

func TestLoad_DirectoryInLexicalOrder(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"02-second.hcl": `trip "b" {
  cost  = "high"
  start = "2024-02-01"
  end   = "2024-02-02"
}`,
		"01-first.hcl": `trip "a" {
  cost  = "-l"
  start = "2024-01-01"
  end   = "2024-01-02"
}`,
		"README.md": "not a trips file",
	})

	batch, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, batch.Tuples, 2)
	assert.Equal(t, "-l", batch.Tuples[0].Cost)
	assert.Equal(t, "--high", batch.Tuples[1].Cost)
	assert.Empty(t, batch.Rates)
}

func TestLoad_UnknownCostIsLeftForValidation(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"trips.hcl": `trip "x" {
  cost  = "medium"
  start = "2024-01-01"
  end   = "2024-01-01"
}`,
	})

	batch, err := NewLoader().Load(context.Background(), dir)

	require.NoError(t, err)
	require.Len(t, batch.Tuples, 1)
	assert.Equal(t, "medium", batch.Tuples[0].Cost)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		files       map[string]string
		errContains string
	}{
		{
			name:        "syntax error",
			files:       map[string]string{"trips.hcl": `trip "a" {`},
			errContains: "failed to parse HCL file",
		},
		{
			name: "missing required attribute",
			files: map[string]string{"trips.hcl": `trip "a" {
  cost  = "-l"
  start = "2024-01-01"
}`},
			errContains: "failed to decode HCL file",
		},
		{
			name:        "unknown block",
			files:       map[string]string{"trips.hcl": `project "a" {}`},
			errContains: "failed to decode HCL file",
		},
		{
			name: "unknown rates tier",
			files: map[string]string{"trips.hcl": `rates "medium" {
  travel = 1
  full   = 2
}`},
			errContains: `unknown rates tier "medium"`,
		},
		{
			name: "negative rate",
			files: map[string]string{"trips.hcl": `rates "high" {
  travel = -5
  full   = 2
}`},
			errContains: "must not be negative",
		},
		{
			name: "fractional rate",
			files: map[string]string{"trips.hcl": `rates "high" {
  travel = 5.5
  full   = 2
}`},
			errContains: `"travel"`,
		},
		{
			name: "non-numeric rate",
			files: map[string]string{"trips.hcl": `rates "low" {
  travel = "lots"
  full   = 2
}`},
			errContains: "cannot convert",
		},
		{
			name: "duplicate rates across files",
			files: map[string]string{
				"a.hcl": `rates "low" {
  travel = 1
  full   = 2
}`,
				"b.hcl": `rates "low" {
  travel = 3
  full   = 4
}`,
			},
			errContains: "already declared",
		},
		{
			name:        "empty directory",
			files:       map[string]string{"notes.txt": "nothing here"},
			errContains: "no .hcl files found",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := testutil.WriteFiles(t, tc.files)
			_, err := NewLoader().Load(context.Background(), dir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad_PathErrors(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{"trips.txt": "x"})

	_, err := NewLoader().Load(context.Background(), filepath.Join(dir, "missing.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing path")

	_, err = NewLoader().Load(context.Background(), filepath.Join(dir, "trips.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a .hcl file")
}
