package tripinput

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/perdiem/internal/trip"
)

func TestParseTokens_Valid(t *testing.T) {
	t.Parallel()

	v := Validator{Location: time.UTC}
	raws, err := v.ParseTokens([]string{
		"-l", "01/01/2024", "01/03/2024",
		"--high", "2024-01-04", "2024-01-04",
	})

	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, trip.LowCost, raws[0].Tier)
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(raws[0].Start))
	assert.True(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC).Equal(raws[0].End))
	assert.Equal(t, "args[0]", raws[0].Source)

	assert.Equal(t, trip.HighCost, raws[1].Tier)
	assert.Equal(t, "args[3]", raws[1].Source)
}

func TestTuples_SourceCountsFromOffset(t *testing.T) {
	t.Parallel()

	tuples, err := Tuples([]string{
		"-x", "2024-01-01", "2024-01-02",
		"-l", "2024-01-03", "2024-01-04",
	}, 2)
	require.NoError(t, err)
	require.Len(t, tuples, 2)
	assert.Equal(t, "args[2]", tuples[0].Source)
	assert.Equal(t, "args[5]", tuples[1].Source)

	_, err = Validator{Location: time.UTC}.Validate(tuples)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "args[2]", verr.Fields[0].Source)
}

func TestParseTokens_Ungroupable(t *testing.T) {
	t.Parallel()

	_, err := Validator{}.ParseTokens([]string{"-l", "01/01/2024"})
	require.ErrorIs(t, err, ErrUngroupable)
}

func TestValidate_ReportsIndependentFieldErrors(t *testing.T) {
	t.Parallel()

	v := Validator{Location: time.UTC}
	raws, err := v.Validate([]Tuple{
		{Cost: "-l", Start: "2024-01-01", End: "2024-01-02"},
		{Cost: "-x", Start: "not-a-date", End: "2024-01-05"},
		{Cost: "-h", Start: "2024-02-10", End: "2024-02-01"},
	})

	require.Error(t, err)
	assert.Nil(t, raws, "a batch with any invalid trip is rejected as a whole")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)

	assert.Equal(t, 1, verr.Fields[0].Trip)
	assert.Equal(t, FieldCost, verr.Fields[0].Field)
	assert.ErrorIs(t, verr.Fields[0], ErrInvalidCostFlag)

	assert.Equal(t, 1, verr.Fields[1].Trip)
	assert.Equal(t, FieldStart, verr.Fields[1].Field)
	assert.ErrorIs(t, verr.Fields[1], ErrInvalidDate)

	assert.Equal(t, 2, verr.Fields[2].Trip)
	assert.Equal(t, FieldDates, verr.Fields[2].Field)

	assert.True(t, errors.Is(err, ErrInvalidCostFlag))
	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.True(t, errors.Is(err, ErrStartAfterEnd))
	assert.Contains(t, err.Error(), "3 invalid field(s)")
	assert.Contains(t, err.Error(), `trip 2: cost "-x"`)
}

func TestValidate_MisorderCheckedOnlyWhenBothDatesParse(t *testing.T) {
	t.Parallel()

	_, err := Validator{Location: time.UTC}.Validate([]Tuple{
		{Cost: "-l", Start: "2024-05-01", End: "garbage", Source: "trips.hcl"},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, FieldEnd, verr.Fields[0].Field)
	assert.False(t, errors.Is(err, ErrStartAfterEnd))
	assert.Contains(t, err.Error(), "trip 1 (trips.hcl)")
}

func TestValidate_SameDayTripIsValid(t *testing.T) {
	t.Parallel()

	raws, err := Validator{Location: time.UTC}.Validate([]Tuple{
		{Cost: "-hc", Start: "03/15/2024", End: "2024-03-15"},
	})
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.True(t, raws[0].Start.Equal(raws[0].End))
}
