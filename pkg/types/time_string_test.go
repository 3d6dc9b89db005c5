package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		wantErr bool
	}{
		{name: "valid morning", value: "09:00"},
		{name: "valid afternoon", value: "16:00"},
		{name: "missing leading zero", value: "9:00", wantErr: true},
		{name: "seconds", value: "09:00:00", wantErr: true},
		{name: "out of range", value: "25:00", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("15:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("16:15"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("SAST", 2*60*60)
	date := time.Date(2025, 6, 10, 18, 45, 0, 0, loc)

	got, err := TimeString("10:00").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, loc), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("09:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("16:00").IsAfter("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
}
