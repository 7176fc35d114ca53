package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "midnight", input: "00:00"},
		{name: "last minute", input: "23:59"},
		{name: "hour 24", input: "24:00", wantErr: true},
		{name: "minute 60", input: "10:60", wantErr: true},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "seconds", input: "10:00:00", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), got)

	_, err = ts.AddMinutes(14 * 60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("bad").IsBefore("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("14:00:00")))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 7, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
