package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValueAndScan(t *testing.T) {
	d := NewDate(2024, time.June, 5)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", v)

	tests := []struct {
		name  string
		input any
	}{
		{name: "string", input: "2024-06-05"},
		{name: "bytes", input: []byte("2024-06-05")},
		{name: "datetime text", input: "2024-06-05 00:00:00+00:00"},
		{name: "time", input: time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			require.NoError(t, got.Scan(tt.input))
			assert.Equal(t, d, got)
		})
	}
}

func TestDateScanRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan("not a date"))
	assert.Error(t, d.Scan(42))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestUserContactTrimming(t *testing.T) {
	blank := "   "
	phone := " +966500000000 "
	u := &User{Phone: &phone, Email: &blank}

	assert.Equal(t, "+966500000000", u.PhoneNumber())
	assert.Equal(t, "", u.EmailAddress())
	assert.Equal(t, "", (&User{}).PhoneNumber())
}

func TestVehicleOwnedBy(t *testing.T) {
	owner := uint(3)
	v := &Vehicle{OwnerID: &owner}
	assert.True(t, v.OwnedBy(3))
	assert.False(t, v.OwnedBy(4))
	assert.False(t, (&Vehicle{}).OwnedBy(3))
}
