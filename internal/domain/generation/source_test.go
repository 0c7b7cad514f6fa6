package generation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor/internal/domain/constant"
	"motor/internal/domain/entity"
	appErrors "motor/internal/pkg/errors"
)

func TestDocumentName(t *testing.T) {
	v := &entity.Vehicle{Year: 2021, Make: "Toyota", Model: "Camry"}
	assert.Equal(t, "2021 Toyota Camry owner-manual", DocumentName(v))
}

func TestCandidateToReminder(t *testing.T) {
	mileage := 40000
	prio := "high"
	c := Candidate{DueDate: "  2024-07-01\n", Message: " Oil change ", Mileage: &mileage, Priority: &prio}

	r, err := c.ToReminder(9)
	require.NoError(t, err)

	assert.Equal(t, uint(9), r.VehicleID)
	assert.Equal(t, constant.TypeMaintenance, r.Type)
	assert.Equal(t, "2024-07-01", r.DueDate.String())
	assert.Equal(t, " Oil change ", r.Message, "message must not be normalized")
	assert.Equal(t, &mileage, r.Mileage)
	assert.False(t, r.IsSent)
}

func TestToRemindersFailsWholeBatch(t *testing.T) {
	tests := []struct {
		name string
		due  string
	}{
		{name: "empty", due: ""},
		{name: "whitespace", due: "   \t"},
		{name: "malformed", due: "01/07/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ToReminders(1, []Candidate{
				{DueDate: "2024-07-01", Message: "ok"},
				{DueDate: tt.due, Message: "bad"},
			})
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, appErrors.ErrValidation))

			var vErr *appErrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "due_date", vErr.Field)
		})
	}
}
