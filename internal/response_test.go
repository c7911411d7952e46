package internal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestRespond(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, Respond(out, "Booked: %d / %d", 1, 3))
	require.NoError(t, Error(out, "Booking", errors.New("Seat 2 is already booked.")))

	require.Equal(t, "Booked: 1 / 3\nBooking failed: Seat 2 is already booked.\n", out.String())
}

func TestSchemaErrors(t *testing.T) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(`{"type": "object", "properties": {"capacity": {"type": "integer"}}}`),
		gojsonschema.NewStringLoader(`{"capacity": "many"}`),
	)
	require.NoError(t, err)
	require.False(t, result.Valid())

	got := SchemaErrors(result.Errors())

	require.Error(t, got)
	require.Contains(t, got.Error(), "invalid configuration: ")
	require.Contains(t, got.Error(), "capacity")
}
