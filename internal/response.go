package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// Respond writes a single line to w.
func Respond(w io.Writer, format string, a ...interface{}) error {
	if _, err := fmt.Fprintf(w, format+"\n", a...); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

// Error reports a rejected action, e.g. "Booking failed: Seat 2 is already booked."
func Error(w io.Writer, action string, err error) error {
	return Respond(w, "%s failed: %s", action, err.Error())
}

func SchemaErrors(schemaErrors []gojsonschema.ResultError) error {
	errs := []string{}
	for _, schemaErr := range schemaErrors {
		errs = append(errs, fmt.Sprintf("%v", schemaErr))
	}
	return errors.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
}
