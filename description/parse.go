package description

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ParseFloats splits up space-delimited fields in a string, such as xyz or rpy attributes, and converts them to floats.
func ParseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	converted := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", field)
		}
		converted = append(converted, value)
	}
	return converted, nil
}

// ParseVector parses exactly three space-delimited floats.
func ParseVector(s string) (r3.Vector, error) {
	values, err := ParseFloats(s)
	if err != nil {
		return r3.Vector{}, err
	}
	if len(values) != 3 {
		return r3.Vector{}, errors.Errorf("expected 3 values, got %d in %q", len(values), s)
	}
	return r3.Vector{X: values[0], Y: values[1], Z: values[2]}, nil
}
