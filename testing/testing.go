// SPDX-License-Identifier: MIT

package testing

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-reflect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Step helpers that make scenario tests read as specifications. They only
// delimit blocks; all of them run their logic immediately.

func SETUP(_ string, logic func()) {
	logic()
}

func GIVEN(_ string, logic func()) {
	logic()
}

func WHEN(_ string, logic func()) {
	logic()
}

func THEN(logic func()) {
	logic()
}

func IT(_ string, logic func()) {
	logic()
}

func AND(_ string, logic func()) {
	logic()
}

// AssertSymmetricMarshallingUnmarshalling checks that the value marshals to
// exactly expectedMarshalling, that the zero value marshals to
// expectedEmptyMarshallingArg (`{}` if omitted) and that unmarshalling both
// round trips, up to fields tagged `json:"-"`.
func AssertSymmetricMarshallingUnmarshalling[OBJ any](tb testing.TB, expectedUnmarshalling *OBJ, expectedMarshalling string, expectedEmptyMarshallingArg ...string) { //nolint:lll // .
	tb.Helper()
	expectedEmptyMarshalling := "{}"
	if len(expectedEmptyMarshallingArg) == 1 {
		expectedEmptyMarshalling = expectedEmptyMarshallingArg[0]
	}
	assert.Equal(tb, compact(tb, expectedEmptyMarshalling), MustMarshal(tb, new(OBJ)))
	assert.Equal(tb, compact(tb, expectedMarshalling), MustMarshal(tb, expectedUnmarshalling))
	assert.EqualValues(tb, new(OBJ), MustUnmarshal[OBJ](tb, "{}"))
	clearIgnoredFields(expectedUnmarshalling)
	assert.EqualValues(tb, expectedUnmarshalling, MustUnmarshal[OBJ](tb, expectedMarshalling))
}

func MustMarshal(tb testing.TB, val any) string {
	tb.Helper()
	valueBytes, err := json.MarshalContext(context.Background(), val)
	require.NoError(tb, err)

	return string(valueBytes)
}

func MustUnmarshal[T any](tb testing.TB, val string) *T {
	tb.Helper()
	tt := new(T)
	require.NoError(tb, json.UnmarshalContext(context.Background(), []byte(val), tt))

	return tt
}

func compact(tb testing.TB, val string) string {
	tb.Helper()
	buffer := new(bytes.Buffer)
	require.NoError(tb, json.Compact(buffer, []byte(val)))

	return buffer.String()
}

// clearIgnoredFields zero-values every `json:"-"` field, recursively, so
// that a value can be compared to what survives a marshalling round trip.
func clearIgnoredFields(val any) {
	vValue := reflect.ValueOf(val).Elem()
	vType := vValue.Type()
	for ix := range vType.NumField() {
		field := vType.Field(ix)
		if field.PkgPath != "" {
			continue
		}
		if field.Tag.Get("json") == "-" {
			vValue.Field(ix).Set(reflect.Zero(field.Type))

			continue
		}
		switch value := vValue.Field(ix); value.Kind() {
		case reflect.Struct:
			clearIgnoredFields(value.Addr().Interface())
		case reflect.Ptr:
			if value.Elem().Kind() == reflect.Struct {
				clearIgnoredFields(value.Interface())
			}
		}
	}
}
