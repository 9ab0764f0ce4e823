// Package validator checks `validate` struct tags and reports failures as
// a field-to-tag map, the shape the error envelope carries as details.
package validator

import (
	"errors"

	playground "github.com/go-playground/validator/v10"
)

var v = playground.New()

// Validate returns nil when every tag constraint holds, otherwise a map of
// failing field name to the tag it violated.
func Validate(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs playground.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return fields
}
