package web

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMsg flattens validator errors into a single inline form message.
func ValidationMsg(errs validator.ValidationErrors) string {
	var msgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}
