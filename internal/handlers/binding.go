package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/recruiter-api/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names ("resume_text") instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// bindJSON decodes the body into req and validates it. A body without a
// Content-Type is read as JSON. Every failure is a validation error (422).
func bindJSON(c *fiber.Ctx, req interface{}) error {
	var err error
	switch contentType := strings.ToLower(c.Get(fiber.HeaderContentType)); {
	case contentType == "":
		err = c.App().Config().JSONDecoder(c.Body(), req)
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		err = c.BodyParser(req)
	default:
		return apperror.NewValidationError("request body must be JSON")
	}
	if err != nil {
		return apperror.NewValidationError(fmt.Sprintf("invalid request payload: %v", err))
	}
	return validateStruct(req)
}

func validateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
	}
	return apperror.NewValidationError(strings.Join(messages, "; "))
}
