package main

import (
	"errors"
	"strconv"

	"SweetOrderAPI/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// respondError maps a service error to its HTTP status and JSON body.
// Internal errors are reduced to a generic message.
func respondError(c echo.Context, err error) error {
	message := err.Error()
	if apperr.KindOf(err) == apperr.Internal {
		message = "Internal server error"
	}
	body := map[string]interface{}{"message": message}
	if fields := apperr.FieldsOf(err); len(fields) > 0 {
		body["errors"] = fields
	}
	return c.JSON(apperr.Status(err), body)
}

// bindAndValidate binds the JSON body into req and runs schema validation,
// returning an invalid-input error carrying the field-level failures.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperr.New(apperr.InvalidInput, "Invalid input data")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]apperr.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, apperr.FieldError{Field: fe.Field(), Rule: fe.Tag()})
			}
			return apperr.New(apperr.InvalidInput, "Invalid input data").WithFields(fields)
		}
		return apperr.New(apperr.InvalidInput, "Invalid input data")
	}
	return nil
}

// paramID parses an integer path parameter; label names the entity in the
// 400 message ("Invalid product ID").
func paramID(c echo.Context, name, label string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.Newf(apperr.InvalidInput, "Invalid %s ID", label)
	}
	return id, nil
}
