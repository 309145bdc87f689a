// Package handler contains the HTTP handlers. Each handler binds and
// validates the request body, delegates to its service, and renders the JSON
// envelope; no business rules live here.
package handler

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// parseID reads the :id path parameter as an unsigned integer.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return uint(id), nil
}

// fieldErrors flattens validator output into the envelope's errors array.
func fieldErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag()))
	}
	return out
}
