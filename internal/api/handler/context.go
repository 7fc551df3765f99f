package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DioneMartin/REST-AWS/internal/core/validation"
)

// pathID parses the :id path parameter. Anything that is not a positive
// integer cannot name an existing record, so it yields notFound.
func pathID(c echo.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

// bindRecord decodes the request body into a raw record for the schema
// validator. The body must be a single JSON object.
func bindRecord(c echo.Context) (validation.Record, error) {
	var rec validation.Record
	if err := json.NewDecoder(c.Request().Body).Decode(&rec); err != nil || rec == nil {
		return nil, errInvalidPayload
	}
	return rec, nil
}

// bindRequest decodes a typed request body and runs its struct rules.
func bindRequest(c echo.Context, req any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil {
		return errInvalidPayload
	}
	return c.Validate(req)
}

var errInvalidPayload = echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
