package handler

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindPayload reads the request body as a free-form JSON object. Validation
// of individual fields belongs to the usecase layer; only a body that is not
// a JSON object at all is rejected here.
func bindPayload(c echo.Context) (map[string]any, error) {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return nil, errors.WithStack(domainerrors.NewValidationError([]string{"request body must be a JSON object"}))
	}

	return payload, nil
}

// listQueryFrom collects the raw listing query parameters. Out-of-range or
// missing values are normalized downstream.
func listQueryFrom(c echo.Context) *usecase.ListQuery {
	return &usecase.ListQuery{
		SortBy:    c.QueryParam("sortBy"),
		Order:     c.QueryParam("order"),
		Limit:     c.QueryParam("limit"),
		PageToken: c.QueryParam("pageToken"),
	}
}
