package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"fleetflow/internal/core/domain/model/kernel"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// requestValidator plugs go-playground/validator into echo.Context.Validate.
// Field names in messages follow the JSON tags.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func fieldViolations(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			out = append(out, fmt.Sprintf("%s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		out = append(out, fmt.Sprintf("%s: must satisfy %s", fe.Field(), fe.Tag()))
	}
	return out
}

// bindBody decodes and validates the request body into req.
func bindBody(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid request body"))
	}
	if err := ctx.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			newError(http.StatusBadRequest, "Invalid request body", fieldViolations(err)...))
	}
	return nil
}

func invalidParam(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest,
		newError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err)))
}

// pathID binds a UUID path parameter.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, invalidParam(name, err)
	}
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, invalidParam(name, err)
	}
	return kid, nil
}

// queryString binds an optional form-style query parameter.
func queryString(ctx echo.Context, name string) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &value); err != nil {
		return "", invalidParam(name, err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

// queryID binds an optional UUID query parameter.
func queryID(ctx echo.Context, name string) (*kernel.UUID, error) {
	var id *openapi_types.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &id); err != nil {
		return nil, invalidParam(name, err)
	}
	if id == nil {
		return nil, nil
	}
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, invalidParam(name, err)
	}
	return &kid, nil
}
