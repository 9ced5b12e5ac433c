package http

import (
	"strings"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// pathUUID binds a required uuid path segment the way generated oapi-codegen
// wrappers do.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return toKernelUUID(name, raw)
}

// queryUUID returns nil when the parameter is absent.
func queryUUID(c echo.Context, name string) (*kernel.UUID, error) {
	var raw *openapi_types.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if raw == nil {
		return nil, nil
	}
	id, err := toKernelUUID(name, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	var v *float64
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func queryString(c echo.Context, name string) (string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// queryList splits a comma-separated parameter.
func queryList(c echo.Context, name string) ([]string, error) {
	raw, err := queryString(c, name)
	if err != nil || raw == "" {
		return nil, err
	}
	return strings.Split(raw, ","), nil
}

func parseUUID(name string, s string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func parseOptionalUUID(name string, s *string) (*kernel.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := parseUUID(name, *s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toKernelUUID(name string, raw openapi_types.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
