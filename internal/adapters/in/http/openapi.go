package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"shipping/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPISpec []byte

var (
	docOnce sync.Once
	doc     *openapi3.T
	docErr  error
)

// Document returns the parsed and validated OpenAPI description of the API.
func Document() (*openapi3.T, error) {
	docOnce.Do(func() {
		loaded, err := openapi3.NewLoader().LoadFromData(openAPISpec)
		if err != nil {
			docErr = fmt.Errorf("load openapi document: %w", err)
			return
		}
		if err = loaded.Validate(context.Background()); err != nil {
			docErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}
		doc = loaded
	})
	return doc, docErr
}

// swaggerDoc feeds the embedded document to echo-swagger's doc.json.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	d, err := Document()
	if err != nil {
		return ""
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	return string(raw)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}

func newOpenAPIRouter() (routers.Router, error) {
	d, err := Document()
	if err != nil {
		return nil, err
	}
	return legacy.NewRouter(d)
}

// openAPIValidator rejects requests whose path, query or body break the
// document. Routes the document does not describe pass through untouched.
func openAPIValidator(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			if err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}); err != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", err)
			}
			return next(c)
		}
	}
}
