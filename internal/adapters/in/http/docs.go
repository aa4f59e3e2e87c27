package http

import (
	_ "embed"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPIDocument []byte

// OpenAPIDocument returns the API description served at /swagger/doc.json.
func OpenAPIDocument() []byte {
	return openAPIDocument
}

func init() {
	swag.Register(swag.Name, &swag.Spec{
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(openAPIDocument),
	})
}

func registerDocs(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
