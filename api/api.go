// Package api embeds the OpenAPI document describing the HTTP interface.
package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var document []byte

// Document returns the raw OpenAPI YAML.
func Document() []byte {
	return document
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// swaggerDoc serves the document to Swagger UI as JSON.
type swaggerDoc struct {
	once sync.Once
	json string
}

func (d *swaggerDoc) ReadDoc() string {
	d.once.Do(func() {
		d.json = string(document)
		doc, err := openapi3.NewLoader().LoadFromData(document)
		if err != nil {
			return
		}
		if b, err := json.Marshal(doc); err == nil {
			d.json = string(b)
		}
	})
	return d.json
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
