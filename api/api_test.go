package api_test

import (
	"encoding/json"
	"testing"

	"jinbbq/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders/{id}/cancel"))
	assert.Contains(t, doc.Components.SecuritySchemes, "bearerAuth")
}

func TestSwaggerRegistration(t *testing.T) {
	got, err := swag.ReadDoc()

	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &doc), "Swagger UI expects JSON")
	assert.Equal(t, "3.0.3", doc["openapi"])
	assert.NotEmpty(t, api.Document())
}
