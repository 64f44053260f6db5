package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	path := ResolveSchemaPath("schemas/config.schema.json")
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.schema.json"))
}

func TestValidateFile_ValidConfig(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/config.schema.json")
	require.NotEmpty(t, schemaPath)

	docPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"port": 5000, "classpath": "libs", "count_file": "visitor_count.json"}`
	require.NoError(t, os.WriteFile(docPath, []byte(content), 0644))

	assert.NoError(t, ValidateFile(schemaPath, docPath))
}

func TestValidateFile_InvalidConfig(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/config.schema.json")
	require.NotEmpty(t, schemaPath)

	docPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"port": "not-a-number", "unknown_field": true}`
	require.NoError(t, os.WriteFile(docPath, []byte(content), 0644))

	err := ValidateFile(schemaPath, docPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateFile_MissingSchema(t *testing.T) {
	docPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{}`), 0644))

	err := ValidateFile(filepath.Join(t.TempDir(), "no.schema.json"), docPath)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
