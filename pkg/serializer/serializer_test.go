package serializer

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, Format("JSON").IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Write(buf, FormatJSON, payload{Name: "dough", Items: []string{"flour", "water"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"name": "dough"`)
}

func TestWriteYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Write(buf, FormatYAML, payload{Name: "dough", Items: []string{"flour", "water"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name: dough")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("xml"), payload{})
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "p.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"cake","items":["sugar"]}`), 0o600))

	got, err := FromFile[payload](jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "cake", got.Name)
	assert.Equal(t, []string{"sugar"}, got.Items)

	yamlPath := filepath.Join(dir, "p.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: cake\nitems:\n  - sugar\n"), 0o600))

	got, err = FromFile[payload](yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "cake", got.Name)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile[payload](filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, 200, payload{Name: "dough"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), `"name":"dough"`))
}
