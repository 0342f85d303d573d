package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"realty-crm-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplateFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stage_templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStageTemplates(t *testing.T) {
	path := writeTemplateFile(t, `
default:
  - name: KYC
    sort_order: 2
  - name: Booking
    sort_order: 1
`)

	templates, err := config.LoadStageTemplates(path)
	require.NoError(t, err)
	require.Contains(t, templates, "default")

	stages := templates["default"]
	require.Len(t, stages, 2)
	assert.Equal(t, "Booking", stages[0].Name, "stages are returned sorted by order")
	assert.Equal(t, "KYC", stages[1].Name)
}

func TestLoadStageTemplates_DuplicateOrder(t *testing.T) {
	path := writeTemplateFile(t, `
default:
  - name: Booking
    sort_order: 1
  - name: KYC
    sort_order: 1
`)

	_, err := config.LoadStageTemplates(path)
	assert.ErrorContains(t, err, "duplicate sort order")
}

func TestLoadStageTemplates_EmptyName(t *testing.T) {
	path := writeTemplateFile(t, `
default:
  - name: ""
    sort_order: 1
`)

	_, err := config.LoadStageTemplates(path)
	assert.ErrorContains(t, err, "empty name")
}

func TestLoadStageTemplates_MissingFile(t *testing.T) {
	_, err := config.LoadStageTemplates(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
