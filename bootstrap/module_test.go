//go:build unit

package bootstrap_test

import (
	"testing"

	"github.com/ngoclaithe/camerental/bootstrap"
	"github.com/ngoclaithe/camerental/session"
	"github.com/ngoclaithe/camerental/upload"
	"github.com/ngoclaithe/camerental/wizard"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:3000")
	t.Setenv("CLOUDINARY_NAME", "test-cloud")
	t.Setenv("CLOUDINARY_PRESET_NAME", "test-preset")

	t.Run("the full graph resolves", func(t *testing.T) {
		err := fx.ValidateApp(
			bootstrap.Module,
			fx.Invoke(func(*session.Manager, *wizard.Wizard, *upload.Uploader) {}),
		)
		assert.NoError(t, err)
	})

	t.Run("each top-level component is constructible on its own", func(t *testing.T) {
		invokes := []fx.Option{
			fx.Invoke(func(*session.Manager) {}),
			fx.Invoke(func(*wizard.Wizard) {}),
			fx.Invoke(func(*upload.Uploader) {}),
		}
		for _, invoke := range invokes {
			assert.NoError(t, fx.ValidateApp(bootstrap.Module, invoke))
		}
	})
}
