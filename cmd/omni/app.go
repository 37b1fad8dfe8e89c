package omni

import (
	"io"
	"os"

	"github.com/arthur-debert/omni/pkg/config"
	"github.com/arthur-debert/omni/pkg/operations"
	"github.com/arthur-debert/omni/pkg/prompt"
	"github.com/arthur-debert/omni/pkg/registry"
	"github.com/arthur-debert/omni/pkg/style"
)

// App holds the services a command run depends on.
// Zero fields are filled with the production implementations.
type App struct {
	// NewRegistry builds the operation registry; it is called after
	// logging is configured so that operations get the configured logger.
	NewRegistry func() (*registry.Registry, error)

	// Prompter asks for confirmation before the user configuration changes
	Prompter prompt.Prompter

	In  io.Reader
	Out io.Writer
	Err io.Writer

	settings *config.Settings
}

// DefaultRegistry registers the built-in operations
func DefaultRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if err := operations.Register(reg, operations.DefaultDeps()); err != nil {
		return nil, err
	}
	return reg, nil
}

func (a *App) withDefaults() *App {
	if a.NewRegistry == nil {
		a.NewRegistry = DefaultRegistry
	}
	if a.In == nil {
		a.In = os.Stdin
	}
	if a.Out == nil {
		a.Out = os.Stdout
	}
	if a.Err == nil {
		a.Err = os.Stderr
	}
	return a
}

func (a *App) prompter() prompt.Prompter {
	if a.Prompter != nil {
		return a.Prompter
	}
	return prompt.Auto(a.In, a.Err)
}

func (a *App) renderer() *style.Renderer {
	if a.settings != nil && a.settings.NoColor {
		return style.NewPlainRenderer(a.Err)
	}
	return style.NewRenderer(a.Err)
}
