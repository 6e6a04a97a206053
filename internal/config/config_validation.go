package config

import "fmt"

// validate checks the merged structured config for values that no
// source may leave broken. Most requirements are runtime-view specific
// and live in [ClientConfig.validate].
func (c *StructuredConfig) validate() error {
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

// validate checks that the runtime view carries everything the engine
// needs to operate.
func (c *ClientConfig) validate() error {
	if c.Workspace.Root == "" {
		return fmt.Errorf("%w: workspace root is required", ErrInvalidWorkspaceConfigs)
	}
	if c.Adapter.Address == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidAdapterConfigs)
	}
	if c.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
