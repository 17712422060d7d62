package cmd

import (
	"github.com/spf13/cobra"

	"storefront/core/registry"
)

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Register queues c for the root command. Extension packages call it from
// init(); it panics after Apply.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked, register " + c.Use + " during init")
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(registered(), c))
}

// Apply attaches the queued commands to root and locks the registry.
// Calling it again is a no-op.
func Apply() {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		return
	}
	rootCmd.AddCommand(registered()...)
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
