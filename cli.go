//go:build cli
// +build cli

package main

import (
	_ "storefront/custom"

	"storefront/cmd"
	"storefront/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
