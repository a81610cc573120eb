// Package main is the entry point for the vkgrab application.
package main

import (
	"github.com/samber/lo"

	"github.com/vkgrab-cli/vkgrab/cmd"
	"github.com/vkgrab-cli/vkgrab/config"
	"github.com/vkgrab-cli/vkgrab/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
