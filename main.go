package main

// @title           Stevedore
// @version         0.1.0
// @description     Stevedore resolves git refs into deterministic image tags, builds container images and publishes them to an OCI registry.

import (
	"github.com/stevedore-dev/stevedore/cmd"
)

func main() {
	cmd.Execute()
}
