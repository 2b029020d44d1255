// Package main provides the activations command line tool.
package main

import (
	"os"

	"github.com/born-ml/activations/internal/logger"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Log.Error("command failed", "err", err)
		os.Exit(1)
	}
}
