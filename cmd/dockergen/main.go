// Dockergen - Dockerfile generator for common web frameworks
// Copyright (c) 2026 Dublyo. All rights reserved.
// Licensed under the MIT License. See LICENSE file for details.
//
// This is the main entry point for the dockergen CLI tool.
// For usage information, run: dockergen --help
package main

import (
	"github.com/dublyo/dockergen/internal/cli"
)

func main() {
	cli.Execute()
}
