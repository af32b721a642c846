// Package usage builds the "how to use this Dockerfile" instructions shown after generation.
package usage

import (
	"fmt"
	"io"
	"strings"

	"github.com/dublyo/dockergen/frameworks"
)

// Instructions are the steps to build and run a generated Dockerfile
type Instructions struct {
	Framework frameworks.Framework
	Image     string // e.g., "my-nextjs-app"
	Build     string // docker build command
	Run       string // docker run command
	URL       string // where the running app is reachable
}

// For returns the instructions for a framework
func For(f frameworks.Framework) Instructions {
	image := fmt.Sprintf("my-%s-app", f.Key)
	return Instructions{
		Framework: f,
		Image:     image,
		Build:     fmt.Sprintf("docker build -t %s .", image),
		Run:       fmt.Sprintf("docker run -p %d:%d %s", f.HostPort, f.Port, image),
		URL:       fmt.Sprintf("http://localhost:%d", f.HostPort),
	}
}

// Steps returns the numbered steps as plain lines
func (i Instructions) Steps() []string {
	return []string{
		fmt.Sprintf("Create a new file named Dockerfile (no extension) in your %s project's root directory", i.Framework.Name),
		"Copy the generated content into the Dockerfile",
		"Open a terminal in your project directory",
		"Build the Docker image:\n     " + i.Build,
		"Run the container:\n     " + i.Run,
		fmt.Sprintf("Visit %s in your browser", i.URL),
	}
}

// Write prints the instructions as a numbered list
func (i Instructions) Write(w io.Writer) error {
	var b strings.Builder
	b.WriteString("How to use this Dockerfile:\n")
	for n, step := range i.Steps() {
		fmt.Fprintf(&b, "  %d. %s\n", n+1, step)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
