//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary     = "bin/cliengine"
	versionPkg = "github.com/dkoosis/cliengine/internal/version"
)

// Default target - build the binary
var Default = Build

// Build builds the cliengine binary with version metadata
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/cliengine")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

// QA runs formatting, vet, lint and tests
func QA() error {
	mg.SerialDeps(Lint.Format, Lint.Vet, Lint.Golangci, Test.All)
	fmt.Println("QA complete!")
	return nil
}

// Lint namespace for linting commands
type Lint mg.Namespace

// Format checks code formatting
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Golangci runs golangci-lint when installed
func (Lint) Golangci() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Fprintln(os.Stderr, "golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

func ldflags() string {
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	flags := []string{
		"-X " + versionPkg + ".Version=" + envOr("VERSION", "dev"),
		"-X " + versionPkg + ".CommitHash=" + commit,
		"-X " + versionPkg + ".BuildDate=" + time.Now().UTC().Format(time.RFC3339),
	}
	return strings.Join(flags, " ")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
