//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "fonemas"
	mainPkg = "./cmd/fonemas"
)

// Default target to run when none is specified
var Default = Build

func ldflags() string {
	version := os.Getenv("FONEMAS_VERSION")
	if version == "" {
		return ""
	}
	return fmt.Sprintf("-X codeberg.org/snonux/fonemas/internal.Version=%s", version)
}

// Build compiles the fonemas binary into the repository root
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, mainPkg)
}

// Test runs all tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install installs the binary into $GOPATH/bin
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binary), binary)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
