package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestMain builds the circ binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "circ-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	circBin = filepath.Join(tmpDir, "circ")

	cmd := exec.Command("go", "build", "-o", circBin, "./cmd/circ")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}
