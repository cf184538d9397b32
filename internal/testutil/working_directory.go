package testutil

import (
	"fmt"
	"os"
	"testing"
)

// ChangeWorkingDirectory switches into dir and restores the previous directory when the test ends.
func ChangeWorkingDirectory(t *testing.T, dir string) {
	t.Helper()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change working directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			panic(fmt.Sprintf("failed to restore original directory: %v", err))
		}
	})
}
