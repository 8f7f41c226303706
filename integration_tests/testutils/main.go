package testutils

import (
	"log"
	"testing"
)

// RunMain creates the package-wide environment, runs the tests and tears the
// environment down. It returns the exit code for os.Exit.
func RunMain(m *testing.M, env **TestEnvironment) int {
	created, err := NewTestEnvironment()
	if err != nil {
		log.Printf("Failed to setup test environment: %v", err)
		return 1
	}
	*env = created
	defer created.Cleanup()

	return m.Run()
}
