package sim

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// Simulators trace every dispatch; keep test output quiet.
	// Set DEBUG_TESTS=1 to see dispatch logs: DEBUG_TESTS=1 go test ./sim/... -v
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	} else {
		logrus.SetLevel(logrus.TraceLevel)
	}
	os.Exit(m.Run())
}
