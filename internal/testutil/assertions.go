package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertInstanceAdded checks the log output within a HarnessResult to confirm
// that a model instance was committed to the plant.
func AssertInstanceAdded(t *testing.T, result *HarnessResult, instanceName string) {
	t.Helper()

	expected := fmt.Sprintf("model_instance=%s ", instanceName)
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Model instance added.") && strings.Contains(line, expected) {
			return
		}
	}
	require.Fail(t, "model instance not added", "expected a log line for instance '%s'", instanceName)
}
