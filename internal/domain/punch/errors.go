package punch

import (
	"fmt"
	"strings"
)

// RequiredColumns are the canonical columns the pipeline needs after client
// normalization. The first three characters of ID are the location code.
var RequiredColumns = []string{"ID", "Employee", "In Punch", "Out Punch", "Totaled Amount"}

// SchemaError reports required canonical columns missing from the punch
// dataset after client-specific normalization. It is fatal: the invocation
// must not attempt partial processing.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("punch data is missing required columns: %s", strings.Join(e.Missing, ", "))
}
