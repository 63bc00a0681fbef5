// Package clientcfg holds the static per-client column-mapping registry.
// Each time-clock vendor exports its own column names; the mapping renames
// them to the canonical set before validation, and the drop list removes
// vendor-specific noise columns.
package clientcfg

// Config describes how to normalize one client's punch export.
type Config struct {
	Mappings    map[string]string
	DropColumns []string
}

var registry = map[string]Config{
	"demo_client": {
		Mappings:    map[string]string{"Employee": "Employee", "ID": "ID"},
		DropColumns: []string{"Org Path", "Date/Time"},
	},
	"client_b": {
		Mappings:    map[string]string{"Staff_No": "ID", "Clock_In": "In Punch"},
		DropColumns: []string{"Temp_Calculation_Field", "Audit_Log_ID"},
	},
}

// Lookup returns the client's normalization config. Unknown clients get an
// empty config: no renames, no drops.
func Lookup(clientID string) Config {
	return registry[clientID]
}
