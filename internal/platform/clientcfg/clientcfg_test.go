package clientcfg

import "testing"

func TestLookupKnownClient(t *testing.T) {
	cfg := Lookup("client_b")
	if cfg.Mappings["Staff_No"] != "ID" {
		t.Fatalf("client_b mapping missing: %v", cfg.Mappings)
	}
	if len(cfg.DropColumns) == 0 {
		t.Fatal("client_b drop list missing")
	}
}

func TestLookupUnknownClient(t *testing.T) {
	cfg := Lookup("nobody")
	if len(cfg.Mappings) != 0 || len(cfg.DropColumns) != 0 {
		t.Fatalf("unknown client must get an empty config: %+v", cfg)
	}
}
