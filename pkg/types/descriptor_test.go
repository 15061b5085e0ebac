package types

import "testing"

func TestDescriptor_Validate(t *testing.T) {
	d := Descriptor{Driver: DriverSQLite, Database: ":memory:"}
	if err := d.Validate(); err != nil {
		t.Fatalf("valid descriptor rejected: %v", err)
	}

	d = Descriptor{Database: "app"}
	if err := d.Validate(); err != ErrDriverEmpty {
		t.Errorf("expected ErrDriverEmpty, got %v", err)
	}

	d = Descriptor{Driver: "oracle", Database: "app"}
	if err := d.Validate(); err != ErrDriverUnknown {
		t.Errorf("expected ErrDriverUnknown, got %v", err)
	}

	d = Descriptor{Driver: DriverPostgres}
	if err := d.Validate(); err != ErrDatabaseEmpty {
		t.Errorf("expected ErrDatabaseEmpty, got %v", err)
	}
}

func TestOptions_IdentifierDefault(t *testing.T) {
	var o Options
	if got := o.Identifier("CoSt"); got != "cost" {
		t.Errorf("default identifier transform: got %q, want %q", got, "cost")
	}

	o.IdentifierTransform = func(s string) string { return s }
	if got := o.Identifier("CoSt"); got != "CoSt" {
		t.Errorf("custom identifier transform not applied: got %q", got)
	}
}
