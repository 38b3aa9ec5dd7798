package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month must be between 0 and 11"},
		{Field: "employee", Message: "employee is required"},
	}

	if got := errs.Error(); got != "month: month must be between 0 and 11; employee: employee is required" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["month"] == "" || m["employee"] == "" {
		t.Errorf("ToMap() = %v", m)
	}
}
