package flagparser

import "testing"

func TestInfer(t *testing.T) {
	tests := []struct {
		token string
		want  DataType
	}{
		{"120", Integer},
		{"0", Integer},
		{"-5", Integer},
		{"+5", Integer},
		{"0x1F", Integer},
		{"1_000", Integer},
		{"(7)", Integer},
		{"-(-5)", Integer},
		{"+-5", Integer},
		{"99999999999999999999999", Integer},
		{"10.5", Decimal},
		{"-10.5", Decimal},
		{"1e3", Decimal},
		{".5", Decimal},
		{"true", Boolean},
		{"false", Boolean},
		{"True", Text},
		{"abc", Text},
		{"-skew", Text},
		{"--flag", Text},
		{"", Text},
		{`"quoted"`, Text},
		{"'a'", Text},
		{"1i", Text},
		{"hello world", Text},
		{"1 + 2", Text},
		{"-true", Text},
		{"flags.yaml", Text},
		{"[1, 2]", Text},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Infer(tt.token); got != tt.want {
				t.Errorf("Infer(%q) = %s, want %s", tt.token, got, tt.want)
			}
		})
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name        string
		observed    DataType
		declared    DataType
		strictInt   bool
		strictFloat bool
		want        bool
	}{
		{"integer fills decimal", Integer, Decimal, true, false, true},
		{"integer rejected by strict decimal", Integer, Decimal, true, true, false},
		{"decimal rejected by strict integer", Decimal, Integer, true, false, false},
		{"decimal fills loose integer", Decimal, Integer, false, false, true},
		{"integer fills text", Integer, Text, true, false, true},
		{"decimal fills text", Decimal, Text, true, false, true},
		{"boolean rejected by text", Boolean, Text, true, false, false},
		{"text rejected by integer", Text, Integer, true, false, false},
		{"text rejected by decimal", Text, Decimal, false, false, false},
		{"boolean fills boolean", Boolean, Boolean, true, false, true},
		{"integer rejected by boolean", Integer, Boolean, false, false, false},
		{"text rejected by boolean", Text, Boolean, true, false, false},
		{"same type under strict settings", Decimal, Decimal, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compatible(tt.observed, tt.declared, tt.strictInt, tt.strictFloat)
			if got != tt.want {
				t.Errorf("Compatible(%s, %s, %v, %v) = %v, want %v",
					tt.observed, tt.declared, tt.strictInt, tt.strictFloat, got, tt.want)
			}
		})
	}
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		input   string
		want    DataType
		wantErr bool
	}{
		{"int", Integer, false},
		{"Number", Integer, false},
		{"float", Decimal, false},
		{"decimal", Decimal, false},
		{"str", Text, false},
		{" text ", Text, false},
		{"bool", Boolean, false},
		{"STATE", Boolean, false},
		{"list", Text, true},
		{"", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDataType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDataType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDataType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDataTypeLabel(t *testing.T) {
	labels := map[DataType]string{
		Integer: "Number",
		Decimal: "Decimal",
		Text:    "Text",
		Boolean: "State",
	}
	for dt, want := range labels {
		if got := dt.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", dt, got, want)
		}
	}
}
