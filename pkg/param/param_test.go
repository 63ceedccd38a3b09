package param

import (
	"errors"
	"strings"
	"testing"
)

func TestBaseDefaults(t *testing.T) {
	p := NewString("test")

	if p.Name() != "test" {
		t.Errorf("Name() = %q, want %q", p.Name(), "test")
	}
	if p.Description() != "" {
		t.Errorf("Description() = %q, want empty", p.Description())
	}
	if p.Default() != nil {
		t.Errorf("Default() = %v, want nil", p.Default())
	}
	if p.Required() {
		t.Error("Required() = true, want false")
	}
	if p.Shortcut() != nil {
		t.Errorf("Shortcut() = %v, want nil", p.Shortcut())
	}
	if p.Multiple() {
		t.Error("Multiple() = true, want false")
	}
}

func TestBaseSetters(t *testing.T) {
	p := NewString("test")
	p.SetDescription("This is the description")
	p.SetDefault("This is the default value")
	p.SetRequired(true)

	if p.Description() != "This is the description" {
		t.Errorf("Description() = %q", p.Description())
	}
	if p.Default() != "This is the default value" {
		t.Errorf("Default() = %v", p.Default())
	}
	if !p.Required() {
		t.Error("Required() = false, want true")
	}
}

func TestSetShortcut(t *testing.T) {
	tests := []struct {
		name      string
		shortcuts []string
		want      []string
		wantErr   bool
	}{
		{name: "none clears", shortcuts: nil, want: nil},
		{name: "string", shortcuts: []string{"s"}, want: []string{"s"}},
		{name: "dash string", shortcuts: []string{"-s"}, want: []string{"s"}},
		{name: "multi-string", shortcuts: []string{"s|x"}, want: []string{"s", "x"}},
		{name: "several", shortcuts: []string{"s", "-x"}, want: []string{"s", "x"}},
		{name: "dashes only", shortcuts: []string{"--"}, wantErr: true},
		{name: "spaces only", shortcuts: []string{"  "}, wantErr: true},
		{name: "empty alternative", shortcuts: []string{"s|"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewInt("test")
			err := p.SetShortcut(tt.shortcuts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetShortcut() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("error %v is not ErrInvalidConfiguration", err)
				}
				if !strings.Contains(err.Error(), "non-zero-length") {
					t.Errorf("error %q does not explain the rule", err)
				}
				return
			}
			if strings.Join(p.Shortcut(), ",") != strings.Join(tt.want, ",") {
				t.Errorf("Shortcut() = %v, want %v", p.Shortcut(), tt.want)
			}
		})
	}
}

func TestMultiValuePromptText(t *testing.T) {
	tests := []struct {
		name         string
		param        Param
		multiple     bool
		required     bool
		wantMulti    bool
		wantRequired bool
	}{
		{name: "int single", param: NewInt("test")},
		{name: "int multiple optional", param: NewInt("test"), multiple: true, wantMulti: true},
		{name: "int multiple required", param: NewInt("test"), multiple: true, required: true, wantMulti: true, wantRequired: true},
		{name: "string multiple required", param: NewString("test"), multiple: true, required: true, wantMulti: true, wantRequired: true},
		{name: "path multiple optional", param: mustPath(t, PathFile), multiple: true, wantMulti: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.param.declaration()
			d.SetAllowMultiple(tt.multiple)
			d.SetRequired(tt.required)

			text := tt.param.Prompt().Text
			if got := strings.Contains(text, "Multiple entries allowed"); got != tt.wantMulti {
				t.Errorf("multi hint present = %v, want %v in %q", got, tt.wantMulti, text)
			}
			if got := strings.Contains(text, "At least one entry is required. "); got != tt.wantRequired {
				t.Errorf("required hint present = %v, want %v in %q", got, tt.wantRequired, text)
			}
		})
	}
}

func TestSetAllowMultipleCanBeReverted(t *testing.T) {
	p := NewString("test")
	p.SetAllowMultiple(true)
	if !p.Multiple() {
		t.Fatal("Multiple() = false after enabling")
	}
	p.SetAllowMultiple(false)
	if p.Multiple() {
		t.Error("Multiple() = true after disabling")
	}
}

func TestValues(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		want   int
		wantOK bool
	}{
		{name: "nil", value: nil},
		{name: "scalar", value: 1},
		{name: "interface slice", value: []interface{}{1, "a"}, want: 2, wantOK: true},
		{name: "string slice", value: []string{"a"}, want: 1, wantOK: true},
		{name: "int slice", value: []int{1, 2, 3}, want: 3, wantOK: true},
		{name: "bool slice", value: []bool{}, want: 0, wantOK: true},
		{name: "int64 slice", value: []int64{1, 2}, want: 2, wantOK: true},
		{name: "float slice", value: []float64{1.5}, want: 1, wantOK: true},
		{name: "array", value: [2]string{"a", "b"}, want: 2, wantOK: true},
		{name: "string", value: "ab"},
		{name: "map", value: map[string]int{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Values(tt.value)
			if ok != tt.wantOK || len(got) != tt.want {
				t.Errorf("Values() = %v, %v; want len %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func mustPath(t *testing.T, pathType PathType) *Path {
	t.Helper()
	p, err := NewPath("test", pathType)
	if err != nil {
		t.Fatalf("NewPath() error = %v", err)
	}
	return p
}
