package branding

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "modcmake"},
		{"Generator", Generator(), "@//cmake:make_dependencies"},
		{"CMakeMinVersion", CMakeMinVersion(), "3.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}
