package galaxy

import (
	"testing"

	"starmap-server/internal/shared/config"
	"starmap-server/internal/shared/errors"
)

func setGalaxyConfig(t *testing.T) {
	t.Helper()
	prev := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Galaxy: config.GalaxyConfig{
			DefaultSize: 60,
			MinSize:     10,
			MaxSize:     500,
		},
	}
	t.Cleanup(func() { config.GlobalConfig = prev })
}

// A vanished row must surface as a typed not-found error, never as a
// nil save flowing onward. Matters most on the discovery path, where a
// concurrent delete can remove the row between the ownership check and
// the progress update.
func TestRequireSaveMissingRow(t *testing.T) {
	save, err := requireSave(nil, 7)
	if save != nil {
		t.Fatalf("expected nil save, got %+v", save)
	}
	if err == nil {
		t.Fatal("expected error for missing save row")
	}
	if got := errors.GetType(err); got != errors.ErrorTypeNotFound {
		t.Errorf("error type = %q, want %q", got, errors.ErrorTypeNotFound)
	}
}

func TestRequireSavePassthrough(t *testing.T) {
	in := &Save{ID: 7, Commander: "nova"}
	save, err := requireSave(in, 7)
	if err != nil {
		t.Fatalf("requireSave returned error: %v", err)
	}
	if save != in {
		t.Errorf("save = %+v, want passthrough of input", save)
	}
}

func TestResolveSize(t *testing.T) {
	setGalaxyConfig(t)

	svc := &Service{presets: []Preset{
		{Key: "small", Name: "Compact Cluster", Systems: 30},
		{Key: "colossal", Name: "Colossal", Systems: 10000},
		{Key: "dust", Name: "Dust", Systems: 2},
	}}

	tests := []struct {
		name    string
		preset  string
		size    int
		want    int
		wantErr bool
	}{
		{name: "default when unspecified", want: 60},
		{name: "explicit size in bounds", size: 50, want: 50},
		{name: "explicit size below min", size: 5, wantErr: true},
		{name: "explicit size above max", size: 100000, wantErr: true},
		{name: "valid preset", preset: "small", want: 30},
		{name: "unknown preset", preset: "nope", wantErr: true},
		{name: "preset above max", preset: "colossal", wantErr: true},
		{name: "preset below min", preset: "dust", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.resolveSize(tt.preset, tt.size)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got size %d", got)
				}
				if typ := errors.GetType(err); typ != errors.ErrorTypeValidation {
					t.Errorf("error type = %q, want %q", typ, errors.ErrorTypeValidation)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveSize returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("size = %d, want %d", got, tt.want)
			}
		})
	}
}
