package version

import (
	"errors"
	"strings"
	"testing"
)

func TestCurrent_IsValid(t *testing.T) {
	if err := Current.Validate(); err != nil {
		t.Fatalf("Current.Validate() unexpected error: %v", err)
	}
	if Current.Name != "My RPN program" {
		t.Errorf("expected name %q, got %q", "My RPN program", Current.Name)
	}
	if Current.Version != "1.0.0" {
		t.Errorf("expected version %q, got %q", "1.0.0", Current.Version)
	}
}

func TestInfo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		wantErr error
	}{
		{
			name: "valid",
			info: Info{Name: "calc", Version: "2.3.4"},
		},
		{
			name: "prerelease",
			info: Info{Name: "calc", Version: "1.0.0-rc.1"},
		},
		{
			name:    "empty name",
			info:    Info{Name: "", Version: "1.0.0"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "blank name",
			info:    Info{Name: "   ", Version: "1.0.0"},
			wantErr: ErrNameRequired,
		},
		{
			name:    "empty version",
			info:    Info{Name: "calc", Version: ""},
			wantErr: ErrInvalidVersion,
		},
		{
			name:    "v prefix",
			info:    Info{Name: "calc", Version: "v1.0.0"},
			wantErr: ErrInvalidVersion,
		},
		{
			name:    "missing patch",
			info:    Info{Name: "calc", Version: "1.0"},
			wantErr: ErrInvalidVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			var parseErr ErrVersionParseFailed
			if errors.As(err, &parseErr) && parseErr.Op != OpValidate {
				t.Errorf("expected op %s, got %s", OpValidate, parseErr.Op)
			}
		})
	}
}

func TestInfo_Semver(t *testing.T) {
	v, err := Info{Name: "calc", Version: "1.2.3"}.Semver()
	if err != nil {
		t.Fatalf("Semver() unexpected error: %v", err)
	}
	if v.Major() != 1 || v.Minor() != 2 || v.Patch() != 3 {
		t.Errorf("expected 1.2.3, got %s", v.String())
	}

	_, err = Info{Name: "calc", Version: "latest"}.Semver()
	if err == nil {
		t.Fatal("Semver() expected error for non-semver version")
	}
	var parseErr ErrVersionParseFailed
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ErrVersionParseFailed, got %T", err)
	}
	if parseErr.Op != OpSemver {
		t.Errorf("expected op %s, got %s", OpSemver, parseErr.Op)
	}
}

func TestErrVersionParseFailed(t *testing.T) {
	cause := errors.New("test cause")
	err := ErrVersionParseFailed{
		Version: "invalid",
		Op:      OpValidate,
		Cause:   cause,
	}

	if !strings.Contains(err.Error(), `"invalid"`) {
		t.Errorf("expected message to quote the version, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
	if !errors.Is(err, ErrInvalidVersion) {
		t.Error("expected error to match ErrInvalidVersion")
	}
}
