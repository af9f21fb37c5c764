package lint

import (
	"errors"
	"testing"
)

type stubRule struct {
	name         string
	incompatible []string
	register     func(reg *Registry, ctx *Context)
}

func (r stubRule) Info() Info {
	return Info{
		Name:             r.name,
		Description:      "stub",
		Group:            GroupStyle,
		IncompatibleWith: r.incompatible,
	}
}

func (r stubRule) Register(reg *Registry, ctx *Context) {
	if r.register != nil {
		r.register(reg, ctx)
	}
}

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		rules   []Rule
		wantErr error
	}{
		{
			name:  "empty set",
			rules: nil,
		},
		{
			name: "independent rules",
			rules: []Rule{
				stubRule{name: "a"},
				stubRule{name: "b", incompatible: []string{"c"}},
			},
		},
		{
			name: "nil entries are ignored",
			rules: []Rule{
				nil,
				stubRule{name: "a"},
				nil,
			},
		},
		{
			name: "duplicate name",
			rules: []Rule{
				stubRule{name: "a"},
				stubRule{name: "a"},
			},
			wantErr: ErrDuplicateRule,
		},
		{
			name: "declared incompatibility",
			rules: []Rule{
				stubRule{name: "a", incompatible: []string{"b"}},
				stubRule{name: "b"},
			},
			wantErr: ErrIncompatibleRules,
		},
		{
			name: "incompatibility is symmetric in effect",
			rules: []Rule{
				stubRule{name: "a"},
				stubRule{name: "b", incompatible: []string{"a"}},
			},
			wantErr: ErrIncompatibleRules,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCompatibility(tt.rules)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("CheckCompatibility() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CheckCompatibility() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
