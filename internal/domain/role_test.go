package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"admin", RoleAdmin, false},
		{"instructor", RoleInstructor, false},
		{"golfer", RoleGolfer, false},
		{"", "", true},
		{"ADMIN", "", true},
		{"coach", "", true},
		{"superuser", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q): expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range Roles() {
		if !role.Valid() {
			t.Errorf("role %q should be valid", role)
		}
	}
	if Role("coach").Valid() {
		t.Error("unknown role must not validate")
	}
	if Role("").Valid() {
		t.Error("empty role must not validate")
	}
}
