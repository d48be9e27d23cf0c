package auth

import (
	"testing"

	"github.com/Haryordeji/edu-sports-sub000/internal/domain"
)

func claimsFor(id string, role domain.Role) *Claims {
	return &Claims{SubjectID: id, Email: id + "@x.com", Role: role}
}

func TestAuthorizeAdminOverride(t *testing.T) {
	admin := claimsFor("a-1", domain.RoleAdmin)

	cases := []struct {
		name    string
		roles   []domain.Role
		ownerID string
	}{
		{"no gates", nil, ""},
		{"role gate excluding admin", []domain.Role{domain.RoleInstructor}, ""},
		{"ownership of someone else", nil, "other-user-id"},
		{"both gates", []domain.Role{domain.RoleGolfer}, "g-1"},
	}

	for _, tc := range cases {
		if Authorize(admin, tc.roles, tc.ownerID) != Allow {
			t.Errorf("%s: admin must always be allowed", tc.name)
		}
	}
}

func TestAuthorizeRoleGate(t *testing.T) {
	cases := []struct {
		name  string
		role  domain.Role
		roles []domain.Role
		want  Decision
	}{
		{"member of set", domain.RoleInstructor, []domain.Role{domain.RoleInstructor}, Allow},
		{"one of several", domain.RoleGolfer, []domain.Role{domain.RoleInstructor, domain.RoleGolfer}, Allow},
		{"not a member", domain.RoleGolfer, []domain.Role{domain.RoleInstructor}, Deny},
		{"empty set passes", domain.RoleGolfer, nil, Allow},
	}

	for _, tc := range cases {
		got := Authorize(claimsFor("u-1", tc.role), tc.roles, "")
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAuthorizeOwnershipGate(t *testing.T) {
	golfer := claimsFor("g1", domain.RoleGolfer)

	if Authorize(golfer, []domain.Role{domain.RoleGolfer}, "g1") != Allow {
		t.Error("owner must access own resource")
	}
	if Authorize(golfer, []domain.Role{domain.RoleGolfer}, "g2") != Deny {
		t.Error("non-owner must be denied even when the role gate passes")
	}
	if Authorize(golfer, nil, "g2") != Deny {
		t.Error("ownership gate applies without a role gate")
	}
}

func TestAuthorizeFailsClosed(t *testing.T) {
	if Authorize(nil, nil, "") != Deny {
		t.Error("nil claims must be denied")
	}
	if Authorize(claimsFor("u-1", domain.Role("coach")), nil, "") != Deny {
		t.Error("unrecognized role must be denied, never default-allowed")
	}
	if Authorize(claimsFor("u-1", domain.Role("")), nil, "") != Deny {
		t.Error("empty role must be denied")
	}
}

func TestAuthorizeDeterministic(t *testing.T) {
	claims := claimsFor("g1", domain.RoleGolfer)
	roles := []domain.Role{domain.RoleGolfer}
	first := Authorize(claims, roles, "g1")
	for i := 0; i < 100; i++ {
		if Authorize(claims, roles, "g1") != first {
			t.Fatal("Authorize must produce identical results for identical inputs")
		}
	}
}
