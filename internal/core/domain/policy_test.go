package domain

import "testing"

func adminUser() *AuthenticatedUser {
	return &AuthenticatedUser{ID: "admin-1", Email: "a@example.com", Role: RoleAdmin}
}

func regularUser() *AuthenticatedUser {
	return &AuthenticatedUser{ID: "user-1", Email: "u@example.com", Role: RoleUser}
}

func TestAuthorize_AssetsRead_AdminUnrestricted(t *testing.T) {
	d := Authorize(adminUser(), ResourceAssets, ActionRead)
	if !d.Allow {
		t.Fatalf("admin read should be allowed")
	}
	if !d.Filter.Unrestricted() {
		t.Fatalf("admin filter should be unrestricted, got %+v", d.Filter)
	}
}

func TestAuthorize_AssetsRead_UserScopedToSelf(t *testing.T) {
	d := Authorize(regularUser(), ResourceAssets, ActionRead)
	if !d.Allow {
		t.Fatalf("user read should be allowed")
	}
	if d.Filter.CreatedBy != "user-1" {
		t.Fatalf("user filter should scope to creator, got %q", d.Filter.CreatedBy)
	}
}

func TestAuthorize_AssetsCreate_CreatorForcedToSelf(t *testing.T) {
	for _, u := range []*AuthenticatedUser{adminUser(), regularUser()} {
		d := Authorize(u, ResourceAssets, ActionCreate)
		if !d.Allow {
			t.Fatalf("create should be allowed for %s", u.Role)
		}
		if d.ForcedCreator != u.ID {
			t.Fatalf("creator should be forced to %q, got %q", u.ID, d.ForcedCreator)
		}
	}
}

func TestAuthorize_AssetsDelete(t *testing.T) {
	if !Authorize(adminUser(), ResourceAssets, ActionDelete).Allow {
		t.Fatalf("admin should delete assets")
	}
	if Authorize(regularUser(), ResourceAssets, ActionDelete).Allow {
		t.Fatalf("user should not delete assets")
	}
}

func TestAuthorize_Users_AdminOnly(t *testing.T) {
	for _, action := range []Action{ActionRead, ActionCreate} {
		if !Authorize(adminUser(), ResourceUsers, action).Allow {
			t.Fatalf("admin should %s users", action)
		}
		if Authorize(regularUser(), ResourceUsers, action).Allow {
			t.Fatalf("user should not %s users", action)
		}
	}
}

func TestAuthorize_CategoriesAndDepartments_BothRoles(t *testing.T) {
	for _, res := range []Resource{ResourceCategories, ResourceDepartments} {
		for _, u := range []*AuthenticatedUser{adminUser(), regularUser()} {
			if !Authorize(u, res, ActionRead).Allow {
				t.Fatalf("%s should read %s", u.Role, res)
			}
			d := Authorize(u, res, ActionCreate)
			if !d.Allow || d.ForcedCreator != u.ID {
				t.Fatalf("%s create on %s: got %+v", u.Role, res, d)
			}
		}
	}
}

func TestAuthorize_UnknownRoleDeniedEverything(t *testing.T) {
	ghost := &AuthenticatedUser{ID: "g", Role: "superuser"}
	for _, res := range []Resource{ResourceAssets, ResourceUsers, ResourceCategories, ResourceDepartments} {
		for _, action := range []Action{ActionRead, ActionCreate, ActionDelete} {
			if Authorize(ghost, res, action).Allow {
				t.Fatalf("unknown role allowed %s on %s", action, res)
			}
		}
	}
}

func TestAuthorize_NilUserDenied(t *testing.T) {
	if Authorize(nil, ResourceAssets, ActionRead).Allow {
		t.Fatalf("nil user should be denied")
	}
}
