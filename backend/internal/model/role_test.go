package model

import "testing"

func TestRole_Capabilities(t *testing.T) {
	tests := []struct {
		role        Role
		seeInactive bool
		manage      bool
		valid       bool
		wantString  string
	}{
		{RoleViewer, false, false, true, "viewer"},
		{RoleEditor, false, false, true, "editor"},
		{RoleAdmin, true, true, true, "admin"},
		{Role(0), false, false, false, "unknown"},
		{Role(9), true, true, false, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.role.CanSeeInactiveCourses(); got != tt.seeInactive {
			t.Errorf("Role(%d).CanSeeInactiveCourses() = %v", tt.role, got)
		}
		if got := tt.role.CanManageCourses(); got != tt.manage {
			t.Errorf("Role(%d).CanManageCourses() = %v", tt.role, got)
		}
		if got := tt.role.Valid(); got != tt.valid {
			t.Errorf("Role(%d).Valid() = %v", tt.role, got)
		}
		if got := tt.role.String(); got != tt.wantString {
			t.Errorf("Role(%d).String() = %s", tt.role, got)
		}
	}
}
