package service

import "testing"

func TestAccessChecker_IsAdmin(t *testing.T) {
	checker := NewAccessChecker([]int64{100, 200}, "@Shop_Admin")

	tests := []struct {
		name     string
		userID   int64
		username string
		want     bool
	}{
		{"allow-listed id", 100, "", true},
		{"allow-listed id with random handle", 200, "somebody", true},
		{"configured handle exact", 1, "Shop_Admin", true},
		{"configured handle case-insensitive", 1, "shop_admin", true},
		{"configured handle with at sign", 1, "@SHOP_ADMIN", true},
		{"unknown id and handle", 1, "somebody", false},
		{"empty handle", 1, "", false},
		{"zero id", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.IsAdmin(tt.userID, tt.username); got != tt.want {
				t.Errorf("IsAdmin(%d, %q) = %v, want %v", tt.userID, tt.username, got, tt.want)
			}
		})
	}
}

func TestAccessChecker_EmptyConfiguredHandleNeverMatches(t *testing.T) {
	checker := NewAccessChecker([]int64{100}, "")

	if checker.IsAdmin(1, "") {
		t.Error("empty username must not match an empty configured handle")
	}
	if checker.IsAdmin(1, "@") {
		t.Error("bare @ must not match an empty configured handle")
	}
	if !checker.IsAdmin(100, "") {
		t.Error("allow-listed id must still pass")
	}
}
