package service

import "strings"

// AccessChecker gates the admin menu. It is UI gating only: the username
// comes from the client and must never be trusted as a security boundary.
type AccessChecker struct {
	ids    map[int64]struct{}
	handle string
}

// NewAccessChecker builds a checker from the configured allow-list and
// optional admin handle.
func NewAccessChecker(ids []int64, handle string) *AccessChecker {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &AccessChecker{
		ids:    set,
		handle: strings.TrimPrefix(handle, "@"),
	}
}

// IsAdmin reports whether the user may see the admin menu: either the ID
// is allow-listed or the handle matches the configured one
// case-insensitively. An empty configured handle never matches.
func (a *AccessChecker) IsAdmin(userID int64, username string) bool {
	if _, ok := a.ids[userID]; ok {
		return true
	}
	if a.handle == "" {
		return false
	}
	return strings.EqualFold(strings.TrimPrefix(username, "@"), a.handle)
}
