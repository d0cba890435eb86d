package auth

import (
	"sort"
	"strings"
)

// Permission is a single capability. Permissions combine into a PermissionSet bitmask.
type Permission uint32

const (
	BookRead Permission = 1 << iota
	MemberRead
	MemberReadSelf
	IssueCreate
	IssueReturn
	FinePay
	FineWaive
	RequestCreate
	RequestManage
	ActivityRead
	SettingsManage

	permissionEnd
)

var permissionNames = map[Permission]string{
	BookRead:       "book.read",
	MemberRead:     "member.read",
	MemberReadSelf: "member.read_self",
	IssueCreate:    "issue.create",
	IssueReturn:    "issue.return",
	FinePay:        "fine.pay",
	FineWaive:      "fine.waive",
	RequestCreate:  "request.create",
	RequestManage:  "request.manage",
	ActivityRead:   "activity.read",
	SettingsManage: "settings.manage",
}

func (p Permission) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePermission maps a dotted permission name ("fine.pay") to its value.
func ParsePermission(name string) (Permission, bool) {
	for p, n := range permissionNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

type PermissionSet uint32

// AllPermissions holds every defined permission.
const AllPermissions = PermissionSet(permissionEnd - 1)

func NewPermissionSet(perms ...Permission) PermissionSet {
	var s PermissionSet
	for _, p := range perms {
		s |= PermissionSet(p)
	}
	return s
}

func (s PermissionSet) Has(p Permission) bool {
	return p != 0 && s&PermissionSet(p) == PermissionSet(p)
}

func (s PermissionSet) String() string {
	names := make([]string, 0, len(permissionNames))
	for p, n := range permissionNames {
		if s.Has(p) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleMember    Role = "member"
)

var rolePermissions = map[Role]PermissionSet{
	RoleAdmin: AllPermissions,
	RoleLibrarian: NewPermissionSet(
		BookRead,
		MemberRead,
		IssueCreate,
		IssueReturn,
		FinePay,
		FineWaive,
		RequestManage,
	),
	RoleMember: NewPermissionSet(
		BookRead,
		MemberReadSelf,
		RequestCreate,
	),
}

// Permissions resolves the role's permission set. Unknown roles get nothing.
func (r Role) Permissions() (PermissionSet, bool) {
	set, ok := rolePermissions[Role(strings.ToLower(string(r)))]
	return set, ok
}
