// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a platform user holds.
type Role string

const (
	RoleInstructor  Role = "instructor"
	RoleStudent     Role = "student"
	RoleAffiliate   Role = "affiliate"
	RoleInstitution Role = "institution"
	RoleAdmin       Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleInstructor, RoleStudent, RoleAffiliate, RoleInstitution, RoleAdmin:
		return true
	default:
		return false
	}
}

// UserCollection names a role-scoped user listing on the admin surface.
type UserCollection string

const (
	CollectionInstructors  UserCollection = "instructors"
	CollectionStudents     UserCollection = "students"
	CollectionAffiliates   UserCollection = "affiliates"
	CollectionInstitutions UserCollection = "institutions"
	// CollectionUsers lists every account regardless of role.
	CollectionUsers UserCollection = "users"
)

var userCollections = []UserCollection{
	CollectionInstructors,
	CollectionStudents,
	CollectionAffiliates,
	CollectionInstitutions,
	CollectionUsers,
}

// ParseUserCollection validates a collection path segment.
func ParseUserCollection(s string) (UserCollection, bool) {
	c := UserCollection(s)
	if slices.Contains(userCollections, c) {
		return c, true
	}

	return "", false
}

// Role returns the role the collection is restricted to. CollectionUsers has none.
func (c UserCollection) Role() (Role, bool) {
	switch c {
	case CollectionInstructors:
		return RoleInstructor, true
	case CollectionStudents:
		return RoleStudent, true
	case CollectionAffiliates:
		return RoleAffiliate, true
	case CollectionInstitutions:
		return RoleInstitution, true
	default:
		return "", false
	}
}

func (c UserCollection) String() string {
	return string(c)
}
