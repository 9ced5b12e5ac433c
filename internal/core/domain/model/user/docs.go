// Package user holds the user directory entry and the authenticated Principal.
//
// Tokens are issued elsewhere; this service only trusts the subject and role
// they carry. The directory is consulted when an operation needs the role of
// someone other than the caller, such as checking that a rider exists.
package user
