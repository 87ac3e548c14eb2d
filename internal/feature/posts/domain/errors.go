// Package domain defines domain-level errors for the posts feature.
package domain

import "errors"

// Domain errors for post operations.
var (
	// ErrPostNotFound indicates that no post exists with the given id.
	ErrPostNotFound = errors.New("post not found")

	// ErrPostForbidden indicates that the caller is authenticated but is not
	// the owner of the post being mutated.
	ErrPostForbidden = errors.New("post does not belong to user")
)
