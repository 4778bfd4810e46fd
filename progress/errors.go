package progress

import "errors"

var (
	// ErrEnrollmentNotFound means the referenced enrollment does not exist.
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrNotEnrollmentOwner means the acting student does not own the enrollment.
	ErrNotEnrollmentOwner = errors.New("enrollment does not belong to this user")

	// ErrContentNotFound means the content item does not exist, or is
	// orphaned (its week has been removed).
	ErrContentNotFound = errors.New("content item not found")

	// ErrCourseMismatch means the content item resolves to a different
	// course than the enrollment.
	ErrCourseMismatch = errors.New("content item does not belong to the enrolled course")
)
