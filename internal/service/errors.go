package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoFacesEnrolled means the store holds no enrolled faces at all,
	// so there is nothing to match against.
	ErrNoFacesEnrolled = errors.New("no faces enrolled")

	// ErrFaceNotRecognized means the scan completed and no enrolled face
	// matched the presented image.
	ErrFaceNotRecognized = errors.New("face not recognized")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
