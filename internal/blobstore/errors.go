package blobstore

import "errors"

var (
	// ErrUploadFailed marks a failure to store a payload in the backend.
	ErrUploadFailed = errors.New("blob upload failed")

	// ErrDownloadFailed marks a failure to retrieve a stored payload.
	ErrDownloadFailed = errors.New("blob download failed")

	// ErrDeleteFailed marks a failure to remove a stored payload.
	ErrDeleteFailed = errors.New("blob delete failed")

	// ErrBlobNotFound means the requested object does not exist in the
	// backend.
	ErrBlobNotFound = errors.New("blob not found")
)
