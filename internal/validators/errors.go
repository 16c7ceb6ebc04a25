package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmailRequired     = errors.New("email is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrImageRequired     = errors.New("face image is required")
	ErrImageNotDecodable = errors.New("face image is not a decodable raster image")
)
