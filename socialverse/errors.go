package socialverse

import "errors"

var (
	// ErrInvalidConfig wraps every configuration load or validation failure.
	ErrInvalidConfig = errors.New("socialverse: invalid config")

	// ErrEmptyContent is returned for posts that are blank after trimming.
	ErrEmptyContent = errors.New("socialverse: empty content")

	// ErrPostTooLong is returned for posts longer than Config.MaxPostLength runes.
	ErrPostTooLong = errors.New("socialverse: post too long")

	// ErrMissingField is returned when a required user field is blank.
	ErrMissingField = errors.New("socialverse: missing field")
)
