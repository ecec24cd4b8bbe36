package curriculum

import "errors"

// ErrMalformedCSV marks structural parse failures: missing Courses marker,
// missing required header columns, bad credit hours, duplicate Course IDs.
var ErrMalformedCSV = errors.New("malformed curriculum csv")

// ErrUnknownReference marks a relationship token that does not resolve to a
// Course ID in the same file.
var ErrUnknownReference = errors.New("unknown course reference")
