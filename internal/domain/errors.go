package domain

import "errors"

// ClassifiedFailure is a stable, enumerated failure outcome with a
// human-readable message. It is produced once at the point of detection and
// carried untouched to the response boundary; Detail optionally holds the raw
// upstream message for diagnostics and is never shown as the primary error.
type ClassifiedFailure struct {
	Kind    FailureKind
	Message string
	Detail  string
}

func (f *ClassifiedFailure) Error() string {
	return f.Message
}

// NewFailure creates a ClassifiedFailure without upstream detail.
func NewFailure(kind FailureKind, message string) *ClassifiedFailure {
	return &ClassifiedFailure{Kind: kind, Message: message}
}

// NewFailureWithDetail creates a ClassifiedFailure carrying the raw upstream
// message in Detail.
func NewFailureWithDetail(kind FailureKind, message, detail string) *ClassifiedFailure {
	return &ClassifiedFailure{Kind: kind, Message: message, Detail: detail}
}

// AsClassified extracts a ClassifiedFailure from err, if it carries one.
func AsClassified(err error) (*ClassifiedFailure, bool) {
	var cf *ClassifiedFailure
	if errors.As(err, &cf) {
		return cf, true
	}
	return nil, false
}
