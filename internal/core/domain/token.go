package domain

import "time"

// IssuedToken is a signed bearer credential together with its validity window.
type IssuedToken struct {
	Raw       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthFailureKind says which verification step rejected a token.
type AuthFailureKind int

const (
	FailureMalformed AuthFailureKind = iota + 1
	FailureSignatureInvalid
	FailureExpired
)

func (k AuthFailureKind) String() string {
	switch k {
	case FailureMalformed:
		return "malformed"
	case FailureSignatureInvalid:
		return "signature_invalid"
	case FailureExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// AuthFailure is returned by token verification. The kind is kept for logs
// and metrics only; callers outside the core see a plain 401.
type AuthFailure struct {
	Kind  AuthFailureKind
	Cause error
}

func (f *AuthFailure) Error() string {
	if f.Cause != nil {
		return f.sentinel().Error() + ": " + f.Cause.Error()
	}
	return f.sentinel().Error()
}

// Unwrap exposes the kind sentinel, which itself wraps ErrUnauthenticated.
func (f *AuthFailure) Unwrap() error { return f.sentinel() }

func (f *AuthFailure) sentinel() error {
	switch f.Kind {
	case FailureSignatureInvalid:
		return ErrTokenSignature
	case FailureExpired:
		return ErrTokenExpired
	default:
		return ErrTokenMalformed
	}
}
