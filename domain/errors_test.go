package domain

import "testing"

func TestErrorTaxonomyIsDistinct(t *testing.T) {
	errs := []error{
		ErrUserNotFound,
		ErrUserAlreadyExists,
		ErrPhoneBindingMismatch,
		ErrOTPMismatch,
		ErrPhoneUpdateFailed,
		ErrTokenInvalid,
		ErrTokenExpired,
		ErrTokenMalformed,
		ErrValueNotFound,
	}

	seen := make(map[error]bool)
	for _, err := range errs {
		if err == nil {
			t.Fatal("sentinel error is nil")
		}
		if seen[err] {
			t.Errorf("duplicate sentinel error %v", err)
		}
		seen[err] = true
	}
}

func TestErrorMessagesDoNotLeakWhichCredentialFailed(t *testing.T) {
	// Login failures must not reveal whether the id or the password was
	// wrong; a single collapsed message covers both.
	msg := ErrUserNotFound.Error()
	if msg != "login id or password is incorrect" {
		t.Errorf("unexpected message %q", msg)
	}
}
