package auth

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if !svc.Verify(hash, "correct horse battery staple") {
		t.Error("correct password should verify")
	}
	if svc.Verify(hash, "wrong password") {
		t.Error("wrong password should not verify")
	}
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("pw")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := svc.Hash("pw")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ by salt")
	}
}
