package auth_test

import (
	"testing"

	"employee-task-service/pkg/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("strongpassword")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "strongpassword" {
		t.Fatalf("hash equals plaintext")
	}

	if !auth.CheckPassword("strongpassword", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if auth.CheckPassword("wrongpassword", hash) {
		t.Fatalf("expected mismatching password to fail")
	}
}
