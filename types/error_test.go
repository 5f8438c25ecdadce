package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_ChainingAndHelpers(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	err := NewError(ErrCodeStoreUnavailable, "ledger write failed").WithCause(root)

	if GetErrorCode(err) != ErrCodeStoreUnavailable {
		t.Fatalf("expected code %s, got %s", ErrCodeStoreUnavailable, GetErrorCode(err))
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is unwrap to root")
	}
	if got := err.Error(); got != "[STORE_UNAVAILABLE] ledger write failed: root" {
		t.Fatalf("unexpected error string %q", got)
	}
}

func TestError_IsMatchesSentinelByCode(t *testing.T) {
	t.Parallel()

	err := Errorf(ErrCodeInvalidBid, "amount is NaN for bidder %s", "a-1")
	if !errors.Is(err, ErrInvalidBid) {
		t.Fatalf("expected errors.Is to match sentinel by code")
	}
	if errors.Is(err, ErrResourceMismatch) {
		t.Fatalf("did not expect match against a different code")
	}

	wrapped := fmt.Errorf("add bid: %w", err)
	if !errors.Is(wrapped, ErrInvalidBid) {
		t.Fatalf("expected wrapped error to match sentinel")
	}
	if GetErrorCode(wrapped) != ErrCodeInvalidBid {
		t.Fatalf("expected code through wrapping, got %s", GetErrorCode(wrapped))
	}
}

func TestGetErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	if code := GetErrorCode(errors.New("plain")); code != "" {
		t.Fatalf("expected empty code, got %s", code)
	}
}
