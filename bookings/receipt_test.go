package bookings

import (
	"strings"
	"testing"
)

func TestReceiptPayloadRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	payload := receiptPayload(secret, "booking123", "pi_abc", 1700000000)

	if !strings.HasPrefix(payload, "booking123|pi_abc|1700000000|") {
		t.Fatalf("unexpected payload shape: %s", payload)
	}
	if !VerifyReceiptPayload(secret, payload) {
		t.Fatal("freshly signed payload failed verification")
	}
}

func TestReceiptPayloadTamperDetected(t *testing.T) {
	secret := []byte("test-secret")
	payload := receiptPayload(secret, "booking123", "pi_abc", 1700000000)

	tampered := strings.Replace(payload, "booking123", "booking999", 1)
	if VerifyReceiptPayload(secret, tampered) {
		t.Fatal("tampered payload passed verification")
	}
	if VerifyReceiptPayload([]byte("other-secret"), payload) {
		t.Fatal("payload verified under the wrong secret")
	}
	if VerifyReceiptPayload(secret, "no-separator") {
		t.Fatal("malformed payload passed verification")
	}
}
