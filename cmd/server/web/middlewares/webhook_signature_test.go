package middlewares

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"ref":"refs/heads/main"}`)

	tests := []struct {
		name   string
		header string
		valid  bool
	}{
		{"valid signature", sign("s3cret", body), true},
		{"wrong secret", sign("other", body), false},
		{"missing prefix", "deadbeef", false},
		{"empty header", "", false},
		{"garbage hex", "sha256=not-hex", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifySignature("s3cret", body, tt.header); got != tt.valid {
				t.Errorf("VerifySignature = %v, expected %v", got, tt.valid)
			}
		})
	}
}

func signatureTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Post("/hooks/github", WebhookSignature(secret), func(c *fiber.Ctx) error {
		return c.SendString("accepted")
	})
	return app
}

func TestWebhookSignature_Valid(t *testing.T) {
	app := signatureTestApp("s3cret")
	body := []byte(`{"ref":"refs/heads/main"}`)

	req := httptest.NewRequest("POST", "/hooks/github", bytes.NewReader(body))
	req.Header.Set("X-Hub-Signature-256", sign("s3cret", body))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestWebhookSignature_Invalid(t *testing.T) {
	app := signatureTestApp("s3cret")
	body := []byte(`{"ref":"refs/heads/main"}`)

	req := httptest.NewRequest("POST", "/hooks/github", bytes.NewReader(body))
	req.Header.Set("X-Hub-Signature-256", sign("wrong", body))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestWebhookSignature_MissingHeader(t *testing.T) {
	app := signatureTestApp("s3cret")

	req := httptest.NewRequest("POST", "/hooks/github", bytes.NewReader([]byte("{}")))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 401 {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}

func TestWebhookSignature_EmptySecretDisablesCheck(t *testing.T) {
	app := signatureTestApp("")

	req := httptest.NewRequest("POST", "/hooks/github", bytes.NewReader([]byte("{}")))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}
