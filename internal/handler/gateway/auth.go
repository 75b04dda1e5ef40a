package gateway

import (
	"log/slog"
	"strings"

	"tablebook/internal/usecase"
)

// AuthGate fails closed: a request without a verifiable bearer token is
// rejected before the handler or any store call runs.
type AuthGate struct {
	verifier usecase.TokenVerifier
}

func NewAuthGate(verifier usecase.TokenVerifier) *AuthGate {
	return &AuthGate{verifier: verifier}
}

func (g *AuthGate) Check(req *Request) (Response, bool) {
	header := req.Header("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return Fail("access token required"), false
	}

	token := strings.TrimSpace(header[len("Bearer "):])
	if _, err := g.verifier.Verify(token); err != nil {
		slog.Warn("token verification failed", "error", err.Error())
		return Fail("invalid or expired token"), false
	}
	return Response{}, true
}
