package service

// IdentityClaims is the minimal set of facts embedded in a token to
// identify the caller.
type IdentityClaims struct {
	UserID   string
	Username string
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited identity tokens.
type TokenService interface {
	// Issue produces a signed token embedding the claims with the
	// configured expiry.
	Issue(claims IdentityClaims) (string, error)

	// Verify decodes a token and checks its signature and expiry.
	// It fails on malformed tokens, signature mismatch and expiry.
	Verify(token string) (*IdentityClaims, error)
}
