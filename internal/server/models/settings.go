package models

// Settings is a single row table holding server-wide state, including
// the signing key pair for session tokens.
type Settings struct {
	Model

	PrivateJWK []byte
	PublicJWK  []byte
}
