package token

import "time"

// Maker issues and checks admin tokens.
type Maker interface {
	CreateToken(subject string, role string, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}
