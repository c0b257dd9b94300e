package auth

import "time"

// Strategy issues and verifies operator tokens handed out after a
// successful admin validation.
type Strategy interface {
	IssueToken(adminID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
