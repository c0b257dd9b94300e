package test

// TokenParserStub implements operator token parsing with canned results.
type TokenParserStub struct {
	AdminID string
	Err     error
}

// ParseOperatorToken returns the configured identity or error.
func (s TokenParserStub) ParseOperatorToken(string) (string, error) {
	return s.AdminID, s.Err
}
