package auth

import "context"

// LoginTestChecker is a Checker for unit tests, with canned token answers.
type LoginTestChecker struct {
	LoggedSessions map[string]bool
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]bool{},
	}
}

func (ltc *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	return ltc.LoggedSessions[token], nil
}
