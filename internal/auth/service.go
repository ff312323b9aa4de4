package auth

import "context"

// Service wraps the single-shot credential check. Credentials are
// compared as stored; no session or token is issued on success.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login reports whether the pair matches an administrator row. A
// mismatch is a regular false result, not an error.
func (s *Service) Login(ctx context.Context, username, password string) (bool, error) {
	return s.repo.Exists(ctx, username, password)
}
