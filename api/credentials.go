package api

import (
	"bufio"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordSuffix is used by SuffixVerifier when none is configured
const DefaultPasswordSuffix = "2025!"

// Verifier decides whether a username and password pair may log in.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

// SuffixVerifier accepts the trimmed username followed by a fixed suffix as
// the password. It is a placeholder for deployments without a credentials file.
type SuffixVerifier struct {
	Suffix string
}

func (v SuffixVerifier) Verify(_ context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}
	expected := username + v.Suffix
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1, nil
}

// BcryptStore checks passwords against bcrypt hashes keyed by username.
type BcryptStore struct {
	hashes map[string][]byte
}

// NewBcryptStore builds a store from username to bcrypt hash.
func NewBcryptStore(hashes map[string]string) *BcryptStore {
	s := &BcryptStore{hashes: make(map[string][]byte, len(hashes))}
	for user, hash := range hashes {
		s.hashes[strings.TrimSpace(user)] = []byte(hash)
	}
	return s
}

// LoadCredentialsFile reads a credentials file with one "username:hash"
// entry per line. Blank lines and lines starting with # are ignored.
func LoadCredentialsFile(path string) (*BcryptStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open credentials file: %w", err)
	}
	defer f.Close()
	return ParseCredentials(f)
}

func ParseCredentials(r io.Reader) (*BcryptStore, error) {
	hashes := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		user, hash, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(user) == "" || hash == "" {
			return nil, fmt.Errorf("credentials line %d: expected username:hash", lineNo)
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("credentials line %d: %w", lineNo, err)
		}
		hashes[user] = hash
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if len(hashes) == 0 {
		return nil, errors.New("credentials file has no entries")
	}
	return NewBcryptStore(hashes), nil
}

func (s *BcryptStore) Verify(ctx context.Context, username, password string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	hash, ok := s.hashes[strings.TrimSpace(username)]
	if !ok {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("compare password hash: %w", err)
	}
	return true, nil
}
