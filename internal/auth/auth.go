// Package auth resolves the bearer token sent with every API request.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	credDirName  = ".todo"
	credFileName = "credentials.json"

	SourceFlag   = "flag"
	SourceEnv    = "env"
	SourceFile   = "file"
	SourceConfig = "config"
)

// TokenInfo is a resolved token and where it came from.
type TokenInfo struct {
	Token     string     `json:"token"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func credsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, credDirName), nil
}

// CredentialsPath is where login stores the token.
func CredentialsPath() (string, error) {
	dir, err := credsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credFileName), nil
}

// Resolve picks the token to use. Order: explicit override (flag or env,
// already merged by the caller), stored credentials, then the configured
// fallback. Returns nil when none is set.
func Resolve(override, overrideSource, fallback string) (*TokenInfo, error) {
	if t := StripBearer(strings.TrimSpace(override)); t != "" {
		return &TokenInfo{Token: t, Source: overrideSource}, nil
	}
	stored, err := Stored()
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}
	if t := StripBearer(strings.TrimSpace(fallback)); t != "" {
		return &TokenInfo{Token: t, Source: SourceConfig}, nil
	}
	return nil, nil
}

// Stored reads the credentials file. A missing file yields nil, nil.
func Stored() (*TokenInfo, error) {
	p, err := CredentialsPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var ti TokenInfo
	if err := json.Unmarshal(b, &ti); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	ti.Token = StripBearer(ti.Token)
	ti.Source = SourceFile
	if ti.Token == "" {
		return nil, nil
	}
	return &ti, nil
}

// Save writes token to the credentials file (0600). When the token is a
// JWT carrying an exp claim, the expiry is recorded too.
func Save(token string) (*TokenInfo, error) {
	token = StripBearer(strings.TrimSpace(token))
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}
	dir, err := credsDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	ti := &TokenInfo{
		Token:     token,
		Source:    SourceFile,
		CreatedAt: time.Now(),
	}
	if claims, err := Claims(token); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			t := exp.Time
			ti.ExpiresAt = &t
		}
	}
	b, err := json.MarshalIndent(ti, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, credFileName), b, 0o600); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	return ti, nil
}

// Delete removes stored credentials; a missing file is not an error.
func Delete() error {
	p, err := CredentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

// Claims decodes a JWT payload without verifying its signature. Opaque
// tokens return an error.
func Claims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// StripBearer removes a leading "Bearer " scheme, any case.
func StripBearer(s string) string {
	if strings.HasPrefix(strings.ToLower(s), "bearer ") {
		return strings.TrimSpace(s[7:])
	}
	return s
}
