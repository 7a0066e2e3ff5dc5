// This file implements the credential store: a minimal username to
// password-digest table, seeded with a default operator account.
package sqlite

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasteops/mealweek/pkg/types"
)

// Default operator account seeded on a cold database. Documented bootstrap
// credentials; operators are expected to add their own account and can
// then delete this one by hand.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "admin"
)

// hashPassword produces the legacy unsalted sha256 hex digest. Existing
// databases store this format, so it stays the seed and default scheme.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// SeedDefaultAdmin inserts the default account if the credential table is
// empty. Runs on every Open; a non-empty table makes it a no-op.
func (s *Store) SeedDefaultAdmin() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM usuarios").Scan(&count); err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}
	s.logger.Info("seeding default admin account", zap.String("username", DefaultAdminUser))
	// The seed always uses the legacy digest so bootstrap against old and
	// new databases behaves identically.
	_, err := s.db.Exec(
		"INSERT INTO usuarios(username, password_hash) VALUES(?,?)",
		DefaultAdminUser, hashPassword(DefaultAdminPassword),
	)
	if err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}
	return nil
}

// AddUser inserts a new credential. Returns ErrAlreadyExists if the
// username is taken. New accounts use bcrypt when the store was opened
// with BcryptCredentials; otherwise the legacy sha256 scheme.
func (s *Store) AddUser(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	digest := hashPassword(password)
	if s.cfg.BcryptCredentials {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		digest = string(h)
	}

	_, err := s.db.Exec(
		"INSERT INTO usuarios(username, password_hash) VALUES(?,?)",
		username, digest,
	)
	if isUniqueViolation(err, "usuarios.username") {
		return types.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("adding user: %w", err)
	}
	s.logger.Info("user added", zap.String("username", username))
	return nil
}

// Verify reports whether the username/password pair matches a stored
// credential. Unknown usernames and wrong passwords are deliberately
// indistinguishable: both return false.
func (s *Store) Verify(username, password string) bool {
	var stored string
	err := s.db.QueryRow(
		"SELECT password_hash FROM usuarios WHERE username=?", username,
	).Scan(&stored)
	if err != nil {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == hashPassword(password)
}
