package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrInvalidHash = errors.New("invalid password hash format")

const saltLen = 16

type argonParams struct {
	memory  uint32
	passes  uint32
	threads uint8
	keyLen  uint32
}

var defaultArgonParams = argonParams{memory: 64 * 1024, passes: 1, threads: 4, keyLen: 32}

// PasswordHasher stores passwords as argon2id PHC strings, e.g.
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
type PasswordHasher struct {
	params argonParams
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{params: defaultArgonParams}
}

func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}
	return encodeHash(p.params, salt, p.params.derive(password, salt)), nil
}

// Verify reports whether password matches encoded. An empty hash never
// matches, so accounts created without a password cannot log in.
func (p *PasswordHasher) Verify(password, encoded string) (bool, error) {
	if encoded == "" {
		return false, nil
	}
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(key, params.derive(password, salt)) == 1, nil
}

func (a argonParams) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, a.passes, a.memory, a.threads, a.keyLen)
}

func encodeHash(a argonParams, salt, key []byte) string {
	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.memory, a.passes, a.threads, b64.EncodeToString(salt), b64.EncodeToString(key))
}

func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	var a argonParams
	fields := strings.Split(encoded, "$")
	if len(fields) != 6 || fields[1] != "argon2id" {
		return a, nil, nil, ErrInvalidHash
	}
	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &a.memory, &a.passes, &a.threads); err != nil {
		return a, nil, nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	salt, err := base64.RawStdEncoding.DecodeString(fields[4])
	if err != nil {
		return a, nil, nil, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(fields[5])
	if err != nil {
		return a, nil, nil, fmt.Errorf("%w: key: %v", ErrInvalidHash, err)
	}
	a.keyLen = uint32(len(key))
	return a, salt, key, nil
}
