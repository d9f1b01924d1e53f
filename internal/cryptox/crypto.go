// Package cryptox implements password hashing for stored credentials.
//
// Hashes are argon2id digests in PHC string form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// The salt and digest are unpadded standard base64. A service-wide pepper is
// appended to every plaintext before it reaches the key-derivation function,
// so a leaked users table cannot be attacked without the service configuration.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	algorithm  = "argon2id"
	saltLength = 16
	keyLength  = 32
)

// Upper bounds on the work factor accepted from configuration or from a
// stored hash. Anything above them is treated as corrupt.
const (
	MaxTime      = 16
	MaxMemoryKiB = 1 << 20
)

// ErrEmptyPassword is returned by Hash for an empty plaintext.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Params is the argon2id work factor. It is fixed for the lifetime of the
// process and recorded inside every hash, so changing it later only affects
// new hashes.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultParams are the OWASP-recommended argon2id settings.
var DefaultParams = Params{Time: 1, MemoryKiB: 64 * 1024, Threads: 4}

// Hasher derives and verifies peppered password hashes.
type Hasher struct {
	params Params
	pepper []byte
}

// NewHasher returns a Hasher using params and pepper. The pepper must be
// non-empty.
func NewHasher(params Params, pepper string) (*Hasher, error) {
	if pepper == "" {
		return nil, errors.New("password pepper is not configured")
	}
	if params.Time == 0 || params.MemoryKiB == 0 || params.Threads == 0 ||
		params.Time > MaxTime || params.MemoryKiB > MaxMemoryKiB {
		return nil, fmt.Errorf("invalid argon2 params: %+v", params)
	}
	return &Hasher{params: params, pepper: []byte(pepper)}, nil
}

func (h *Hasher) peppered(password string) []byte {
	b := make([]byte, 0, len(password)+len(h.pepper))
	b = append(b, password...)
	return append(b, h.pepper...)
}

// Hash returns the PHC encoding of password+pepper under a fresh random salt.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := common.GenerateRandByteArray(saltLength)

	input := h.peppered(password)
	defer common.WipeByteArray(input)

	key := argon2.IDKey(input, salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, keyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm,
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify checks password+pepper against encoded. It returns nil on a match,
// common.ErrHashMismatch on a clean mismatch and an error wrapping
// common.ErrMalformedHash when encoded cannot be parsed.
func (h *Hasher) Verify(password, encoded string) error {
	p, salt, want, err := decode(encoded)
	if err != nil {
		return err
	}

	input := h.peppered(password)
	defer common.WipeByteArray(input)

	got := argon2.IDKey(input, salt, p.Time, p.MemoryKiB, p.Threads, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return common.ErrHashMismatch
	}
	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{common.ErrMalformedHash}, args...)...)
}

func decode(encoded string) (Params, []byte, []byte, error) {
	var p Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, malformed("expected 6 segments, got %d", len(parts))
	}
	if parts[1] != algorithm {
		return p, nil, nil, malformed("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, malformed("version: %v", err)
	}
	if version != argon2.Version {
		return p, nil, nil, malformed("unsupported argon2 version %d", version)
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return p, nil, nil, malformed("params: %v", err)
	}
	if memory == 0 || time == 0 || threads == 0 ||
		memory > MaxMemoryKiB || time > MaxTime || threads > 255 {
		return p, nil, nil, malformed("params out of range m=%d t=%d p=%d", memory, time, threads)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return p, nil, nil, malformed("salt encoding")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > 1024 {
		return p, nil, nil, malformed("hash encoding")
	}

	p = Params{Time: time, MemoryKiB: memory, Threads: uint8(threads)}
	return p, salt, key, nil
}
