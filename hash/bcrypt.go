// SPDX-License-Identifier: MIT

package hash

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type (
	// Bcrypt implements Hasher with bcrypt.
	Bcrypt struct {
		cost   int
		pepper string
	}
)

func NewBcrypt(cost int, pepper string) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Bcrypt{cost: cost, pepper: pepper}
}

func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext+b.pepper), b.cost)

	return string(hashed), errors.Wrap(err, "failed to bcrypt password")
}

func (b *Bcrypt) Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext+b.pepper)) == nil
}
