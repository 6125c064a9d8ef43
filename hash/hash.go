// SPDX-License-Identifier: MIT

package hash

import (
	appcfg "github.com/frostpeak/authkit/config"
	"github.com/frostpeak/authkit/log"
)

func New(applicationYAMLKey string) Hasher {
	var cfg config
	appcfg.MustLoadFromKey(applicationYAMLKey, &cfg)

	switch cfg.AuthkitHash.Algorithm {
	case algorithmArgon2id, "":
		return NewArgon2id(cfg.AuthkitHash.Pepper)
	case algorithmBcrypt:
		return NewBcrypt(cfg.AuthkitHash.BcryptCost, cfg.AuthkitHash.Pepper)
	default:
		log.Panic("unsupported hashing algorithm: " + cfg.AuthkitHash.Algorithm)

		return nil
	}
}
