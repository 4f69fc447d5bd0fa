package config

import (
	"encoding/hex"
	"os"

	"github.com/pkg/errors"

	"github.com/vrrb-chain/vrrb-core/keys"
)

// LoadOrCreateKeypair reads the hex-encoded secret key at path, creating
// a fresh one and persisting it with mode 0600 if it does not exist
// (spec §6 "the keypair file is written with mode 0600 on Unix-like
// systems").
func LoadOrCreateKeypair(path string) (*keys.KeyPair, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		secret, decodeErr := hex.DecodeString(string(data))
		if decodeErr != nil {
			return nil, errors.Wrap(decodeErr, "config: malformed keypair file")
		}
		return keys.FromSecretBytes(secret)
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "config: failed to read keypair file")
	}

	kp, genErr := keys.Generate()
	if genErr != nil {
		return nil, errors.Wrap(genErr, "config: failed to generate keypair")
	}

	encoded := hex.EncodeToString(kp.SecretBytes())
	if err := os.WriteFile(path, []byte(encoded), 0600); err != nil {
		return nil, errors.Wrap(err, "config: failed to persist keypair")
	}
	return kp, nil
}
