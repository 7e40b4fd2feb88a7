package logic

import (
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/enigma/internal/fileutil"
	"github.com/idelchi/enigma/pkg/asymmetric"
	"github.com/idelchi/enigma/pkg/codec"
)

// Key file names written by WriteKeyPair.
const (
	PublicKeyFile  = "enigma_rsa.pub"
	PrivateKeyFile = "enigma_rsa"
)

const (
	publicBlock  = "PUBLIC KEY"
	privateBlock = "PRIVATE KEY"
)

// WriteKeyPair stores pair as PEM files in dir and returns their paths.
// The private key is readable by the owner only.
func WriteKeyPair(dir string, pair asymmetric.KeyPair) (publicPath, privatePath string, err error) {
	publicPath = filepath.Join(dir, PublicKeyFile)
	privatePath = filepath.Join(dir, PrivateKeyFile)

	if err := writePEM(privatePath, privateBlock, pair.PrivateKey, 0o600); err != nil {
		return "", "", err
	}

	if err := writePEM(publicPath, publicBlock, pair.PublicKey, 0o644); err != nil {
		return "", "", err
	}

	return publicPath, privatePath, nil
}

func writePEM(path, blockType, encoded string, perm os.FileMode) error {
	der, err := codec.DecodeBase64Bytes(encoded)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", strings.ToLower(blockType), err)
	}

	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})

	if _, err := fileutil.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", strings.ToLower(blockType), err)
	}

	return nil
}

// LoadKey resolves a key flag value. A value starting with "@" names a PEM
// file written by WriteKeyPair; anything else is taken as Base64 DER.
func LoadKey(value string) (string, error) {
	path, ok := strings.CutPrefix(value, "@")
	if !ok {
		return value, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("reading key file: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil || (block.Type != publicBlock && block.Type != privateBlock) {
		return "", fmt.Errorf("no %s or %s PEM block in %q", publicBlock, privateBlock, path)
	}

	return codec.EncodeBase64Bytes(block.Bytes), nil
}
