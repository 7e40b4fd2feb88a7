package symmetric

import (
	"bytes"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/daead"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	aes_sivpb "github.com/tink-crypto/tink-go/v2/proto/aes_siv_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/tink"

	"google.golang.org/protobuf/proto"

	"github.com/idelchi/enigma/pkg/errdefs"
)

// SIVKeySize is the required key size for AES-SIV.
const SIVKeySize = 64

// SealDeterministic encrypts and authenticates plaintext with AES-SIV.
// Equal inputs under the same key produce equal ciphertexts.
func SealDeterministic(plaintext, key, associatedData []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, errdefs.InvalidArgument("plaintext cannot be empty")
	}

	primitive, err := newDeterministicAEAD(key)
	if err != nil {
		return nil, err
	}

	ciphertext, err := primitive.EncryptDeterministically(plaintext, associatedData)
	if err != nil {
		return nil, errdefs.Crypto(err, "sealing")
	}

	return ciphertext, nil
}

// OpenDeterministic verifies and decrypts the output of SealDeterministic.
func OpenDeterministic(ciphertext, key, associatedData []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, errdefs.InvalidArgument("ciphertext cannot be empty")
	}

	primitive, err := newDeterministicAEAD(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := primitive.DecryptDeterministically(ciphertext, associatedData)
	if err != nil {
		return nil, errdefs.Crypto(err, "opening")
	}

	return plaintext, nil
}

func newDeterministicAEAD(key []byte) (tink.DeterministicAEAD, error) {
	if len(key) != SIVKeySize {
		return nil, errdefs.InvalidArgument("siv key must be %d bytes, got %d", SIVKeySize, len(key))
	}

	handle, err := newDeterministicAEADKeyHandle(key)
	if err != nil {
		return nil, errdefs.Crypto(err, "creating keyset handle")
	}

	primitive, err := daead.New(handle)
	if err != nil {
		return nil, errdefs.Crypto(err, "creating DeterministicAEAD")
	}

	return primitive, nil
}

// newDeterministicAEADKeyHandle wraps raw AES-SIV key bytes in a single-key Tink keyset.
func newDeterministicAEADKeyHandle(key []byte) (*keyset.Handle, error) {
	serializedKey, err := proto.Marshal(&aes_sivpb.AesSivKey{
		Version:  0,
		KeyValue: key,
	})
	if err != nil {
		return nil, fmt.Errorf("serializing AesSivKey: %w", err)
	}

	keySet := &tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{
			{
				KeyData: &tinkpb.KeyData{
					TypeUrl:         "type.googleapis.com/google.crypto.tink.AesSivKey",
					Value:           serializedKey,
					KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
				},
				Status:           tinkpb.KeyStatusType_ENABLED,
				KeyId:            1,
				OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			},
		},
	}

	serializedKeyset, err := proto.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}

	handle, err := insecurecleartextkeyset.Read(keyset.NewBinaryReader(bytes.NewReader(serializedKeyset)))
	if err != nil {
		return nil, fmt.Errorf("reading keyset: %w", err)
	}

	return handle, nil
}
