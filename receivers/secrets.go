package receivers

import (
	"context"
	"reflect"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Secret is the type for settings fields that hold sensitive values such as tokens.
// When decoded with a marshaller from NewSecretsMarshaller, the value is replaced by
// the one found in secure settings under the field's JSON key.
type Secret string

// secretsDecoderDecorator decorates a struct decoder to fill Secret fields from secure settings.
type secretsDecoderDecorator struct {
	original      jsoniter.ValDecoder
	decryptFunc   DecryptFunc
	decryptFields map[string]reflect2.StructField
}

func (s secretsDecoderDecorator) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	s.original.Decode(ptr, iter)
	if iter.Error != nil {
		return
	}
	for key, field := range s.decryptFields {
		fieldVal := field.UnsafeGet(ptr)
		originalValue := string(*((*Secret)(fieldVal)))
		decrypted := s.decryptFunc(key, originalValue)
		if decrypted != originalValue {
			*((*Secret)(fieldVal)) = Secret(decrypted)
		}
	}
}

type secretsDecoderExtension struct {
	jsoniter.DummyExtension
	decrypt DecryptFunc
}

func (s *secretsDecoderExtension) DecorateDecoder(typ reflect2.Type, decoder jsoniter.ValDecoder) jsoniter.ValDecoder {
	if typ.Kind() != reflect.Struct {
		return decoder
	}
	decryptFields := make(map[string]reflect2.StructField, 4)
	structType := typ.(*reflect2.UnsafeStructType)
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type() != reflect2.TypeOf(Secret("")) {
			continue
		}
		tag := strings.Split(field.Tag().Get("json"), ",")[0]
		if tag == "" {
			tag = field.Name()
		}
		decryptFields[tag] = field
	}
	if len(decryptFields) == 0 {
		return decoder
	}
	return &secretsDecoderDecorator{
		original:      decoder,
		decryptFunc:   s.decrypt,
		decryptFields: decryptFields,
	}
}

// NewSecretsMarshaller returns a jsoniter API compatible with encoding/json that
// resolves Secret fields through decrypt while decoding.
func NewSecretsMarshaller(decrypt DecryptFunc) jsoniter.API {
	if decrypt == nil {
		decrypt = NoSecrets
	}
	var j = jsoniter.Config{ // this is jsoniter.ConfigCompatibleWithStandardLibrary
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	// a fresh API per call because the extension closes over the secrets.
	j.RegisterExtension(&secretsDecoderExtension{decrypt: decrypt})
	return j
}

func CreateMarshallerWithSecretsDecrypt(decryptFunc GetDecryptedValueFn, secrets map[string][]byte) jsoniter.API {
	// not all receivers do need secure settings, we still might interact with
	// them, so we make sure they are never nil
	if secrets == nil {
		secrets = map[string][]byte{}
	}
	return NewSecretsMarshaller(func(key string, fallback string) string {
		return decryptFunc(context.Background(), secrets, key, fallback)
	})
}
