package sqlkind

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Query[Select]{}
	_ msgpack.CustomDecoder = (*Query[Select])(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder. A query is encoded as the
// array [keyword, text].
func (q Query[K]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeString(KeywordOf[K]()); err != nil {
		return err
	}
	return enc.EncodeString(q.text)
}

// DecodeMsgpack implements msgpack.CustomDecoder. It fails with a
// *KindMismatchError if the encoded query was built for another kind.
func (q *Query[K]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("sqlkind: decode query: %w", err)
	}
	if n != 2 {
		return fmt.Errorf("sqlkind: decode query: expect 2 elements, got %d", n)
	}
	kw, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("sqlkind: decode query keyword: %w", err)
	}
	if want := KeywordOf[K](); kw != want {
		return &KindMismatchError{Want: want, Got: kw}
	}
	text, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("sqlkind: decode query text: %w", err)
	}
	q.text = text
	return nil
}
