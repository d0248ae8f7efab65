package cadence

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v4"
)

// MsgPackDataConverter carries workflow and activity payloads as msgpack
// instead of cadence's default JSON encoding.
type MsgPackDataConverter struct{}

func NewMsgPackDataConverter() *MsgPackDataConverter {
	return &MsgPackDataConverter{}
}

// ToData encodes a list of argument values into a single payload.
func (c *MsgPackDataConverter) ToData(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode argument %d (%v): %v", i, reflect.TypeOf(v), err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes a payload back into the given argument pointers, in the
// order ToData wrote them.
func (c *MsgPackDataConverter) FromData(input []byte, valuePtrs ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(input))
	for i, v := range valuePtrs {
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode argument %d (%v): %v", i, reflect.TypeOf(v), err)
		}
	}
	return nil
}
