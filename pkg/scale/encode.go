// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
	"reflect"
)

// Marshal SCALE encodes the given value. Fixed width integers are little endian,
// []byte and string are compact length prefixed, arrays are written element by
// element, structs field by field and pointers as options.
func Marshal(v interface{}) (b []byte, err error) {
	es := encodeState{
		fieldScaleIndicesCache: cache,
	}
	err = es.marshal(v)
	if err != nil {
		return nil, err
	}
	return es.Bytes(), nil
}

// MustMarshal runs Marshal and panics on error.
func MustMarshal(v interface{}) []byte {
	b, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// EncodeCompact returns the compact encoding of v.
func EncodeCompact(v uint64) []byte {
	es := encodeState{}
	// writes into a bytes.Buffer never fail
	_ = es.encodeUint(v)
	return es.Bytes()
}

type encodeState struct {
	bytes.Buffer
	*fieldScaleIndicesCache
}

func (es *encodeState) marshal(in interface{}) (err error) {
	switch in := in.(type) {
	case int8, uint8, int16, uint16, int32, uint32, int64, uint64:
		err = es.encodeFixedWidthInt(in)
	case int, uint:
		err = fmt.Errorf("%w: %T has no fixed width, use a sized integer", ErrUnsupportedType, in)
	case *big.Int:
		err = es.encodeBigInt(in)
	case []byte:
		err = es.encodeBytes(in)
	case string:
		err = es.encodeBytes([]byte(in))
	case bool:
		err = es.encodeBool(in)
	default:
		err = es.marshalValue(reflect.ValueOf(in))
	}
	return err
}

func (es *encodeState) marshalValue(v reflect.Value) (err error) {
	switch v.Kind() {
	case reflect.Ptr:
		// Assuming that anything that is a pointer is an Option to capture {nil, T}
		if v.IsNil() {
			return es.WriteByte(0)
		}
		err = es.WriteByte(1)
		if err != nil {
			return err
		}
		return es.marshal(v.Elem().Interface())
	case reflect.Struct:
		return es.encodeStruct(v)
	case reflect.Array:
		return es.encodeArray(v)
	case reflect.Slice:
		return es.encodeSlice(v)
	case reflect.Uint8:
		return es.encodeFixedWidthInt(uint8(v.Uint()))
	case reflect.Uint16:
		return es.encodeFixedWidthInt(uint16(v.Uint()))
	case reflect.Uint32:
		return es.encodeFixedWidthInt(uint32(v.Uint()))
	case reflect.Uint64:
		return es.encodeFixedWidthInt(v.Uint())
	case reflect.Int8:
		return es.encodeFixedWidthInt(int8(v.Int()))
	case reflect.Int16:
		return es.encodeFixedWidthInt(int16(v.Int()))
	case reflect.Int32:
		return es.encodeFixedWidthInt(int32(v.Int()))
	case reflect.Int64:
		return es.encodeFixedWidthInt(v.Int())
	case reflect.Bool:
		return es.encodeBool(v.Bool())
	case reflect.String:
		return es.encodeBytes([]byte(v.String()))
	case reflect.Invalid:
		return fmt.Errorf("%w: nil interface", ErrUnsupportedType)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}
}

// encodeSlice writes the compact encoded length followed by each element.
func (es *encodeState) encodeSlice(v reflect.Value) (err error) {
	if v.Type().Elem().Kind() == reflect.Uint8 {
		return es.encodeBytes(v.Bytes())
	}

	err = es.encodeUint(uint64(v.Len()))
	if err != nil {
		return err
	}
	for i := 0; i < v.Len(); i++ {
		err = es.marshal(v.Index(i).Interface())
		if err != nil {
			return err
		}
	}
	return nil
}

// encodeArray encodes an interface where the underlying type is an array.
// Arrays have a static length so no length prefix is written.
func (es *encodeState) encodeArray(v reflect.Value) (err error) {
	if v.Type().Elem().Kind() == reflect.Uint8 {
		for i := 0; i < v.Len(); i++ {
			err = es.WriteByte(uint8(v.Index(i).Uint()))
			if err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < v.Len(); i++ {
		err = es.marshal(v.Index(i).Interface())
		if err != nil {
			return err
		}
	}
	return nil
}

// encodeBigInt performs the same encoding as encodeUint, except on a big.Int.
// if 2^30 <= n < 2^536 write [lower 2 bits of first byte = 11] [upper 6 bits of first byte = # of bytes following less 4]
// [append i as a byte array to the first byte]
func (es *encodeState) encodeBigInt(i *big.Int) (err error) {
	switch {
	case i == nil:
		err = fmt.Errorf("%w: nil *big.Int", ErrUnsupportedType)
	case i.Sign() < 0:
		err = fmt.Errorf("%w: negative *big.Int", ErrUnsupportedType)
	case i.IsUint64():
		err = es.encodeUint(i.Uint64())
	default:
		numBytes := len(i.Bytes())
		topSixBits := uint8(numBytes - 4)
		lengthByte := topSixBits<<2 + 3

		// write byte which encodes mode and length
		err = binary.Write(es, binary.LittleEndian, lengthByte)
		if err == nil {
			// write integer itself
			err = binary.Write(es, binary.LittleEndian, reverseBytes(i.Bytes()))
		}
	}
	return err
}

// encodeBool performs the following:
// l = true -> write [1]
// l = false -> write [0]
func (es *encodeState) encodeBool(l bool) (err error) {
	if l {
		return es.WriteByte(0x01)
	}
	return es.WriteByte(0x00)
}

// encodeBytes performs the following:
// b -> [encodeInteger(len(b)) b]
// it writes to the buffer a byte array where the first byte is the length of b encoded with SCALE, followed by the
// byte array b itself
func (es *encodeState) encodeBytes(b []byte) (err error) {
	err = es.encodeUint(uint64(len(b)))
	if err != nil {
		return err
	}

	_, err = es.Write(b)
	return err
}

// encodeFixedWidthInt encodes an int with size < 2**64 by putting it into little endian byte format
func (es *encodeState) encodeFixedWidthInt(i interface{}) (err error) {
	switch i := i.(type) {
	case int8:
		err = binary.Write(es, binary.LittleEndian, byte(i))
	case uint8:
		err = binary.Write(es, binary.LittleEndian, i)
	case int16:
		err = binary.Write(es, binary.LittleEndian, uint16(i))
	case uint16:
		err = binary.Write(es, binary.LittleEndian, i)
	case int32:
		err = binary.Write(es, binary.LittleEndian, uint32(i))
	case uint32:
		err = binary.Write(es, binary.LittleEndian, i)
	case int64:
		err = binary.Write(es, binary.LittleEndian, uint64(i))
	case uint64:
		err = binary.Write(es, binary.LittleEndian, i)
	default:
		err = fmt.Errorf("could not encode fixed width integer, invalid type: %T", i)
	}
	return err
}

// encodeStruct reads the number of fields in the struct and their types and writes to the buffer each of the struct fields
// encoded as their respective types
func (es *encodeState) encodeStruct(v reflect.Value) (err error) {
	if es.fieldScaleIndicesCache == nil {
		es.fieldScaleIndicesCache = cache
	}
	indices, err := es.fieldScaleIndices(v.Type())
	if err != nil {
		return err
	}
	for _, i := range indices {
		field := v.Field(i.fieldIndex)
		if !field.CanInterface() {
			continue
		}
		err = es.marshal(field.Interface())
		if err != nil {
			return fmt.Errorf("encoding field %s: %w", v.Type().Field(i.fieldIndex).Name, err)
		}
	}
	return nil
}

// encodeUint performs the following on integer i:
// i  -> i^0...i^n where n is the length in bits of i
// note that the bit representation of i is in little endian; ie i^0 is the least significant bit of i,
// and i^n is the most significant bit
// if n < 2^6 write [00 i^2...i^8 ] [ 8 bits = 1 byte encoded ]
// if 2^6 <= n < 2^14 write [01 i^2...i^16] [ 16 bits = 2 byte encoded ]
// if 2^14 <= n < 2^30 write [10 i^2...i^32] [ 32 bits = 4 byte encoded ]
// if n >= 2^30 write [lower 2 bits of first byte = 11] [upper 6 bits of first byte = # of bytes following less 4]
// [append i as a byte array to the first byte]
func (es *encodeState) encodeUint(i uint64) (err error) {
	switch {
	case i < 1<<6:
		err = binary.Write(es, binary.LittleEndian, byte(i)<<2)
	case i < 1<<14:
		err = binary.Write(es, binary.LittleEndian, uint16(i<<2)+1)
	case i < 1<<30:
		err = binary.Write(es, binary.LittleEndian, uint32(i<<2)+2)
	default:
		o := make([]byte, 8)
		m := i
		var numBytes int
		// calculate the number of bytes needed to store i
		// the most significant byte cannot be zero
		// each iteration, shift by 1 byte until the number is zero
		// then break and save the numBytes needed
		for numBytes = 0; numBytes < 8 && m != 0; numBytes++ {
			m = m >> 8
		}

		topSixBits := uint8(numBytes - 4)
		lengthByte := topSixBits<<2 + 3

		err = binary.Write(es, binary.LittleEndian, lengthByte)
		if err == nil {
			binary.LittleEndian.PutUint64(o, i)
			err = binary.Write(es, binary.LittleEndian, o[0:numBytes])
		}
	}
	return err
}
