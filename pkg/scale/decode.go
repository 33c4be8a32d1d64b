// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import (
	"encoding/binary"
	"fmt"
	"reflect"
)

// Unmarshal decodes SCALE encoded data into dst, which must be a non nil pointer.
// Decoding never reads past the end of data; running out of input returns ErrTruncated.
func Unmarshal(data []byte, dst interface{}) (err error) {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: dst %T is not a non nil pointer", ErrUnsupportedType, dst)
	}

	ds := decodeState{
		data:                   data,
		fieldScaleIndicesCache: cache,
	}
	return ds.unmarshal(rv.Elem())
}

type decodeState struct {
	data   []byte
	offset int
	*fieldScaleIndicesCache
}

func (ds *decodeState) remaining() int {
	return len(ds.data) - ds.offset
}

func (ds *decodeState) next(n int) ([]byte, error) {
	if n < 0 || ds.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, ds.offset, ds.remaining())
	}
	b := ds.data[ds.offset : ds.offset+n]
	ds.offset += n
	return b, nil
}

func (ds *decodeState) decodeLength() (int, error) {
	length, consumed, err := DecodeCompactUint(ds.data[ds.offset:])
	if err != nil {
		return 0, err
	}
	ds.offset += consumed

	// every element takes at least one byte, a longer length cannot be satisfied
	if length > uint64(ds.remaining()) {
		return 0, fmt.Errorf("%w: length %d exceeds %d remaining bytes", ErrTruncated, length, ds.remaining())
	}
	return int(length), nil
}

func (ds *decodeState) unmarshal(dstv reflect.Value) (err error) {
	switch dstv.Kind() {
	case reflect.Uint8, reflect.Int8:
		b, err := ds.next(1)
		if err != nil {
			return err
		}
		setInteger(dstv, uint64(b[0]))
	case reflect.Uint16, reflect.Int16:
		b, err := ds.next(2)
		if err != nil {
			return err
		}
		setInteger(dstv, uint64(binary.LittleEndian.Uint16(b)))
	case reflect.Uint32, reflect.Int32:
		b, err := ds.next(4)
		if err != nil {
			return err
		}
		setInteger(dstv, uint64(binary.LittleEndian.Uint32(b)))
	case reflect.Uint64, reflect.Int64:
		b, err := ds.next(8)
		if err != nil {
			return err
		}
		setInteger(dstv, binary.LittleEndian.Uint64(b))
	case reflect.Bool:
		b, err := ds.next(1)
		if err != nil {
			return err
		}
		switch b[0] {
		case 0:
			dstv.SetBool(false)
		case 1:
			dstv.SetBool(true)
		default:
			return fmt.Errorf("invalid bool byte 0x%02x at offset %d", b[0], ds.offset-1)
		}
	case reflect.Array:
		for i := 0; i < dstv.Len(); i++ {
			err = ds.unmarshal(dstv.Index(i))
			if err != nil {
				return err
			}
		}
	case reflect.Slice:
		return ds.decodeSlice(dstv)
	case reflect.String:
		length, err := ds.decodeLength()
		if err != nil {
			return err
		}
		b, err := ds.next(length)
		if err != nil {
			return err
		}
		dstv.SetString(string(b))
	case reflect.Struct:
		return ds.decodeStruct(dstv)
	case reflect.Ptr:
		b, err := ds.next(1)
		if err != nil {
			return err
		}
		switch b[0] {
		case 0:
			dstv.Set(reflect.Zero(dstv.Type()))
		case 1:
			elem := reflect.New(dstv.Type().Elem())
			err = ds.unmarshal(elem.Elem())
			if err != nil {
				return err
			}
			dstv.Set(elem)
		default:
			return fmt.Errorf("invalid option byte 0x%02x at offset %d", b[0], ds.offset-1)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, dstv.Type())
	}
	return nil
}

func (ds *decodeState) decodeSlice(dstv reflect.Value) error {
	length, err := ds.decodeLength()
	if err != nil {
		return err
	}

	if dstv.Type().Elem().Kind() == reflect.Uint8 {
		b, err := ds.next(length)
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(dstv.Type(), length, length)
		reflect.Copy(out, reflect.ValueOf(b))
		dstv.Set(out)
		return nil
	}

	out := reflect.MakeSlice(dstv.Type(), length, length)
	for i := 0; i < length; i++ {
		err = ds.unmarshal(out.Index(i))
		if err != nil {
			return err
		}
	}
	dstv.Set(out)
	return nil
}

func (ds *decodeState) decodeStruct(dstv reflect.Value) error {
	indices, err := ds.fieldScaleIndices(dstv.Type())
	if err != nil {
		return err
	}
	for _, i := range indices {
		field := dstv.Field(i.fieldIndex)
		if !field.CanSet() {
			continue
		}
		err = ds.unmarshal(field)
		if err != nil {
			return fmt.Errorf("decoding field %s: %w", dstv.Type().Field(i.fieldIndex).Name, err)
		}
	}
	return nil
}

func setInteger(dstv reflect.Value, v uint64) {
	switch dstv.Kind() {
	case reflect.Int8:
		dstv.SetInt(int64(int8(v)))
	case reflect.Int16:
		dstv.SetInt(int64(int16(v)))
	case reflect.Int32:
		dstv.SetInt(int64(int32(v)))
	case reflect.Int64:
		dstv.SetInt(int64(v))
	default:
		dstv.SetUint(v)
	}
}
