package anchor

import (
	"encoding/binary"
	"math/big"
	"reflect"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var intWidths = map[string]struct {
	bytes  int
	signed bool
}{
	"u8": {1, false}, "u16": {2, false}, "u32": {4, false}, "u64": {8, false}, "u128": {16, false},
	"i8": {1, true}, "i16": {2, true}, "i32": {4, true}, "i64": {8, true}, "i128": {16, true},
}

// EncodeArgs borsh-encodes values in the order the IDL declares args.
func EncodeArgs(encoder *bin.Encoder, args []IdlField, values []any) error {
	if len(values) != len(args) {
		return errors.Errorf("expected %d args, got %d", len(args), len(values))
	}
	for i, arg := range args {
		if err := EncodeValue(encoder, arg.Type, values[i]); err != nil {
			return errors.Wrapf(err, "arg %q (%s)", arg.Name, arg.Type)
		}
	}
	return nil
}

func EncodeValue(encoder *bin.Encoder, typ IdlType, v any) error {
	switch {
	case typ.Vec != nil:
		items, err := toSlice(v)
		if err != nil {
			return err
		}
		if err := encoder.WriteUint32(uint32(len(items)), binary.LittleEndian); err != nil {
			return err
		}
		for i, item := range items {
			if err := EncodeValue(encoder, *typ.Vec, item); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		return nil

	case typ.Array != nil:
		items, err := toSlice(v)
		if err != nil {
			return err
		}
		if len(items) != typ.ArrayLen {
			return errors.Errorf("array needs %d elements, got %d", typ.ArrayLen, len(items))
		}
		for i, item := range items {
			if err := EncodeValue(encoder, *typ.Array, item); err != nil {
				return errors.Wrapf(err, "element %d", i)
			}
		}
		return nil

	case typ.Option != nil:
		if isNil(v) {
			return encoder.WriteUint8(0)
		}
		if err := encoder.WriteUint8(1); err != nil {
			return err
		}
		return EncodeValue(encoder, *typ.Option, v)

	case typ.Defined != "":
		return errors.Errorf("defined type %q is not supported", typ.Defined)
	}

	if w, ok := intWidths[typ.Primitive]; ok {
		n, err := toBigInt(v)
		if err != nil {
			return err
		}
		buf, err := littleEndian(n, w.bytes, w.signed)
		if err != nil {
			return errors.Wrap(err, typ.Primitive)
		}
		return encoder.WriteBytes(buf, false)
	}

	switch typ.Primitive {
	case "bool":
		b, err := cast.ToBoolE(v)
		if err != nil {
			return err
		}
		return encoder.WriteBool(b)

	case "string":
		s, err := cast.ToStringE(v)
		if err != nil {
			return err
		}
		return writeLengthPrefixed(encoder, []byte(s))

	case "bytes":
		b, ok := v.([]byte)
		if !ok {
			return errors.Errorf("bytes arg must be []byte, got %T", v)
		}
		return writeLengthPrefixed(encoder, b)

	case "publicKey", "pubkey":
		pk, err := toPublicKey(v)
		if err != nil {
			return err
		}
		return encoder.WriteBytes(pk[:], false)
	}

	return errors.Errorf("unsupported idl type %q", typ.Primitive)
}

func writeLengthPrefixed(encoder *bin.Encoder, b []byte) error {
	if err := encoder.WriteUint32(uint32(len(b)), binary.LittleEndian); err != nil {
		return err
	}
	return encoder.WriteBytes(b, false)
}

// toBigInt accepts decimal strings of any size as well as Go integers.
func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, errors.New("nil integer")
		}
		return new(big.Int).Set(n), nil
	case string:
		out, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, errors.Errorf("%q is not a decimal integer", n)
		}
		return out, nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := cast.ToUint64E(n)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(u), nil
	}
	i, err := cast.ToInt64E(v)
	if err != nil {
		return nil, err
	}
	return big.NewInt(i), nil
}

// littleEndian lays n out in size bytes, two's complement when signed.
func littleEndian(n *big.Int, size int, signed bool) ([]byte, error) {
	bits := uint(size * 8)
	limit := new(big.Int).Lsh(big.NewInt(1), bits)

	v := new(big.Int).Set(n)
	if signed {
		half := new(big.Int).Rsh(limit, 1)
		if v.Cmp(half) >= 0 || v.Cmp(new(big.Int).Neg(half)) < 0 {
			return nil, errors.Errorf("%s overflows %d bits", n, bits)
		}
		if v.Sign() < 0 {
			v.Add(v, limit)
		}
	} else if v.Sign() < 0 || v.Cmp(limit) >= 0 {
		return nil, errors.Errorf("%s out of range for unsigned %d bits", n, bits)
	}

	buf := v.FillBytes(make([]byte, size))
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf, nil
}

func toPublicKey(v any) (solana.PublicKey, error) {
	switch pk := v.(type) {
	case solana.PublicKey:
		return pk, nil
	case *solana.PublicKey:
		if pk == nil {
			return solana.PublicKey{}, errors.New("nil public key")
		}
		return *pk, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBase58(s)
}

func toSlice(v any) ([]any, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Errorf("expected a sequence, got %T", v)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
