package extract

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/rotisserie/eris"
)

// maxDepth matches the nesting limit of encoding/json.
const maxDepth = 10000

// ErrTooDeep is returned for values nested deeper than maxDepth.
var ErrTooDeep = eris.New("extract: exceeded max nesting depth")

// DecodeOptions tunes Decode.
type DecodeOptions struct {
	// Lenient retries a failed strict decode once after running the text
	// through jsonrepair.
	Lenient bool
}

// Outcome is the tagged result of Decode. When OK is false, Value is an
// empty object and Err says why.
type Outcome struct {
	Value    Value
	OK       bool
	Repaired bool
	Err      error
}

// Decode parses text into a Value. It never panics; failures are reported
// through the Outcome.
func Decode(text string, opts DecodeOptions) Outcome {
	v, err := decodeStrict(text)
	if err == nil {
		return Outcome{Value: v, OK: true}
	}

	if opts.Lenient && !errors.Is(err, ErrTooDeep) {
		if fixed, rerr := jsonrepair.JSONRepair(text); rerr == nil {
			if v, ferr := decodeStrict(fixed); ferr == nil {
				return Outcome{Value: v, OK: true, Repaired: true}
			}
		}
	}

	return Outcome{Value: EmptyObject(), Err: eris.Wrap(err, "extract: decode")}
}

func decodeStrict(text string) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Errorf("extract: decoder panic: %v", r)
		}
	}()

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err = readValue(dec, 0)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, eris.New("extract: extra data after JSON value")
	}
	return v, nil
}

func readValue(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, eris.New("extract: unexpected end of input")
		}
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		if depth >= maxDepth {
			return Value{}, eris.Wrapf(ErrTooDeep, "extract: depth %d", depth+1)
		}
		switch t {
		case '{':
			return readObject(dec, depth+1)
		case '[':
			return readArray(dec, depth+1)
		default:
			return Value{}, eris.Errorf("extract: unexpected delimiter %q", rune(t))
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, eris.Errorf("extract: unexpected token %T", tok)
	}
}

func readObject(dec *json.Decoder, depth int) (Value, error) {
	obj := Object()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, eris.Errorf("extract: object key is %T, not string", tok)
		}
		val, err := readValue(dec, depth)
		if err != nil {
			return Value{}, err
		}
		obj.set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func readArray(dec *json.Decoder, depth int) (Value, error) {
	arr := Value{kind: KindArray}
	for dec.More() {
		val, err := readValue(dec, depth)
		if err != nil {
			return Value{}, err
		}
		arr.items = append(arr.items, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return arr, nil
}
