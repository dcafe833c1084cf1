package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxDepth is the deepest array/object nesting Parse accepts. encoding/json
// refuses to re-encode anything deeper.
const MaxDepth = 10000

var (
	// ErrEmpty is returned by Parse when the input holds no JSON value at all.
	ErrEmpty = errors.New("jsonvalue: empty input")
	// ErrTooDeep is returned by Parse when nesting exceeds MaxDepth.
	ErrTooDeep = fmt.Errorf("jsonvalue: nesting exceeds depth %d", MaxDepth)
)

// ExtraDataError reports non-whitespace input after the first JSON value.
type ExtraDataError struct {
	Offset int64
}

func (e *ExtraDataError) Error() string {
	return fmt.Sprintf("extra data after JSON value at offset %d", e.Offset)
}

// Parse decodes exactly one JSON value from data.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, ErrEmpty
		}
		return Value{}, err
	}

	v, err := parseToken(dec, tok, 0)
	if err != nil {
		return Value{}, err
	}

	offset := dec.InputOffset()
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, err
		}
		return Value{}, &ExtraDataError{Offset: offset}
	}

	return v, nil
}

func parseValue(dec *json.Decoder, depth int) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, unexpectedEOF(err)
	}
	return parseToken(dec, tok, depth)
}

// parseToken builds the value starting at tok; depth counts the containers
// already open around it.
func parseToken(dec *json.Decoder, tok json.Token, depth int) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		return numberValue(string(t)), nil
	case string:
		return StringValue(t), nil
	case json.Delim:
		if (t == '[' || t == '{') && depth >= MaxDepth {
			return Value{}, ErrTooDeep
		}
		switch t {
		case '[':
			return parseArray(dec, depth+1)
		case '{':
			return parseObject(dec, depth+1)
		}
	}
	return Value{}, fmt.Errorf("jsonvalue: unexpected token %v", tok)
}

func parseArray(dec *json.Decoder, depth int) (Value, error) {
	var items []Value
	for dec.More() {
		item, err := parseValue(dec, depth)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if err := closing(dec, ']'); err != nil {
		return Value{}, err
	}
	return ArrayValue(items...), nil
}

func parseObject(dec *json.Decoder, depth int) (Value, error) {
	var members []Member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsonvalue: object key must be a string, got %v", tok)
		}
		val, err := parseValue(dec, depth)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: val})
	}
	if err := closing(dec, '}'); err != nil {
		return Value{}, err
	}
	return ObjectValue(members...), nil
}

func closing(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return unexpectedEOF(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("jsonvalue: expected %q, got %v", rune(want), tok)
	}
	return nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
