package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTripKeepsDocument(t *testing.T) {
	cases := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-12.50`,
		`1e400`,
		`12345678901234567890123`,
		`"text"`,
		`""`,
		`"café ☕"`,
		`[]`,
		`{}`,
		`[1,"two",null,[false],{"k":{}}]`,
		`{"zeta":1,"alpha":2,"mid":{"b":true,"a":false}}`,
		`{"anything":1,"nested":{"a":true}}`,
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			v, err := Parse([]byte(in))
			require.NoError(t, err)

			out, err := json.Marshal(v)
			require.NoError(t, err)

			assert.Equal(t, decodeAny(t, []byte(in)), decodeAny(t, out))
		})
	}
}

func decodeAny(t *testing.T, data []byte) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestParse_PreservesMemberOrderAndLiterals(t *testing.T) {
	v, err := Parse([]byte(` { "b" : 1.0 , "a" : [ 1e3 , -0 ] } `))
	require.NoError(t, err)

	assert.Equal(t, `{"b":1.0,"a":[1e3,-0]}`, v.String())
	assert.Equal(t, Object, v.Kind())
	assert.Equal(t, 2, v.Len())
}

func TestParse_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	v, err := Parse([]byte(`{"a":1,"b":2,"a":3}`))
	require.NoError(t, err)

	assert.Equal(t, `{"a":3,"b":2}`, v.String())
	assert.Equal(t, 2, v.Len())
}

func TestParse_ManyKeysStaysLinear(t *testing.T) {
	const keys = 100_000
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < keys; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `"%d":0`, i)
	}
	buf.WriteString(`,"0":1}`)

	start := time.Now()
	v, err := Parse(buf.Bytes())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, keys, v.Len())
	assert.True(t, strings.HasPrefix(v.String(), `{"0":1,"1":0,`))
	assert.Less(t, elapsed, 3*time.Second)
}

func TestParse_Depth(t *testing.T) {
	nested := func(depth int) []byte {
		return []byte(strings.Repeat("[", depth) + strings.Repeat("]", depth))
	}

	v, err := Parse(nested(MaxDepth))
	require.NoError(t, err)
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Len(t, out, 2*MaxDepth)

	_, err = Parse(nested(MaxDepth + 1))
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Parse([]byte(strings.Repeat(`{"a":`, MaxDepth+1)))
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte("   \n"))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte(`{"a":1`))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)

	_, err = Parse([]byte(`[1,2`))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "got %v", err)

	var extra *ExtraDataError
	_, err = Parse([]byte(`{} 1`))
	require.ErrorAs(t, err, &extra)
	assert.Equal(t, int64(2), extra.Offset)

	for _, in := range []string{`{"a":1,}`, `[1 2]`, `{"a" 1}`, `nope`, `{} ]`, `{1:2}`} {
		_, err := Parse([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestValue_Constructors(t *testing.T) {
	v := ObjectValue(
		Member{Key: "name", Value: StringValue("Ann")},
		Member{Key: "tags", Value: ArrayValue(BoolValue(true), NullValue())},
		Member{Key: "name", Value: StringValue("Bea")},
		Member{Key: "empty", Value: ArrayValue()},
	)

	assert.Equal(t, `{"name":"Bea","tags":[true,null],"empty":[]}`, v.String())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 0, StringValue("x").Len())
	assert.Equal(t, Null, NullValue().Kind())
}

func TestValue_UnmarshalJSONInsideStruct(t *testing.T) {
	var envelope struct {
		Message string `json:"message"`
		User    Value  `json:"user"`
	}
	err := json.Unmarshal([]byte(`{"message":"m","user":{"b":1,"a":2}}`), &envelope)
	require.NoError(t, err)

	assert.Equal(t, "m", envelope.Message)
	assert.Equal(t, `{"b":1,"a":2}`, envelope.User.String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
