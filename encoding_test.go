package liketype_test

import (
	"encoding/json"
	"testing"

	"github.com/kleinwareio/liketype"
	"github.com/kleinwareio/liketype/codec"
	apperrors "github.com/kleinwareio/liketype/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customer struct {
	ID   stringLike `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
}

func TestLikeMarshalsBareValue(t *testing.T) {
	data, err := json.Marshal(customer{ID: newStringLike("cust-001"), Name: "Ada"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"cust-001","name":"Ada"}`, string(data))

	data, err = json.Marshal(customer{Name: "nobody"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":null,"name":"nobody"}`, string(data))

	yamlData, err := codec.NewYAMLCodec().Encode(customer{ID: newStringLike("cust-001"), Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "id: cust-001\nname: Ada\n", string(yamlData))
}

func TestLikeAsMapKey(t *testing.T) {
	counts := map[stringLike]int{newStringLike("a"): 1}
	counts[newStringLike("a")]++

	assert.Len(t, counts, 1)
	data, err := json.Marshal(counts)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(data))
}

func TestKindDecode(t *testing.T) {
	codecs := []codec.Codec{codec.NewJSONCodec(), codec.NewYAMLCodec(), codec.NewMsgpackCodec()}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			original := newStringLike("cust-001")
			data, err := c.Encode(original)
			require.NoError(t, err)

			restored, err := stringLikeKind.Decode(c, data)
			require.NoError(t, err)
			assert.True(t, original.Equal(stringLike{restored}))
		})

		t.Run(c.Name()+" null", func(t *testing.T) {
			data, err := c.Encode(stringLike{})
			require.NoError(t, err)

			_, err = stringLikeKind.Decode(c, data)
			assert.ErrorIs(t, err, liketype.ErrMissingValue)

			nullable := liketype.Define[string]("Nullable").AllowNull()
			restored, err := nullable.Decode(c, data)
			require.NoError(t, err)
			assert.True(t, restored.IsNull())
		})
	}
}

func TestKindDecodeRejectsMalformedInput(t *testing.T) {
	_, err := stringLikeKind.Decode(codec.NewJSONCodec(), []byte(`{"not":"a string"}`))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDecode, apperrors.CodeOf(err))
}

func TestSeqEncoding(t *testing.T) {
	kind := liketype.DefineSeq[int]("Numbers")
	codecs := []codec.Codec{codec.NewJSONCodec(), codec.NewYAMLCodec(), codec.NewMsgpackCodec()}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			original := kind.MustOf(1, 2, 3)
			data, err := c.Encode(original)
			require.NoError(t, err)

			restored, err := kind.Decode(c, data)
			require.NoError(t, err)
			assert.True(t, original.Equal(restored))
		})
	}

	data, err := json.Marshal(kind.MustOf(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(data))

	_, err = kind.Decode(codec.NewJSONCodec(), []byte(`null`))
	assert.ErrorIs(t, err, liketype.ErrMissingValue)

	empty, err := kind.Decode(codec.NewJSONCodec(), []byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count())
}

func TestSeqOfWrappersEncodesElementValues(t *testing.T) {
	data, err := json.Marshal(makeFooSeq(t, foo1, foo{}, foo2))
	require.NoError(t, err)
	assert.Equal(t, `[11,null,22]`, string(data))
}
