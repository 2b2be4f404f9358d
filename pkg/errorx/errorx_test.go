package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	Register(defaultCoder{code: 990001, http: http.StatusBadRequest, msg: "Bad test input"})
	Register(defaultCoder{code: 990002, http: http.StatusNotFound, msg: "Test thing not found"})
}

func TestWithCodeCarriesCode(t *testing.T) {
	err := WithCode(990001, "field %q is empty", "name")

	assert.True(t, IsCode(err, 990001))
	assert.False(t, IsCode(err, 990002))
	assert.Contains(t, err.Error(), `field "name" is empty`)
}

func TestWrapCPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapC(cause, 990002, "save record")

	assert.True(t, IsCode(err, 990002))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save record")
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrapCNilReturnsNil(t *testing.T) {
	assert.NoError(t, WrapC(nil, 990001, "whatever"))
}

func TestParseCoderRegistered(t *testing.T) {
	coder := ParseCoder(WithCode(990001, "boom"))
	require.NotNil(t, coder)
	assert.Equal(t, 990001, coder.Code())
	assert.Equal(t, http.StatusBadRequest, coder.HTTPStatus())
	assert.Equal(t, "Bad test input", coder.String())
}

func TestParseCoderUnknown(t *testing.T) {
	coder := ParseCoder(errors.New("some internal detail"))
	require.NotNil(t, coder)
	assert.Equal(t, 1, coder.Code())
	assert.Equal(t, http.StatusInternalServerError, coder.HTTPStatus())
	assert.NotContains(t, coder.String(), "internal detail")
}

func TestParseCoderThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", WithCode(990002, "inner"))
	assert.Equal(t, 990002, ParseCoder(err).Code())
	assert.True(t, IsCode(err, 990002))
}

func TestParseCoderNil(t *testing.T) {
	assert.Nil(t, ParseCoder(nil))
}
