package apperrors

import (
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	ErrBaseErr := New("base error")
	assert.Equal(t, "base error", ErrBaseErr.Error())
	assert.Equal(t, "msg", ErrBaseErr.New("msg").Error())
	assert.ErrorIs(t, ErrBaseErr, ErrBaseErr)

	ErrFirstLevel := ErrBaseErr.New("first level")
	assert.Equal(t, "first level", ErrFirstLevel.Error())
	assert.ErrorIs(t, ErrFirstLevel, ErrBaseErr)

	ErrAnotherErr := New("another error")
	ErrWrappedErr := ErrFirstLevel.Err(ErrAnotherErr)
	assert.Equal(t, "first level", ErrWrappedErr.Error())
	assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
	assert.ErrorIs(t, ErrWrappedErr, ErrAnotherErr)

	err := errors.New("error")
	ErrWrappedErr = ErrFirstLevel.Err(err)
	assert.Equal(t, "first level", ErrWrappedErr.Error())
	assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
	assert.ErrorIs(t, ErrWrappedErr, err)

	ErrWrappedErr = ErrFirstLevel.MsgErr("msg", err)
	assert.Equal(t, "msg", ErrWrappedErr.Error())
	assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
	assert.ErrorIs(t, ErrWrappedErr, err)

	// externally wrapped errors still match through the chain
	wrapped := pkgerrors.Wrap(ErrFirstLevel, "external context")
	assert.ErrorIs(t, wrapped, ErrBaseErr)
}

func TestErrorStatusCode(t *testing.T) {
	ErrBase := New("base").SetStatusCode(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, ErrBase.StatusCode())

	// derived errors inherit the status code until overridden
	ErrDerived := ErrBase.New("derived")
	assert.Equal(t, http.StatusBadRequest, ErrDerived.StatusCode())
	ErrDerived = ErrDerived.SetStatusCode(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, ErrDerived.StatusCode())
	assert.Equal(t, http.StatusBadRequest, ErrBase.StatusCode())
}

func TestErrorAll(t *testing.T) {
	ErrBase := New("base").SetExpandError(true)
	wrapped := ErrBase.New("outer").Err(errors.New("inner one"), errors.New("inner two"))
	assert.Equal(t, "outer: inner one; inner two", wrapped.ErrorAll())

	plain := New("plain").New("outer")
	assert.Equal(t, "outer", plain.ErrorAll())
}
