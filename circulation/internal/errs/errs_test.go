package errs_test

import (
	"testing"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	err := errors.Wrap(errs.NotFound(errs.EntityBook), "ReturnBook")

	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NotErrorIs(t, err, errs.ErrBookUnavailable)
	require.Equal(t, errs.KindNotFound, errs.KindOf(err))

	e, ok := errs.As(err)
	require.True(t, ok)
	require.Equal(t, errs.EntityBook, e.Entity)
	require.Equal(t, "book not found", e.Error())
}

func TestValidation(t *testing.T) {
	err := errs.Validation("amount")
	require.ErrorIs(t, err, errs.ErrValidation)
	require.Equal(t, []string{"amount"}, err.Fields)
	require.Equal(t, "validation failed: amount", err.Error())
}

func TestKindOf_Unclassified(t *testing.T) {
	require.Equal(t, errs.KindInternal, errs.KindOf(errors.New("conn reset")))
}
