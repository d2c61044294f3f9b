package refined_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typekit/pkg/refined"
)

type userIDBrand struct{}

type UserID = refined.Value[string, userIDBrand]

var errNotUUID = errors.New("not a uuid")

func newUserIDConstructor() refined.Constructor[string, userIDBrand] {
	return refined.NewConstructor[string, userIDBrand](
		func(s string) bool { return uuid.Validate(s) == nil },
		func(s string) error { return fmt.Errorf("%w: %q", errNotUUID, s) },
	)
}

func TestNewConstructor(t *testing.T) {
	newUserID := newUserIDConstructor()

	t.Run("returns valid input unchanged", func(t *testing.T) {
		raw := uuid.NewString()
		var id UserID
		id, err := newUserID(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.Unwrap())
	})

	t.Run("invokes default handler on failure", func(t *testing.T) {
		id, err := newUserID("not-a-uuid")
		require.Error(t, err)
		assert.ErrorIs(t, err, errNotUUID)
		assert.Empty(t, id.Unwrap())
	})

	t.Run("override preempts default handler", func(t *testing.T) {
		errOverride := errors.New("override called")
		defaultCalled := false
		newID := refined.NewConstructor[string, userIDBrand](
			func(s string) bool { return false },
			func(s string) error { defaultCalled = true; return errNotUUID },
		)

		_, err := newID("anything", func(s string) error { return errOverride })
		assert.ErrorIs(t, err, errOverride)
		assert.False(t, defaultCalled, "default handler must not run when an override is supplied")
	})

	t.Run("handler receives the rejected candidate", func(t *testing.T) {
		var got string
		newID := refined.NewConstructor[string, userIDBrand](
			func(s string) bool { return false },
			func(s string) error { got = s; return errNotUUID },
		)

		_, err := newID("rejected-input")
		require.Error(t, err)
		assert.Equal(t, "rejected-input", got)
	})

	t.Run("nil default handler reports sentinel", func(t *testing.T) {
		newID := refined.NewConstructor[string, userIDBrand](
			func(s string) bool { return false },
			nil,
		)

		_, err := newID("anything")
		assert.ErrorIs(t, err, refined.ErrConstraintViolation)
	})

	t.Run("handler returning nil is not swallowed", func(t *testing.T) {
		newID := refined.NewConstructor[string, userIDBrand](
			func(s string) bool { return false },
			func(s string) error { return nil },
		)

		_, err := newID("anything")
		assert.ErrorIs(t, err, refined.ErrConstraintViolation)
	})

	t.Run("nil rule accepts every candidate", func(t *testing.T) {
		newID := refined.NewConstructor[string, userIDBrand](nil, func(s string) error { return errNotUUID })

		id, err := newID("anything goes")
		require.NoError(t, err)
		assert.Equal(t, "anything goes", id.Unwrap())
	})

	t.Run("works with structured values", func(t *testing.T) {
		type span struct{ lo, hi int }
		type spanBrand struct{}
		newSpan := refined.NewConstructor[span, spanBrand](
			func(s span) bool { return s.lo <= s.hi },
			func(s span) error { return fmt.Errorf("inverted span [%d, %d]", s.lo, s.hi) },
		)

		v, err := newSpan(span{lo: 1, hi: 5})
		require.NoError(t, err)
		assert.Equal(t, span{lo: 1, hi: 5}, v.Unwrap())

		_, err = newSpan(span{lo: 5, hi: 1})
		assert.Error(t, err)
	})
}

func TestMust(t *testing.T) {
	newUserID := newUserIDConstructor()

	t.Run("returns value on success", func(t *testing.T) {
		raw := uuid.NewString()
		id := refined.Must(newUserID(raw))
		assert.Equal(t, raw, id.Unwrap())
	})

	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			refined.Must(newUserID("not-a-uuid"))
		})
	})
}
