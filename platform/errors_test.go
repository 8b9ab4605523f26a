package platform

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorUnwrapsToKind(t *testing.T) {
	err := &Error{Op: "fetch message", Kind: ErrNotFound, Err: errors.New("404")}

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
}

func TestErrorText(t *testing.T) {
	withCause := &Error{Op: "fetch message", Kind: ErrNotFound, Err: errors.New("boom")}
	assert.Equal(t, "fetch message: boom", withCause.Error())

	bare := &Error{Op: "guild role", Kind: ErrNotFound}
	assert.Equal(t, "guild role: platform: not found", bare.Error())
}

func TestKindPredicates(t *testing.T) {
	cases := []struct {
		kind        error
		notFound    bool
		forbidden   bool
		rateLimited bool
		transient   bool
	}{
		{kind: ErrNotFound, notFound: true},
		{kind: ErrForbidden, forbidden: true},
		{kind: ErrRateLimited, rateLimited: true},
		{kind: ErrTransient, transient: true},
	}

	for _, c := range cases {
		t.Run(c.kind.Error(), func(t *testing.T) {
			err := &Error{Op: "op", Kind: c.kind}

			assert.Equal(t, c.notFound, IsNotFound(err))
			assert.Equal(t, c.forbidden, IsForbidden(err))
			assert.Equal(t, c.rateLimited, IsRateLimited(err))
			assert.Equal(t, c.transient, IsTransient(err))
		})
	}
}

func TestDefinitive(t *testing.T) {
	assert.True(t, Definitive(&Error{Op: "op", Kind: ErrNotFound}))
	assert.True(t, Definitive(&Error{Op: "op", Kind: ErrForbidden}))
	assert.False(t, Definitive(&Error{Op: "op", Kind: ErrRateLimited}))
	assert.False(t, Definitive(&Error{Op: "op", Kind: ErrTransient}))
	assert.False(t, Definitive(errors.New("no kind at all")))
	assert.False(t, Definitive(nil))
}

func TestDefinitiveSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", &Error{Op: "op", Kind: ErrNotFound})

	assert.True(t, Definitive(err))
}
