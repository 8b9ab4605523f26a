package platform

import (
	"errors"
	"net/http"
	"testing"

	"github.com/disgoorg/disgo/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restError(status int) error {
	return rest.Error{Response: &http.Response{StatusCode: status}}
}

func TestClassifyStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		status int
		kind   error
	}{
		{name: "not found", status: http.StatusNotFound, kind: ErrNotFound},
		{name: "forbidden", status: http.StatusForbidden, kind: ErrForbidden},
		{name: "rate limited", status: http.StatusTooManyRequests, kind: ErrRateLimited},
		{name: "server error", status: http.StatusInternalServerError, kind: ErrTransient},
		{name: "bad gateway", status: http.StatusBadGateway, kind: ErrTransient},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := classify("op", restError(c.status))

			assert.True(t, errors.Is(err, c.kind))
		})
	}
}

func TestClassifyPlainErrorIsTransient(t *testing.T) {
	err := classify("op", errors.New("connection reset"))

	assert.True(t, IsTransient(err))
	assert.False(t, Definitive(err))
}

func TestClassifyRestErrorWithoutResponse(t *testing.T) {
	err := classify("op", rest.Error{})

	assert.True(t, IsTransient(err))
}

func TestClassifyKeepsOpAndCause(t *testing.T) {
	cause := restError(http.StatusNotFound)

	err := classify("fetch message", cause)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "fetch message", perr.Op)
	assert.Equal(t, cause, perr.Err)
}

func TestEmojiForms(t *testing.T) {
	em := Emoji{ID: "123", Name: "hammer"}

	assert.Equal(t, "hammer:123", em.Reaction())
	assert.Equal(t, "<:hammer:123>", em.Mention())
}

func TestRoleMention(t *testing.T) {
	r := Role{ID: "456", Name: "crew"}

	assert.Equal(t, "<@&456>", r.Mention())
}

func TestPostEmbed(t *testing.T) {
	embed := postEmbed(PostContent{
		Title:       "Reaction Roles",
		Description: "body",
		Footer:      "react away",
		Color:       0x5865f2,
	})

	assert.Equal(t, "Reaction Roles", embed.Title)
	assert.Equal(t, "body", embed.Description)
	assert.Equal(t, 0x5865f2, embed.Color)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "react away", embed.Footer.Text)
	assert.NotNil(t, embed.Timestamp)
}

func TestPostEmbedWithoutFooter(t *testing.T) {
	embed := postEmbed(PostContent{Title: "t"})

	assert.Nil(t, embed.Footer)
}
