package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorToken_RoundTrip(t *testing.T) {
	signed, err := GenerateActorToken("manager-1", "secret", time.Hour, "easyreserv")
	require.NoError(t, err)

	actor, err := NewActorTokenParser("secret", "easyreserv").Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "manager-1", actor)

	actor, err = NewActorTokenParser("secret", "").Parse(signed)
	require.NoError(t, err, "issuer is not checked when none is configured")
	assert.Equal(t, "manager-1", actor)
}

func TestActorTokenParser_Rejects(t *testing.T) {
	parser := NewActorTokenParser("secret", "easyreserv")

	expired, err := GenerateActorToken("manager-1", "secret", -time.Minute, "easyreserv")
	require.NoError(t, err)
	_, err = parser.Parse(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSubject, err := GenerateActorToken("", "secret", time.Hour, "easyreserv")
	require.NoError(t, err)
	_, err = parser.Parse(noSubject)
	assert.ErrorIs(t, err, ErrMissingActor)

	otherIssuer, err := GenerateActorToken("manager-1", "secret", time.Hour, "elsewhere")
	require.NoError(t, err)
	_, err = parser.Parse(otherIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	forged, err := GenerateActorToken("manager-1", "not-the-secret", time.Hour, "easyreserv")
	require.NoError(t, err)
	_, err = parser.Parse(forged)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = parser.Parse("not-a-jwt")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}
