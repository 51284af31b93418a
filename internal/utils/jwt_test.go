package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{UserID: 123, Username: "alice"}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testUser, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, "alice", token.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 2*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidJWTParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", testUser, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, testUser.UserID, userID)
	assert.Equal(t, testUser.Username, parsed.Username)
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, err := GenerateJWTToken("test-issuer", testUser, time.Hour, "key")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("test-issuer", testUser, -time.Second, "key")
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iss": "test-issuer", "user_id": 1})
	noExpString, err := noExp.SignedString([]byte("key"))
	require.NoError(t, err)

	noUserID := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "test-issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noUserIDString, err := noUserID.SignedString([]byte("key"))
	require.NoError(t, err)

	subjectOnly := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "test-issuer",
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	subjectOnlyString, err := subjectOnly.SignedString([]byte("key"))
	require.NoError(t, err)

	negativeUserID := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":     "test-issuer",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"user_id": -3,
	})
	negativeUserIDString, err := negativeUserID.SignedString([]byte("key"))
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"iss":     "test-issuer",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"user_id": 1,
	})
	hs512String, err := hs512.SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		key     string
		issuer  string
		wantErr error
	}{
		{name: "wrong key", token: valid.SignedString, key: "wrong", issuer: "test-issuer", wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "expired", token: expired.SignedString, key: "key", issuer: "test-issuer", wantErr: jwt.ErrTokenExpired},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "fake", wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "no exp claim", token: noExpString, key: "key", issuer: "test-issuer", wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "no user_id claim", token: noUserIDString, key: "key", issuer: "test-issuer", wantErr: ErrMissingUserIDClaim},
		{name: "sub without user_id", token: subjectOnlyString, key: "key", issuer: "test-issuer", wantErr: models.ErrNoUserID},
		{name: "negative user_id", token: negativeUserIDString, key: "key", issuer: "test-issuer", wantErr: ErrMissingUserIDClaim},
		{name: "other algorithm", token: hs512String, key: "key", issuer: "test-issuer", wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "garbage", token: "not-a-token", key: "key", issuer: "test-issuer", wantErr: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "no token", header: "Bearer", wantErr: ErrMalformedBearerHeader},
		{name: "empty token", header: "Bearer   ", wantErr: ErrMalformedBearerHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthScheme},
		{name: "extra parts", header: "Bearer a b", wantErr: ErrMalformedBearerHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
