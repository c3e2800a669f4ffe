package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/licores-deluxe/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "licores-idp-test"
)

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "Ana", "admin", testIssuer, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "", "cliente", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_EmisorIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "", "cliente", "otro-emisor", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "", "cliente", testIssuer, -5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "", "admin", testIssuer, 60)
	assert.Error(t, err)
}
