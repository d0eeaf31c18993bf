package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	u := &User{Username: "alice"}

	require.Error(t, u.HashPassword("short"))

	require.NoError(t, u.HashPassword("longenough"))
	assert.NotEqual(t, "longenough", u.Password)
	assert.NoError(t, u.ValidatePassword("longenough"))
	assert.Error(t, u.ValidatePassword("wrongpassword"))
}

func TestUserIsValid(t *testing.T) {
	assert.Error(t, (&User{Username: "ab"}).IsValid())
	assert.NoError(t, (&User{Username: "abc"}).IsValid())
}
