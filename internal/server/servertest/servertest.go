// Package servertest runs the reference API in-process for tests.
package servertest

import (
	"fmt"
	"testing"

	"tokoadmin/internal/gateway"
	"tokoadmin/internal/logging"
	"tokoadmin/internal/models"
	"tokoadmin/internal/server"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// BaseURL is the address clients built by a Fixture point at. No socket is
// opened; requests are served by the fiber app directly.
const BaseURL = "http://storefront.test/api/v1"

const jwtSecret = "test_jwt_secret"

// Fixture is a reference API backed by a private in-memory database, with one
// registered owner.
type Fixture struct {
	Server *server.Server
	Owner  *models.User
	Token  string
}

// New starts a fixture. Each call gets its own database.
func New(t testing.TB) *Fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := server.OpenDatabase("sqlite", dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	srv := server.New(db, server.Options{JWTSecret: jwtSecret, Logger: logging.Discard()})
	f := &Fixture{Server: srv}
	f.Owner, f.Token = f.Register(t, "owner")
	return f
}

// Register creates another user and returns a token for it.
func (f *Fixture) Register(t testing.TB, username string) (*models.User, string) {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	}
	require.NoError(t, f.Server.Auth.RegisterUser(user))
	token, err := f.Server.Auth.IssueToken(user)
	require.NoError(t, err)
	return user, token
}

// Client returns a gateway client authorized with creds.
func (f *Fixture) Client(t testing.TB, creds gateway.Credentials) *gateway.Client {
	t.Helper()
	client, err := gateway.NewClient(gateway.Config{
		BaseURL:   BaseURL,
		Transport: server.Transport(f.Server.App),
	}, creds, logging.Discard())
	require.NoError(t, err)
	return client
}
