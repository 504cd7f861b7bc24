package cmd

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelydev/apiCitas/config"
	"github.com/kelydev/apiCitas/session"
)

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"citas", "usuarios", "migrate"})
}

func TestMigrateCmd_RequiresDatabaseSettings(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")

	rootCmd.SetArgs([]string{"migrate"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
}

func TestNewSessionStore_Cookie(t *testing.T) {
	cfg := config.Config{SessionSecret: "secreto", SessionTTL: time.Hour}

	store, closeFn, err := newSessionStore(context.Background(), cfg, zerolog.Nop())

	require.NoError(t, err)
	assert.IsType(t, &session.CookieStore{}, store)
	assert.NoError(t, closeFn())
}

func TestNewSessionStore_CookieNeedsSecret(t *testing.T) {
	_, _, err := newSessionStore(context.Background(), config.Config{}, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestNewSessionStore_InvalidRedisURL(t *testing.T) {
	cfg := config.Config{RedisURL: "http://not-redis"}

	_, _, err := newSessionStore(context.Background(), cfg, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid REDIS_URL")
}

func TestServe_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, zerolog.Nop(), "127.0.0.1:0", http.NotFoundHandler())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
}

func TestServe_ListenError(t *testing.T) {
	err := serve(context.Background(), zerolog.Nop(), "127.0.0.1:-1", http.NotFoundHandler())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}
