package backend_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk-labs/orderdesk/internal/backend"
	"github.com/orderdesk-labs/orderdesk/internal/config"
	"github.com/orderdesk-labs/orderdesk/internal/rest"
	"github.com/orderdesk-labs/orderdesk/internal/testutil"
)

func TestNewLocalBackend(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		DataSourceType: config.SourceLocal,
		Database:       ":memory:",
	}

	st, closer, err := backend.New(ctx, cfg, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer closer()

	// Opening the local backend migrates and seeds.
	restaurants, err := st.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, restaurants, 3)
}

func TestNewRemoteBackend(t *testing.T) {
	cfg := &config.Config{
		DataSourceType: config.SourceRemote,
		APIBaseURL:     "http://localhost:5656/api",
	}

	st, closer, err := backend.New(context.Background(), cfg, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer closer()

	_, ok := st.(*rest.Client)
	assert.True(t, ok, "ALS selects the remote client")
}
