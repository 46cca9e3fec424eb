package seed

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/MKhiriev/warbler/internal/config"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/service"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newServices builds the real service layer over an in-memory sqlite
// database.
func newServices(t *testing.T) *service.Services {
	t.Helper()

	db, err := store.NewConnect(context.Background(), config.DB{
		DSN:    "file::memory:",
		Driver: config.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	cfg := config.StructuredConfig{App: config.App{
		TokenSignKey:     "seed-test-key",
		TokenIssuer:      config.DefaultTokenIssuer,
		TokenDuration:    config.DefaultTokenDuration,
		PasswordHashCost: bcrypt.MinCost,
		Version:          "test",
	}}

	services, err := service.NewServices(store.NewStorages(db, logger.Nop()), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	return services
}

func TestOptions_WithDefaults(t *testing.T) {
	opts, err := Options{}.withDefaults()
	require.NoError(t, err)
	assert.Equal(t, DefaultUsers, opts.Users)
	assert.Equal(t, DefaultMessagesPerUser, opts.MessagesPerUser)
	assert.Equal(t, DefaultFollowsPerUser, opts.FollowsPerUser)
	assert.Equal(t, DefaultPassword, opts.Password)

	_, err = Options{Users: -1}.withDefaults()
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestSeeder_Run(t *testing.T) {
	services := newServices(t)
	ctx := context.Background()

	seeder, err := NewSeeder(services, Options{
		Users:           4,
		MessagesPerUser: 2,
		FollowsPerUser:  2,
		RandomSeed:      42,
	}, logger.Nop())
	require.NoError(t, err)

	res, err := seeder.Run(ctx)
	require.NoError(t, err)

	require.Len(t, res.Users, 4)
	assert.Equal(t, 8, res.Messages)
	assert.LessOrEqual(t, res.Follows, 8)

	for _, u := range res.Users {
		assert.NotEmpty(t, u.Bio)

		// seeded accounts can log in with the shared password
		got, err := services.UserService.Authenticate(ctx, u.Username, DefaultPassword)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.ID)

		msgs, err := services.MessageService.ListForAuthor(ctx, u.ID, 0)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
		for _, m := range msgs {
			assert.LessOrEqual(t, utf8.RuneCountInString(m.Text), models.MaxMessageLength)
		}
	}

	var edges int
	for _, u := range res.Users {
		following, err := services.FollowService.Following(ctx, u.ID)
		require.NoError(t, err)
		for _, f := range following {
			assert.NotEqual(t, u.ID, f.ID)
		}
		edges += len(following)
	}
	assert.Equal(t, res.Follows, edges)
}

func TestSeeder_SingleUserHasNoFollows(t *testing.T) {
	seeder, err := NewSeeder(newServices(t), Options{Users: 1, MessagesPerUser: 1, RandomSeed: 7}, logger.Nop())
	require.NoError(t, err)

	res, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Users, 1)
	assert.Zero(t, res.Follows)
}
