package service

import (
	"context"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/mock"
	"github.com/MKhiriev/warbler/internal/store"
	"go.uber.org/mock/gomock"
)

// expectTx makes db run the transactional callback against itself.
func expectTx(db *mock.MockExecutor) *gomock.Call {
	return db.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, store.Querier) error) error {
			return fn(ctx, db)
		},
	)
}

type testStorages struct {
	db       *mock.MockExecutor
	users    *mock.MockUserRepository
	follows  *mock.MockFollowRepository
	messages *mock.MockMessageRepository
}

func newTestStorages(ctrl *gomock.Controller) (*store.Storages, testStorages) {
	m := testStorages{
		db:       mock.NewMockExecutor(ctrl),
		users:    mock.NewMockUserRepository(ctrl),
		follows:  mock.NewMockFollowRepository(ctrl),
		messages: mock.NewMockMessageRepository(ctrl),
	}

	return &store.Storages{
		DB:                m.db,
		UserRepository:    m.users,
		FollowRepository:  m.follows,
		MessageRepository: m.messages,
	}, m
}

func testCtx() context.Context {
	return logger.Nop().WithContext(context.Background())
}
