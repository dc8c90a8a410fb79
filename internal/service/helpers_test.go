package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/smartfarm/internal/config"
	"github.com/alexanderramin/smartfarm/internal/db"
	"github.com/alexanderramin/smartfarm/internal/knowledge"
	"github.com/alexanderramin/smartfarm/internal/repository"
	"github.com/alexanderramin/smartfarm/internal/responder"
	"github.com/alexanderramin/smartfarm/internal/testutil"
)

// fixedRand pins the fallback template.
type fixedRand int

func (f fixedRand) Intn(int) int { return int(f) }

var defaultPolicy = config.HistoryConfig{MaxMessages: 20, TrimTo: 10, ReminderEvery: 10}

type fixture struct {
	db       *sql.DB
	profiles *repository.SQLiteUserProfileRepo
	history  *repository.SQLiteChatHistoryRepo
	uow      db.UnitOfWork
	resp     *responder.Responder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:       database,
		profiles: repository.NewSQLiteUserProfileRepo(database),
		history:  repository.NewSQLiteChatHistoryRepo(database),
		uow:      testutil.NewTestUoW(database),
		resp:     responder.New(knowledge.MustDefault(), responder.WithRandom(fixedRand(0))),
	}
}

func (f *fixture) chat(policy config.HistoryConfig, observers ...UseCaseObserver) ChatService {
	return NewChatService(f.profiles, f.history, f.uow, f.resp, policy, observers...)
}

func (f *fixture) profileSvc(observers ...UseCaseObserver) ProfileService {
	return NewProfileService(f.profiles, f.uow, observers...)
}
