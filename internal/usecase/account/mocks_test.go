package account

import (
	"context"

	"gorm.io/gorm"

	"github.com/naai-app/naai-api/internal/audit"
	"github.com/naai-app/naai-api/internal/models"
)

// --- MOCK REPOSITORY ---

type mockAccountRepo struct {
	users     map[string]*models.User
	createErr error
	nextID    uint
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{users: map[string]*models.User{}, nextID: 1}
}

func (m *mockAccountRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountRepo) Create(_ context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	return nil
}

// --- MOCK AUDIT SINK ---

type sinkRecorder struct {
	events []audit.Event
}

func (s *sinkRecorder) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}
