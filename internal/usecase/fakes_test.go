package usecase

import (
	"context"
	"encoding/json"
	"time"

	"workmatch/internal/domain/cv"
	"workmatch/internal/domain/user"
	"workmatch/internal/repository"

	"github.com/google/uuid"
)

type fakeProfileRepo struct {
	skills map[uuid.UUID][]string
	err    error

	replaceCalls int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{skills: make(map[uuid.UUID][]string)}
}

func (f *fakeProfileRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.skills[userID]...), nil
}

func (f *fakeProfileRepo) ReplaceForUser(_ context.Context, userID uuid.UUID, skillIDs []string) error {
	if f.err != nil {
		return f.err
	}
	f.replaceCalls++
	f.skills[userID] = append([]string(nil), skillIDs...)
	return nil
}

type fakeDocumentRepo struct {
	docs map[uuid.UUID]cv.Document
	err  error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uuid.UUID]cv.Document)}
}

func (f *fakeDocumentRepo) GetForUser(_ context.Context, userID uuid.UUID) (cv.Document, error) {
	if f.err != nil {
		return cv.Document{}, f.err
	}
	doc, ok := f.docs[userID]
	if !ok {
		return cv.Document{}, repository.ErrDocumentNotFound
	}
	return doc, nil
}

func (f *fakeDocumentRepo) SaveForUser(_ context.Context, userID uuid.UUID, doc cv.Document) error {
	if f.err != nil {
		return f.err
	}
	f.docs[userID] = doc
	return nil
}

type fakeUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u user.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

// fakeCache counts hits and invalidations; Get always misses unless a
// value was Set first.
type fakeCache struct {
	values      map[string][]byte
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = b
	return nil
}

func (f *fakeCache) InvalidateUser(_ context.Context, userID uuid.UUID) error {
	f.invalidated++
	delete(f.values, cacheProfileKey(userID))
	delete(f.values, cacheDocumentKey(userID))
	delete(f.values, cacheScoreKey(userID))
	return nil
}

type captureNotifier struct {
	userID  uuid.UUID
	reports []ScoreReport
}

func (n *captureNotifier) ScoreUpdated(userID uuid.UUID, report ScoreReport) {
	n.userID = userID
	n.reports = append(n.reports, report)
}
