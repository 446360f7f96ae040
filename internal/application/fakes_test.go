package application

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
	repo "github.com/pulseboard/pulseboard-api/internal/domain/repository"
)

// In-memory repository fakes mirroring the Postgres implementations' contracts.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*entity.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = "user-" + strconv.Itoa(f.nextID)
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrUserNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Following(_ context.Context, userID string) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, repo.ErrUserNotFound
	}
	out := make([]int64, len(u.Following))
	copy(out, u.Following)
	return out, nil
}

type fakeClubRepo struct {
	mu      sync.Mutex
	users   *fakeUserRepo
	clubs   map[int64]*entity.Club        // keyed by external club id
	follows map[string]map[int64]struct{} // user id -> club id set
}

func newFakeClubRepo(users *fakeUserRepo) *fakeClubRepo {
	return &fakeClubRepo{
		users:   users,
		clubs:   map[int64]*entity.Club{},
		follows: map[string]map[int64]struct{}{},
	}
}

func (f *fakeClubRepo) Create(_ context.Context, c *entity.Club) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.clubs[c.ClubID]; ok {
		return repo.ErrDuplicateClub
	}
	for _, existing := range f.clubs {
		if existing.Name == c.Name {
			return repo.ErrDuplicateName
		}
	}
	cp := *c
	f.clubs[c.ClubID] = &cp
	return nil
}

func (f *fakeClubRepo) GetByClubID(_ context.Context, clubID int64) (*entity.Club, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.clubs[clubID]
	if !ok {
		return nil, repo.ErrClubNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClubRepo) List(_ context.Context) ([]*entity.Club, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Club, 0, len(f.clubs))
	for _, c := range f.clubs {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClubID < out[j].ClubID })
	return out, nil
}

// ToggleFollow mirrors the transactional contract: the counter moves only when
// the membership set actually changed, and never drops below zero.
func (f *fakeClubRepo) ToggleFollow(_ context.Context, userID string, clubID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users.mu.Lock()
	_, userExists := f.users.users[userID]
	f.users.mu.Unlock()
	if !userExists {
		return nil, repo.ErrUserNotFound
	}
	club, ok := f.clubs[clubID]
	if !ok {
		return nil, repo.ErrClubNotFound
	}

	set := f.follows[userID]
	if set == nil {
		set = map[int64]struct{}{}
		f.follows[userID] = set
	}
	if _, following := set[clubID]; following {
		delete(set, clubID)
		if club.FollowerCount > 0 {
			club.FollowerCount--
		}
	} else {
		set[clubID] = struct{}{}
		club.FollowerCount++
	}

	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	nextID int64
	events []*entity.Event
	clubs  map[int64]*entity.Club // for feed enrichment
}

func newFakeEventRepo(clubs map[int64]*entity.Club) *fakeEventRepo {
	if clubs == nil {
		clubs = map[int64]*entity.Club{}
	}
	return &fakeEventRepo{clubs: clubs}
}

func (f *fakeEventRepo) Create(_ context.Context, e *entity.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e.ID = f.nextID
	cp := *e
	f.events = append(f.events, &cp)
	return nil
}

func (f *fakeEventRepo) Feed(ctx context.Context) ([]*entity.EnrichedEvent, error) {
	return f.feed(ctx, 0)
}

func (f *fakeEventRepo) FeedByClub(ctx context.Context, clubID int64) ([]*entity.EnrichedEvent, error) {
	return f.feed(ctx, clubID)
}

func (f *fakeEventRepo) feed(_ context.Context, clubID int64) ([]*entity.EnrichedEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.EnrichedEvent, 0, len(f.events))
	for _, e := range f.events {
		if !e.Badge.Valid() {
			continue
		}
		if clubID != 0 && e.ClubID != clubID {
			continue
		}
		ee := &entity.EnrichedEvent{Event: *e}
		if c, ok := f.clubs[e.ClubID]; ok {
			ee.ClubName = c.Name
			ee.Category = c.Category
		}
		out = append(out, ee)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
