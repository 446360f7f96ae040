package application

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
)

func newClubFixture(t *testing.T) (*ClubService, *fakeClubRepo, *entity.User) {
	t.Helper()
	users := newFakeUserRepo()
	clubs := newFakeClubRepo(users)
	svc := NewClubService(clubs, users, nil, nil, nil, "")

	u := &entity.User{Email: "demo@campus.edu", Name: "Demo", Password: "x"}
	require.NoError(t, users.Create(context.Background(), u))
	return svc, clubs, u
}

func TestClubCreate(t *testing.T) {
	svc, _, _ := newClubFixture(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateClubInput{
		ClubID:   101,
		Name:     "  Robotics Club  ",
		Category: entity.CategoryTechnical,
	})
	require.NoError(t, err)
	assert.Equal(t, "Robotics Club", c.Name)
	assert.Equal(t, int64(101), c.ClubID)
	assert.Zero(t, c.FollowerCount)
}

func TestClubCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   CreateClubInput
	}{
		{"zero club id", CreateClubInput{Name: "X", Category: entity.CategoryOther}},
		{"blank name", CreateClubInput{ClubID: 1, Name: "  ", Category: entity.CategoryOther}},
		{"bad category", CreateClubInput{ClubID: 1, Name: "X", Category: "Misc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newClubFixture(t)
			_, err := svc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrClubInvalid)
		})
	}
}

func TestClubCreateConflicts(t *testing.T) {
	svc, _, _ := newClubFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateClubInput{ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateClubInput{ClubID: 101, Name: "Other Name", Category: entity.CategoryTechnical})
	assert.ErrorIs(t, err, ErrClubIDTaken)

	_, err = svc.Create(ctx, CreateClubInput{ClubID: 102, Name: "Robotics Club", Category: entity.CategoryTechnical})
	assert.ErrorIs(t, err, ErrClubNameTaken)
}

func TestClubGetNotFound(t *testing.T) {
	svc, _, _ := newClubFixture(t)
	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestClubListWithoutCache(t *testing.T) {
	svc, _, _ := newClubFixture(t)
	ctx := context.Background()

	for _, in := range []CreateClubInput{
		{ClubID: 102, Name: "Drama Society", Category: entity.CategoryCultural},
		{ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	clubs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, int64(101), clubs[0].ClubID)
	assert.Equal(t, int64(102), clubs[1].ClubID)
}

func TestToggleFollowRoundTrip(t *testing.T) {
	svc, clubs, u := newClubFixture(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, CreateClubInput{ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical})
	require.NoError(t, err)

	following, err := svc.ToggleFollow(ctx, u.ID, 101)
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, following)

	c, err := clubs.GetByClubID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.FollowerCount)

	following, err = svc.ToggleFollow(ctx, u.ID, 101)
	require.NoError(t, err)
	assert.Empty(t, following)

	c, err = clubs.GetByClubID(ctx, 101)
	require.NoError(t, err)
	assert.Zero(t, c.FollowerCount)
}

func TestToggleFollowParityAfterManyToggles(t *testing.T) {
	svc, clubs, u := newClubFixture(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, CreateClubInput{ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical})
	require.NoError(t, err)

	var following []int64
	for i := 0; i < 10; i++ {
		following, err = svc.ToggleFollow(ctx, u.ID, 101)
		require.NoError(t, err)
	}

	// even number of toggles lands back at the starting state
	assert.Empty(t, following)
	c, err := clubs.GetByClubID(ctx, 101)
	require.NoError(t, err)
	assert.Zero(t, c.FollowerCount)
}

func TestToggleFollowMultipleClubs(t *testing.T) {
	svc, _, u := newClubFixture(t)
	ctx := context.Background()
	for _, in := range []CreateClubInput{
		{ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical},
		{ClubID: 102, Name: "Drama Society", Category: entity.CategoryCultural},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	_, err := svc.ToggleFollow(ctx, u.ID, 101)
	require.NoError(t, err)
	following, err := svc.ToggleFollow(ctx, u.ID, 102)
	require.NoError(t, err)
	assert.Equal(t, []int64{101, 102}, following)

	following, err = svc.ToggleFollow(ctx, u.ID, 101)
	require.NoError(t, err)
	assert.Equal(t, []int64{102}, following)
}

func TestToggleFollowConcurrentNoDrift(t *testing.T) {
	users := newFakeUserRepo()
	clubs := newFakeClubRepo(users)
	svc := NewClubService(clubs, users, nil, nil, nil, "")
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateClubInput{ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical})
	require.NoError(t, err)

	const numUsers = 8
	const togglesEach = 7 // odd, so every user ends up following
	ids := make([]string, numUsers)
	for i := range ids {
		u := &entity.User{Email: fmt.Sprintf("u%d@campus.edu", i), Name: "U", Password: "x"}
		require.NoError(t, users.Create(ctx, u))
		ids[i] = u.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(uid string) {
			defer wg.Done()
			for i := 0; i < togglesEach; i++ {
				_, err := svc.ToggleFollow(ctx, uid, 101)
				assert.NoError(t, err)
			}
		}(id)
	}
	wg.Wait()

	// the counter must equal the number of users actually following
	followers := 0
	clubs.mu.Lock()
	for _, set := range clubs.follows {
		if _, ok := set[101]; ok {
			followers++
		}
	}
	clubs.mu.Unlock()

	c, err := clubs.GetByClubID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(followers), c.FollowerCount)
	assert.Equal(t, numUsers, followers)
	assert.GreaterOrEqual(t, c.FollowerCount, int64(0))
}

func TestToggleFollowUnknownUser(t *testing.T) {
	svc, _, _ := newClubFixture(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, CreateClubInput{ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical})
	require.NoError(t, err)

	_, err = svc.ToggleFollow(ctx, "no-such-user", 101)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleFollowUnknownClub(t *testing.T) {
	svc, _, u := newClubFixture(t)
	_, err := svc.ToggleFollow(context.Background(), u.ID, 404)
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestFollowerCountNeverNegative(t *testing.T) {
	svc, clubs, u := newClubFixture(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, CreateClubInput{ClubID: 101, Name: "Robotics Club", Category: entity.CategoryTechnical})
	require.NoError(t, err)

	// simulate a drifted counter: membership exists but count already at zero
	clubs.mu.Lock()
	clubs.follows[u.ID] = map[int64]struct{}{101: {}}
	clubs.clubs[101].FollowerCount = 0
	clubs.mu.Unlock()

	following, err := svc.ToggleFollow(ctx, u.ID, 101)
	require.NoError(t, err)
	assert.Empty(t, following)

	c, err := clubs.GetByClubID(ctx, 101)
	require.NoError(t, err)
	assert.Zero(t, c.FollowerCount)
}

func TestSearchWithoutES(t *testing.T) {
	svc, _, _ := newClubFixture(t)
	hits, err := svc.Search(context.Background(), "robotics", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
