package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pulseboard/pulseboard-api/internal/domain/entity"
	repo "github.com/pulseboard/pulseboard-api/internal/domain/repository"
	"github.com/pulseboard/pulseboard-api/pkg/helpers"
)

const (
	clubListCacheKey = "clubs:list"
	clubListCacheTTL = 30 * time.Second
)

// ClubService covers the club directory and the follow toggle.
type ClubService struct {
	Clubs        repo.ClubRepository
	Users        repo.UserRepository
	Redis        *redis.Client
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESClubsIndex string
}

func NewClubService(clubs repo.ClubRepository, users repo.UserRepository, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esClubsIndex string) *ClubService {
	return &ClubService{
		Clubs:        clubs,
		Users:        users,
		Redis:        rdb,
		Logger:       logger,
		ES:           es,
		ESClubsIndex: esClubsIndex,
	}
}

// List returns all clubs, served from a short-lived Redis cache when possible.
func (s *ClubService) List(ctx context.Context) ([]*entity.Club, error) {
	if s.Redis != nil {
		var cached []*entity.Club
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, clubListCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	clubs, err := s.Clubs.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, clubListCacheKey, clubs, clubListCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("club list cache write failed")
		}
	}
	return clubs, nil
}

func (s *ClubService) Get(ctx context.Context, clubID int64) (*entity.Club, error) {
	c, err := s.Clubs.GetByClubID(ctx, clubID)
	if err != nil {
		if errors.Is(err, repo.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return c, nil
}

type CreateClubInput struct {
	ClubID      int64
	Name        string
	Description string
	Category    entity.Category
}

// Create persists a new club. Duplicate names and club ids conflict; nothing
// is written on failure.
func (s *ClubService) Create(ctx context.Context, in CreateClubInput) (*entity.Club, error) {
	if in.ClubID <= 0 || strings.TrimSpace(in.Name) == "" || !in.Category.Valid() {
		return nil, ErrClubInvalid
	}
	c := &entity.Club{
		ClubID:      in.ClubID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    in.Category,
	}
	if err := s.Clubs.Create(ctx, c); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateName):
			return nil, ErrClubNameTaken
		case errors.Is(err, repo.ErrDuplicateClub):
			return nil, ErrClubIDTaken
		}
		return nil, err
	}

	if s.Redis != nil {
		_ = helpers.RedisDel(ctx, s.Redis, clubListCacheKey)
	}
	_ = s.indexClub(ctx, c)
	return c, nil
}

// ToggleFollow flips the caller's membership for the club and returns the
// updated following set, so the client can reconcile without a second fetch.
func (s *ClubService) ToggleFollow(ctx context.Context, userID string, clubID int64) ([]int64, error) {
	following, err := s.Clubs.ToggleFollow(ctx, userID, clubID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repo.ErrClubNotFound):
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return following, nil
}

func (s *ClubService) indexClub(ctx context.Context, c *entity.Club) error {
	if s.ES == nil || s.ESClubsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"club_id":     c.ClubID,
		"name":        c.Name,
		"description": c.Description,
		"category":    c.Category,
		"created_at":  c.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESClubsIndex, DocumentID: strconv.FormatInt(c.ClubID, 10), Body: strings.NewReader(string(b)), Refresh: "false"}
	c2, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c2, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("club_id", c.ClubID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("club_id", c.ClubID).Warn("es index response error")
	}
	return nil
}

// Search performs a simple multi_match search on name, description and category.
func (s *ClubService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESClubsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESClubsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
