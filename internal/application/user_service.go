package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/passby/passby-backend/internal/domain/entity"
	repo "github.com/passby/passby-backend/internal/domain/repository"
	"github.com/passby/passby-backend/pkg/helpers"
	"github.com/passby/passby-backend/pkg/mailer"
	mailtpl "github.com/passby/passby-backend/pkg/mailer/templates"
)

// UserService implements the user use cases: create, login, logout, delete,
// plus the profile/search extensions.
type UserService struct {
	Repo     repo.UserRepository
	InfoRepo repo.UserInfoRepository
	JWT      *helpers.JWTManager
	Sessions SessionStore
	Logger   *logrus.Logger

	GCS       *storage.Client
	GCSBucket string

	ES           *elasticsearch.Client
	ESUsersIndex string

	Pub             *helpers.RabbitPublisher
	AppName         string
	MailSendEnabled bool
}

// AuthResult is what create and login hand back to the route layer.
type AuthResult struct {
	UserID      int64
	Name        string
	Token       string
	TokenExpiry time.Time
}

// Create registers a new user, issues a token and opens a session.
// A taken email yields ErrEmailTaken and no second record.
func (s *UserService) Create(ctx context.Context, email, password, name string) (*AuthResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash, Name: name}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	// Profile row exists from day one so passed-by enrichment can find it.
	info := &entity.UserInfo{UserID: u.ID, Nickname: name}
	if err := s.InfoRepo.Upsert(ctx, info); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("user_info init failed")
	}

	res, err := s.issue(ctx, u)
	if err != nil {
		return nil, err
	}

	_ = s.indexUser(ctx, u, info)
	s.sendWelcome(ctx, u)
	return res, nil
}

// Login checks credentials and issues a token with a fresh session.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, u)
}

// Logout revokes the caller's session. The token itself stays signed and
// unexpired; the auth gate rejects it once the session is gone.
func (s *UserService) Logout(ctx context.Context, userID int64) error {
	return s.Sessions.Delete(ctx, userID)
}

// Delete removes the user record (user_info, geofence, fitness and passed
// events cascade) and revokes the session.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.Sessions.Delete(ctx, userID); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("session delete failed")
	}
	s.deleteIndexed(ctx, userID)
	return nil
}

// GetProfile returns the account plus its user_info record.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*entity.User, *entity.UserInfo, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	info, err := s.InfoRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, nil, err
	}
	if info == nil {
		info = &entity.UserInfo{UserID: userID}
	}
	return u, info, nil
}

type UpdateProfileInput struct {
	Nickname string
	Bio      string
}

// UpdateProfile upserts user_info fields and re-indexes the profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*entity.UserInfo, error) {
	u, info, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Nickname != "" {
		info.Nickname = in.Nickname
	}
	if in.Bio != "" {
		info.Bio = in.Bio
	}
	if err := s.InfoRepo.Upsert(ctx, info); err != nil {
		return nil, err
	}
	_ = s.indexUser(ctx, u, info)
	return info, nil
}

// UploadAvatar stores the image in GCS and records the public URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID int64, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	u, info, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", strconv.FormatInt(userID, 10), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	info.AvatarURL = url
	if err := s.InfoRepo.Upsert(ctx, info); err != nil {
		return "", err
	}
	_ = s.indexUser(ctx, u, info)
	return url, nil
}

func (s *UserService) issue(ctx context.Context, u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Issue(u.ID, u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		return nil, err
	}
	sess := Session{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		SID:       uuid.NewString(),
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Put(ctx, sess); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("session put failed")
		return nil, err
	}
	return &AuthResult{UserID: u.ID, Name: u.Name, Token: token, TokenExpiry: exp}, nil
}

func (s *UserService) sendWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailSendEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data: map[string]any{
			"AppName": s.AppName,
			"Name":    u.Name,
			"Email":   u.Email,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome mail enqueue failed")
	}
}

func (s *UserService) indexUser(ctx context.Context, u *entity.User, info *entity.UserInfo) error {
	if s.ES == nil || s.ESUsersIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"nickname":   info.Nickname,
		"avatar_url": info.AvatarURL,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESUsersIndex,
		DocumentID: strconv.FormatInt(u.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
	return nil
}

func (s *UserService) deleteIndexed(ctx context.Context, userID int64) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESUsersIndex, DocumentID: strconv.FormatInt(userID, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}

// SearchUsers performs a simple multi_match search on name and nickname.
func (s *UserService) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "nickname"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESUsersIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
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
