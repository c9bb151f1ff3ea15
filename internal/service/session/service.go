package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CompanionAdmin/internal/infra/storage/session"
	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

// Service сессии администраторов: логин через CMS, хранение JWT и состояния дашборда
type Service struct {
	repo   SessionRepository
	auth   AuthClient
	ttl    time.Duration
	logger Logger
	now    func() time.Time
	newID  func() string
}

// NewService создает новый экземпляр сервиса сессий
func NewService(repo SessionRepository, auth AuthClient, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:   repo,
		auth:   auth,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// TTL время жизни сессии
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login авторизует пользователя в CMS и создает сессию
func (s *Service) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: authenticating identifier=%s", identifier)

	resp, err := s.auth.Login(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, cms.ErrBadRequest) || errors.Is(err, cms.ErrUnauthorized) {
			s.logger.Warn("Login: rejected for identifier=%s: %v", identifier, err)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: cms error for identifier=%s: %v", identifier, err)
		return nil, fmt.Errorf("%w: Login - cms error: %v", ErrInternal, err)
	}

	sess := &domain.Session{
		ID:        s.newID(),
		JWT:       resp.JWT,
		User:      toDomainUser(resp.User),
		View:      domain.NewViewState(),
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Save(ctx, sess, s.ttl); err != nil {
		s.logger.Error("Login: failed to save session for user=%d: %v", sess.User.ID, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session created for user=%d, userType=%s", sess.User.ID, sess.User.UserType)
	return sess, nil
}

// Logout удаляет сессию
func (s *Service) Logout(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Get возвращает сессию по id
func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return sess, nil
}

// SaveView сохраняет состояние дашборда сессии
func (s *Service) SaveView(ctx context.Context, id string, view domain.ViewState) error {
	if err := s.repo.UpdateView(ctx, id, view); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("SaveView: repository error: %v", err)
		return fmt.Errorf("%w: SaveView - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Me актуальный профиль пользователя из CMS по токену сессии
func (s *Service) Me(ctx context.Context, id string) (*domain.User, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.auth.GetProfile(ctx, sess.JWT)
	if err != nil {
		if errors.Is(err, cms.ErrUnauthorized) {
			s.logger.Warn("Me: cms rejected token for user=%d", sess.User.ID)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Me: cms error for user=%d: %v", sess.User.ID, err)
		return nil, fmt.Errorf("%w: Me - cms error: %v", ErrInternal, err)
	}

	user := toDomainUser(*profile)
	return &user, nil
}

// ForgotPassword запрашивает письмо для сброса пароля
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if err := s.auth.ForgotPassword(ctx, email); err != nil {
		if errors.Is(err, cms.ErrBadRequest) {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("ForgotPassword: cms error: %v", err)
		return fmt.Errorf("%w: ForgotPassword - cms error: %v", ErrInternal, err)
	}

	return nil
}

func toDomainUser(u cms.User) domain.User {
	user := domain.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		UserType: u.UserType,
	}
	if u.Role != nil {
		user.RoleName = u.Role.Name
	}
	return user
}
