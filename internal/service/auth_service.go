package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SecondHemisphere/portal-actividades/config"
	"github.com/SecondHemisphere/portal-actividades/internal/dto"
	"github.com/SecondHemisphere/portal-actividades/internal/model"
	"github.com/SecondHemisphere/portal-actividades/internal/repository"
	"github.com/SecondHemisphere/portal-actividades/pkg/jwt"
	"github.com/SecondHemisphere/portal-actividades/pkg/redis"
)

// studentEmailDomain is the institutional domain student sign-ups must use.
const studentEmailDomain = "@ug.edu.ec"

var (
	ErrInvalidCredentials   = errors.New("correo o contraseña incorrectos")
	ErrUserInactive         = errors.New("la cuenta está desactivada")
	ErrEmailTaken           = errors.New("el correo ya está registrado")
	ErrInvalidStudentEmail  = errors.New("el correo debe pertenecer al dominio institucional")
	ErrWrongOldPassword     = errors.New("la contraseña actual no coincide")
	ErrRefreshTokenRequired = errors.New("se requiere un refresh token")
)

// AuthService handles login, registration and session lifecycle.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.RegisterResponse, error)
	RegisterOrganizer(ctx context.Context, req *dto.RegisterOrganizerRequest) (*dto.RegisterResponse, error)
	// ResetPassword generates a temporary password for a user (admin action).
	ResetPassword(ctx context.Context, userID string) (*dto.ResetPasswordResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService builds the AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("consultar usuario por correo falló", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return s.tokenPair(user)
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, ErrRefreshTokenRequired
	}

	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, jwt.ErrTokenInvalid
	}

	if s.rdb != nil {
		revoked, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err == nil && revoked {
			return nil, jwt.ErrTokenInvalid
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return s.tokenPair(user)
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil // blacklist unavailable; token expires on its own
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("consultar usuario falló", zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	return s.repo.User.Update(ctx, user)
}

func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.RegisterResponse, error) {
	if !strings.HasSuffix(strings.ToLower(req.Email), studentEmailDomain) {
		return nil, ErrInvalidStudentEmail
	}
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
		IsActive:     true,
	}
	profile := &model.StudentProfile{
		Faculty:  req.Faculty,
		Career:   req.Career,
		Semester: req.Semester,
		Modality: req.Modality,
		Schedule: req.Schedule,
	}

	if err := s.repo.Student.Create(ctx, user, profile); err != nil {
		s.logger.Error("registrar estudiante falló", zap.Error(err))
		return nil, err
	}

	return &dto.RegisterResponse{ID: user.UserID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

func (s *authService) RegisterOrganizer(ctx context.Context, req *dto.RegisterOrganizerRequest) (*dto.RegisterResponse, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         model.RoleOrganizer,
		IsActive:     true,
	}
	profile := &model.OrganizerProfile{
		Department: req.Department,
		Position:   req.Position,
		Bio:        req.Bio,
		Shifts:     model.StringArray(req.Shifts),
		WorkDays:   model.StringArray(req.WorkDays),
		PhotoURL:   req.PhotoURL,
	}

	if err := s.repo.Organizer.Create(ctx, user, profile); err != nil {
		s.logger.Error("registrar organizador falló", zap.Error(err))
		return nil, err
	}

	return &dto.RegisterResponse{ID: user.UserID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

func (s *authService) ResetPassword(ctx context.Context, userID string) (*dto.ResetPasswordResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	temp := uuid.New().String()[:12]
	hash, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("resetear contraseña falló", zap.Error(err))
		return nil, err
	}

	return &dto.ResetPasswordResponse{TempPassword: temp}, nil
}

func (s *authService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.User.GetByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *authService) tokenPair(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Name, user.Role)
	if err != nil {
		s.logger.Error("generar access token falló", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Name, user.Role)
	if err != nil {
		s.logger.Error("generar refresh token falló", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
