package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// スタッフ認証。アクセストークンのみ（リフレッシュは持たない）。
type AuthUsecase struct {
	staffRepo repo.StaffRepository
	secret    []byte
	accessTTL time.Duration
}

func NewAuthUsecase(staffRepo repo.StaffRepository, secret string, accessTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		staffRepo: staffRepo,
		secret:    []byte(secret),
		accessTTL: accessTTL,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Role        string `json:"role"`
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginOutput{}, NewError(KindInvalidRequest, "email and password are required")
	}

	s, err := u.staffRepo.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		// メール未登録かパスワード違いかは区別させない
		return LoginOutput{}, NewError(KindUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewError(KindTransactionFailure, "db error")
	}
	if !s.IsActive {
		return LoginOutput{}, NewError(KindUnauthorized, "invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(in.Password)) != nil {
		return LoginOutput{}, NewError(KindUnauthorized, "invalid credentials")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(s.ID, 10),
		"role": string(s.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(u.accessTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.secret)
	if err != nil {
		return LoginOutput{}, NewError(KindTransactionFailure, "token signing failed")
	}

	return LoginOutput{
		AccessToken: signed,
		ExpiresIn:   int64(u.accessTTL.Seconds()),
		Role:        string(s.Role),
	}, nil
}

// 起動時のシード用。既に同じメールがあれば何もしない。
func (u *AuthUsecase) EnsureStaff(ctx context.Context, email string, password string, role model.Role) error {
	if _, err := u.staffRepo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if err != repo.ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	_, err = u.staffRepo.Create(ctx, model.Staff{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	return err
}
