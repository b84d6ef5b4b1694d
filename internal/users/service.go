package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tonmoytt/All-it-shopping-server/internal/models"
	"github.com/tonmoytt/All-it-shopping-server/internal/utils"
)

var (
	ErrInvalid    = errors.New("email et mot de passe requis")
	ErrEmailTaken = errors.New("email déjà utilisé")
	ErrNotFound   = errors.New("utilisateur introuvable")
)

// Store : accès à la collection users.
type Store interface {
	// FindUserByEmail renvoie (nil, nil) quand l'email est inconnu.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user models.User) (string, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Signup crée le compte. L'email est normalisé en minuscules avant le test
// d'unicité : "A@x.com" et "a@x.com" sont le même compte. Le mot de passe
// est stocké hashé (Argon2id), jamais en clair.
func (s *Service) Signup(ctx context.Context, input SignupInput) (string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return "", ErrInvalid
	}

	existing, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	role := input.Role
	if role == "" {
		role = "user"
	}

	return s.store.InsertUser(ctx, models.User{
		Name:      input.Name,
		Email:     email,
		Password:  hash,
		Role:      role,
		CreatedAt: time.Now(),
	})
}

// FindByEmail sert à l'émission du token de session.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrInvalid
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
