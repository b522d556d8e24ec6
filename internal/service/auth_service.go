package service

import (
	"context"
	"errors"
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/config"
	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrCredenciaisInvalidas = errors.New("credenciais inválidas")

// AuthService autentica o operador do caixa. O token resultante identifica
// quem registrou cada venda, cancelamento e movimentação de estoque.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CriarUsuario(ctx context.Context, username, nome, senha, perfil string) (*model.Usuario, error)
}

type authService struct {
	usuarios repository.UsuarioRepository
	cfg      *config.Config
}

func NewAuthService(usuarios repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{usuarios: usuarios, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarios.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User: dto.UsuarioResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Nome:     user.Nome,
			Perfil:   user.Perfil,
		},
	}, nil
}

func (s *authService) CriarUsuario(ctx context.Context, username, nome, senha, perfil string) (*model.Usuario, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Username:  username,
		Nome:      nome,
		SenhaHash: string(hash),
		Perfil:    perfil,
		Ativo:     true,
	}
	if err := s.usuarios.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"perfil":   user.Perfil,
		"exp":      now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
