package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/revpay/wallet/internal/domain"
	"github.com/revpay/wallet/pkg/auth"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, userID int) error
}

type Wallets interface {
	CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownUser        = errors.New("no account for that email")
)

type RegisterParams struct {
	Email          string
	PhoneNumber    string
	Password       string
	TransactionPIN string
	FullName       string
	Role           domain.Role
}

type Service struct {
	userRepo    Repo
	wallets     Wallets
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo Repo, wallets Wallets, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		wallets:     wallets,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates the user and its wallet. The wallet exists from the moment
// the account does, so every account id the engine sees has a balance row.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, params.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", params.Email))
		return nil, ErrEmailTaken
	}

	role := params.Role
	if !role.Valid() {
		role = domain.RolePersonal
	}

	hashedPassword, err := s.hashService.HashPassword(params.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	hashedPIN, err := s.hashService.HashPassword(params.TransactionPIN)
	if err != nil {
		zap.L().Error("can't hash transaction pin: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Email:          params.Email,
		PhoneNumber:    params.PhoneNumber,
		PasswordHash:   hashedPassword,
		TransactionPIN: hashedPIN,
		FullName:       params.FullName,
		Role:           role,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.wallets.CreateWallet(ctx, newUser.ID)
	if err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", params.Email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), user.Email, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// ResolveAccountID maps an email to the internal account id. The ledger core
// only ever works with account ids.
func (s *Service) ResolveAccountID(ctx context.Context, email string) (int, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUnknownUser
	}
	return user.ID, nil
}

func (s *Service) DeleteAccount(ctx context.Context, userID int) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		zap.L().Error("can't delete account", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	zap.L().Info("account deleted", zap.Int("userID", userID))
	return nil
}
