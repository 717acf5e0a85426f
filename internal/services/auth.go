package services

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/logger"
	"github.com/sbilibin2017/gw-pegged-settlement/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrOperatorAlreadyExists = errors.New("username already exists")
	ErrOperatorDoesNotExist  = errors.New("username does not exist")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInvalidAddress        = errors.New("invalid address")
)

// OperatorReader defines read-only operations for operators.
type OperatorReader interface {
	GetByUsername(ctx context.Context, username string) (*models.OperatorDB, error) // Returns nil when absent
}

// OperatorWriter defines write operations for operators.
type OperatorWriter interface {
	Save(ctx context.Context, username, passwordHash, address string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, operatorID uuid.UUID, address common.Address) (string, error)
}

// AuthService handles operator registration and login.
type AuthService struct {
	reader OperatorReader
	writer OperatorWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader OperatorReader, writer OperatorWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates an operator acting as address.
func (svc *AuthService) Register(ctx context.Context, username, password, address string) error {
	if !common.IsHexAddress(address) {
		return ErrInvalidAddress
	}

	operator, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check operator exists", "err", err)
		return err
	}
	if operator != nil {
		logger.Log.Errorw("operator already exists", "username", username)
		return ErrOperatorAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword), common.HexToAddress(address).Hex()); err != nil {
		logger.Log.Errorw("failed to save operator", "err", err)
		return err
	}

	return nil
}

// Login authenticates an operator and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	operator, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get operator", "err", err)
		return "", err
	}
	if operator == nil {
		logger.Log.Errorw("operator does not exist", "username", username)
		return "", ErrOperatorDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, operator.OperatorID, common.HexToAddress(operator.Address))
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
