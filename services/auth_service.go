package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"solcraft-backend/auth"
	"solcraft-backend/models"
	"solcraft-backend/storage"
	"solcraft-backend/utils"
)

type AuthService struct {
	Store  storage.Store
	Tokens *auth.TokenManager
	Hasher auth.Hasher
}

func NewAuthService(store storage.Store, tokens *auth.TokenManager, hasher auth.Hasher) *AuthService {
	return &AuthService{Store: store, Tokens: tokens, Hasher: hasher}
}

// Register creates a username/email/password account.
// 400 on the first missing field or a duplicate username/email,
// 201 with {user, token} on success. The stored digest never leaves the server.
func (s *AuthService) Register(c *fiber.Ctx) error {
	var req struct {
		Username      string `json:"username"`
		Email         string `json:"email"`
		Password      string `json:"password"`
		WalletAddress string `json:"wallet_address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	// --- Validation: name the first missing field ---
	switch {
	case req.Username == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: username")
	case req.Email == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: email")
	case req.Password == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: password")
	}

	// --- Duplicate pre-reads (the store is not assumed to enforce uniqueness) ---
	if _, err := s.Store.UserByUsername(c.Context(), req.Username); err == nil {
		return utils.Error(c, fiber.StatusBadRequest, "username already registered")
	} else if errors.Is(err, storage.ErrUnavailable) {
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}
	if _, err := s.Store.UserByEmail(c.Context(), req.Email); err == nil {
		return utils.Error(c, fiber.StatusBadRequest, "email already registered")
	} else if errors.Is(err, storage.ErrUnavailable) {
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	digest, err := s.Hasher.Hash(req.Password)
	if err != nil {
		log.Printf("❌ [AUTH] password hash failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "registration failed")
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordDigest: digest,
		WalletAddress:  req.WalletAddress,
	}
	if err := s.Store.CreateUser(c.Context(), &user); err != nil {
		log.Printf("❌ [AUTH] create user failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	token, err := s.Tokens.Issue(user.ID, user.WalletAddress)
	if err != nil {
		log.Printf("❌ [AUTH] token issue failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "registration failed")
	}

	log.Printf("✅ [AUTH] registered user %d (%s)", user.ID, user.Username)
	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Login authenticates by email + password. Any mismatch answers the same
// generic 401 — the response never reveals which of the two was wrong.
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	switch {
	case req.Email == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: email")
	case req.Password == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: password")
	}

	user, err := s.Store.UserByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			return utils.Error(c, fiber.StatusInternalServerError, "database error")
		}
		return utils.Error(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if !s.Hasher.Verify(user.PasswordDigest, req.Password) {
		return utils.Error(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := s.Tokens.Issue(user.ID, user.WalletAddress)
	if err != nil {
		log.Printf("❌ [AUTH] token issue failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "login failed")
	}

	now := time.Now()
	user.LastLoginAt = &now

	log.Printf("✅ [AUTH] user %d logged in", user.ID)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":  user,
		"token": token,
	})
}

// ConnectWallet is the wallet-identity variant: creates-or-fetches the user
// keyed by wallet address and returns {token, user}.
func (s *AuthService) ConnectWallet(c *fiber.Ctx) error {
	var req struct {
		WalletAddress string `json:"wallet_address"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.WalletAddress == "" {
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: wallet_address")
	}

	user, err := s.Store.UserByWallet(c.Context(), req.WalletAddress)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return utils.Error(c, fiber.StatusInternalServerError, "database error")
		}
		// New wallet: create the account with the original platform's
		// starter portfolio figures.
		user = &models.User{
			Username:       walletUsername(req.WalletAddress),
			WalletAddress:  req.WalletAddress,
			PortfolioValue: 25430,
			TotalInvested:  22500,
			TotalROI:       13.02,
		}
		if err := s.Store.CreateUser(c.Context(), user); err != nil {
			log.Printf("❌ [AUTH] create wallet user failed: %v", err)
			return utils.Error(c, fiber.StatusInternalServerError, "database error")
		}
		log.Printf("✅ [AUTH] created wallet user %d (%s)", user.ID, user.Username)
	}

	token, err := s.Tokens.Issue(user.ID, user.WalletAddress)
	if err != nil {
		log.Printf("❌ [AUTH] token issue failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "wallet connect failed")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":    user,
		"token":   token,
		"message": "Wallet connected successfully",
	})
}

// walletUsername derives a readable default username from a wallet address.
func walletUsername(wallet string) string {
	suffix := wallet
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return fmt.Sprintf("User%s", suffix)
}
