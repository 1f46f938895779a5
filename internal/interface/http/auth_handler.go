package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nlefevre/gocommerce/config"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
	"github.com/nlefevre/gocommerce/internal/interface/middleware"
	"github.com/nlefevre/gocommerce/pkg/helpers"
	"github.com/nlefevre/gocommerce/pkg/mailer"
	"github.com/nlefevre/gocommerce/pkg/response"
	"github.com/nlefevre/gocommerce/pkg/validation"
)

const (
	verifyTokenTTL = time.Hour
	resetTokenTTL  = 30 * time.Minute
)

// AuthHandler owns the email verification and password reset flows. Both use
// single-use tokens stored in Redis and deliver mail through the queue; the
// worker does the actual sending.
type AuthHandler struct {
	Users  repo.UserRepository
	RDB    *redis.Client
	Pub    *helpers.RabbitPublisher
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewAuthHandler(users repo.UserRepository, rdb *redis.Client, pub *helpers.RabbitPublisher, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Users: users, RDB: rdb, Pub: pub, Cfg: cfg, Logger: logger}
}

func genToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func verifyKey(token string) string { return "auth:verify:" + token }
func resetKey(token string) string  { return "auth:reset:" + token }

func (h *AuthHandler) queueEmail(c *gin.Context, job mailer.EmailJob) {
	if h.Pub == nil {
		if h.Logger != nil {
			h.Logger.WithField("to", job.To).Warn("email queue not configured, mail dropped")
		}
		return
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("to", job.To).Error("queueing email failed")
	}
}

// RequestEmailVerification issues a verification token for the caller and
// queues the email carrying the link.
func (h *AuthHandler) RequestEmailVerification(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	if h.RDB == nil {
		response.Error[any](c, http.StatusServiceUnavailable, "verification unavailable", nil)
		return
	}
	u, err := h.Users.GetByID(c.Request.Context(), p.UserID)
	if err != nil {
		serviceError(c, err, "user not found")
		return
	}
	if u.IsVerified {
		response.Success[any](c, http.StatusOK, gin.H{"verified": true}, "email already verified", nil)
		return
	}

	token, err := genToken()
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if err := h.RDB.Set(c.Request.Context(), verifyKey(token), strconv.FormatInt(u.ID, 10), verifyTokenTTL).Err(); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	link := fmt.Sprintf("%s?token=%s", h.Cfg.VerifyEmailURL, token)
	h.queueEmail(c, mailer.EmailJob{
		To:      u.Email,
		Subject: "Verify your email address",
		Text:    "Follow this link to verify your email address: " + link,
		HTML:    fmt.Sprintf(`<p>Follow <a href="%s">this link</a> to verify your email address.</p>`, link),
	})
	response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "verification email queued", nil)
}

type confirmVerificationRequest struct {
	Token string `json:"token" binding:"required"`
}

// ConfirmEmailVerification redeems a verification token. Tokens are single
// use; the key is deleted once the account is marked verified.
func (h *AuthHandler) ConfirmEmailVerification(c *gin.Context) {
	var req confirmVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	if h.RDB == nil {
		response.Error[any](c, http.StatusServiceUnavailable, "verification unavailable", nil)
		return
	}

	ctx := c.Request.Context()
	raw, err := h.RDB.Get(ctx, verifyKey(req.Token)).Result()
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid or expired token", nil)
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid or expired token", nil)
		return
	}
	if err := h.Users.SetVerified(ctx, userID); err != nil {
		serviceError(c, err, "user not found")
		return
	}
	_ = h.RDB.Del(ctx, verifyKey(req.Token)).Err()
	response.Success[any](c, http.StatusOK, gin.H{"verified": true}, "email verified", nil)
}

type requestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset always answers 200 so callers cannot probe which
// emails have accounts.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req requestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	if h.RDB == nil {
		response.Error[any](c, http.StatusServiceUnavailable, "password reset unavailable", nil)
		return
	}

	ctx := c.Request.Context()
	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) && h.Logger != nil {
			h.Logger.WithError(err).Error("password reset lookup failed")
		}
		response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "reset email queued", nil)
		return
	}

	token, err := genToken()
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if err := h.RDB.Set(ctx, resetKey(token), strconv.FormatInt(u.ID, 10), resetTokenTTL).Err(); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}

	link := fmt.Sprintf("%s?token=%s", h.Cfg.ResetPasswordURL, token)
	h.queueEmail(c, mailer.EmailJob{
		To:      u.Email,
		Subject: "Reset your password",
		Text:    "Follow this link to reset your password: " + link,
		HTML:    fmt.Sprintf(`<p>Follow <a href="%s">this link</a> to reset your password.</p>`, link),
	})
	response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "reset email queued", nil)
}

type confirmPasswordResetRequest struct {
	Token                string `json:"token" binding:"required"`
	Password             string `json:"password" binding:"required,pwd"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req confirmPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	if h.RDB == nil {
		response.Error[any](c, http.StatusServiceUnavailable, "password reset unavailable", nil)
		return
	}

	ctx := c.Request.Context()
	raw, err := h.RDB.Get(ctx, resetKey(req.Token)).Result()
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid or expired token", nil)
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid or expired token", nil)
		return
	}

	hash, err := helpers.HashPassword(req.Password)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if err := h.Users.UpdatePassword(ctx, userID, hash); err != nil {
		serviceError(c, err, "user not found")
		return
	}
	_ = h.RDB.Del(ctx, resetKey(req.Token)).Err()
	response.Success[any](c, http.StatusOK, gin.H{"reset": true}, "password updated", nil)
}
