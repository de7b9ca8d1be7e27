package service

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authHelper "schoolku_backend/internals/features/users/auth/helper"
	authModel "schoolku_backend/internals/features/users/auth/model"
	authRepo "schoolku_backend/internals/features/users/auth/repository"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

const tokenTTL = 12 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
		return true
	}
	return false
}

// issueToken membuat access token HS256 dengan klaim id, role, user_name.
func issueToken(user *userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"role":      user.Role,
		"user_name": user.UserName,
		"exp":       time.Now().Add(tokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

type registerInput struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func createUserWithRole(db *gorm.DB, c *fiber.Ctx, in registerInput, role string) error {
	if err := authHelper.ValidatePasswordStrength(in.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(in.UserName),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := authRepo.CreateUser(db, &user); err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Failed to create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	log.Printf("[SUCCESS] User %s terdaftar sebagai %s\n", user.Email, user.Role)
	return helper.JsonCreated(c, "User registered successfully", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

// ========================== REGISTER ==========================
// Registrasi publik: role admin ditolak, default student.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var in registerInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = constants.RoleStudent
	}
	if role == constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh mendaftar sebagai admin")
	}
	if !constants.IsValidRole(role) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Role harus salah satu dari: student, teacher")
	}

	return createUserWithRole(db, c, in, role)
}

// ========================== CREATE ADMIN ==========================
// Bootstrap: hanya boleh lewat jalur publik selama belum ada admin sama sekali.
func CreateAdmin(db *gorm.DB, c *fiber.Ctx) error {
	exists, err := authRepo.HasAdmin(db)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing admins")
	}
	if exists {
		return helper.JsonError(c, fiber.StatusForbidden, "Admin sudah ada, gunakan jalur create-admin-secure")
	}
	return createAdmin(db, c)
}

// Jalur aman: dipanggil di belakang AuthMiddleware + OnlyRoles(admin).
func CreateAdminSecure(db *gorm.DB, c *fiber.Ctx) error {
	return createAdmin(db, c)
}

func createAdmin(db *gorm.DB, c *fiber.Ctx) error {
	var in registerInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	return createUserWithRole(db, c, in, constants.RoleAdmin)
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	user, err := authRepo.FindUserByEmail(db, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := authHelper.CheckPasswordHash(user.Password, in.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := issueToken(user)
	if err != nil {
		log.Println("[ERROR] Failed to sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

// ========================== LOGOUT ==========================
// Masukkan token aktif ke blacklist sampai masa berlakunya habis.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	expiredAt := time.Now().Add(tokenTTL)
	secret, serr := getJWTSecret()
	if serr == nil {
		parsed, perr := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if perr == nil {
			if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
				if exp, ok := claims["exp"].(float64); ok {
					expiredAt = time.Unix(int64(exp), 0)
				}
			}
		}
	}

	entry := authModel.TokenBlacklistModel{
		ID:        uuid.New(),
		Token:     raw,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonOK(c, "Logout successful", nil)
		}
		log.Println("[ERROR] Failed to blacklist token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
	}

	return helper.JsonOK(c, "Logout successful", nil)
}
