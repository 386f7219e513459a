package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"taza-be/internal/db"
	"taza-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	GetProfile(ctx context.Context, userID uint) (*Profile, error)
	UpdateProfile(ctx context.Context, p UpdateProfileParams) (*Profile, error)

	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	TouchSession(ctx context.Context, id string) error
	RevokeSession(ctx context.Context, id string, userID uint) error

	LogActivity(ctx context.Context, userID uint, action string, metadata map[string]any) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts the user and its profile row in one transaction. Unique
// violations on phone or email come back as conflicts.
func (r *repository) Create(ctx context.Context, u *User) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "User"),
		zap.String("method", "Create"),
	)

	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO users (name, phone, email, password, gender, role)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`, u.Name, u.Phone, u.Email, u.Password, u.Gender, u.Role,
		).Scan(&u.ID, &u.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO profiles (user_id, full_name, phone, email)
			VALUES ($1, $2, $3, $4)
		`, u.ID, u.Name, u.Phone, u.Email)
		return err
	})
	if err != nil {
		if constraint, ok := db.UniqueViolation(err); ok {
			if constraint == "users_email_key" {
				return ErrEmailExists
			}
			return ErrPhoneExists
		}
		log.Error("db: failed to insert user", zap.Error(err))
		return err
	}

	return nil
}

const userColumns = `id, name, phone, email, password, gender, role, created_at`

func (r *repository) findOne(ctx context.Context, method, where string, arg any) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+where+` LIMIT 1`,
		arg,
	).Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.Password, &u.Gender, &u.Role, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to fetch user",
			zap.String("repo", "User"),
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	return r.findOne(ctx, "FindByID", "id = $1", id)
}

func (r *repository) FindByPhone(ctx context.Context, phone string) (*User, error) {
	return r.findOne(ctx, "FindByPhone", "phone = $1", phone)
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, "FindByEmail", "LOWER(email) = LOWER($1)", email)
}

// GetProfile fetches a user's profile by user ID.
func (r *repository) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProfile"),
		zap.Uint("user_id", userID),
	)

	const q = `
		SELECT user_id, full_name, avatar_url, phone, email, date_of_birth, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p Profile
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&p.UserID, &p.FullName, &p.AvatarURL, &p.Phone, &p.Email, &p.DateOfBirth, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("profile not found")
			return nil, ErrProfileNotFound
		}
		log.Error("failed to scan profile", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

// UpdateProfile updates an existing profile. Nil fields keep their value.
func (r *repository) UpdateProfile(ctx context.Context, p UpdateProfileParams) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfile"),
		zap.Uint("user_id", p.UserID),
	)

	const q = `
		UPDATE profiles
		SET full_name = COALESCE($2, full_name),
			avatar_url = COALESCE($3, avatar_url),
			phone = COALESCE($4, phone),
			email = COALESCE($5, email),
			date_of_birth = COALESCE($6, date_of_birth),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, full_name, avatar_url, phone, email, date_of_birth, updated_at
	`

	var out Profile
	err := r.db.QueryRowContext(ctx, q,
		p.UserID, p.FullName, p.AvatarURL, p.Phone, p.Email, p.DateOfBirth,
	).Scan(
		&out.UserID, &out.FullName, &out.AvatarURL, &out.Phone, &out.Email, &out.DateOfBirth, &out.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile updated successfully")
	return &out, nil
}

func (r *repository) CreateSession(ctx context.Context, s *Session) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO user_sessions (id, user_id, user_agent, ip_address, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING last_activity_at
	`, s.ID, s.UserID, s.UserAgent, s.IPAddress, s.ExpiresAt).Scan(&s.LastActivityAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to create session",
			zap.String("repo", "User"),
			zap.String("method", "CreateSession"),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) GetSession(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, expires_at, last_activity_at, revoked_at
		FROM user_sessions
		WHERE id = $1
	`, id).Scan(&s.ID, &s.UserID, &s.ExpiresAt, &s.LastActivityAt, &s.RevokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) TouchSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE user_sessions SET last_activity_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *repository) RevokeSession(ctx context.Context, id string, userID uint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE user_sessions
		SET revoked_at = NOW()
		WHERE id = $1 AND user_id = $2 AND revoked_at IS NULL
	`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *repository) LogActivity(ctx context.Context, userID uint, action string, metadata map[string]any) error {
	var meta any
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		meta = raw
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_logs (user_id, action, metadata) VALUES ($1, $2, $3)`,
		userID, action, meta,
	)
	return err
}
