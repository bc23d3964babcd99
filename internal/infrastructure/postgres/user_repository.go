package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/portal-socios/internal/domain"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// db puede ser el pool o una transacción.
func NewUserRepository(db querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, email, name, password_hash, role, bio, avatar_id, discord_id, member_start, member_stop, account_creation`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, role, bio, avatar_id, discord_id, member_start, member_stop, account_creation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role.String(),
		user.Bio, user.AvatarID, user.DiscordID, user.MemberStart, user.MemberStop, user.AccountCreation,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, o (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row, "get user by id")
}

// GetByEmail obtiene un usuario por email, o (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
	return scanUser(row, "get user by email")
}

// UpdateRole reescribe el rol del usuario.
func (r *UserRepo) UpdateRole(ctx context.Context, id string, role permission.Role) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET role = $2 WHERE id = $1`, id, role.String())
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	return nil
}

// UpdatePeriod reescribe member_start/member_stop. Ambos nil los limpia.
func (r *UserRepo) UpdatePeriod(ctx context.Context, id string, start, stop *time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET member_start = $2, member_stop = $3 WHERE id = $1`, id, start, stop)
	if err != nil {
		return fmt.Errorf("update member period: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var role string
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role,
		&u.Bio, &u.AvatarID, &u.DiscordID, &u.MemberStart, &u.MemberStop, &u.AccountCreation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// Un rol desconocido en la DB degrada a GUEST: falla cerrado.
	u.Role, _ = permission.ParseRole(role)
	return &u, nil
}
