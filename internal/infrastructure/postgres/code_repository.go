package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/portal-socios/internal/domain"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

var _ repository.MembershipCodeRepository = (*CodeRepo)(nil)

// CodeRepo implementación del puerto MembershipCodeRepository sobre
// PostgreSQL (tabla members_code).
type CodeRepo struct {
	db querier
}

// NewCodeRepository construye el adaptador de códigos de membresía.
func NewCodeRepository(db querier) *CodeRepo {
	return &CodeRepo{db: db}
}

// Create persiste un código nuevo.
func (r *CodeRepo) Create(ctx context.Context, code *entity.MembershipCode) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO members_code (validation_token, periods) VALUES ($1, $2)`,
		code.Token, code.Periods,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert membership code: %w", err)
	}
	return nil
}

// GetByToken obtiene un código por token, o (nil, nil) si no existe.
func (r *CodeRepo) GetByToken(ctx context.Context, token string) (*entity.MembershipCode, error) {
	var c entity.MembershipCode
	err := r.db.QueryRow(ctx,
		`SELECT validation_token, periods FROM members_code WHERE validation_token = $1`,
		token,
	).Scan(&c.Token, &c.Periods)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership code: %w", err)
	}
	return &c, nil
}

// Delete elimina el código. deleted=false si ya no existía (canje previo).
func (r *CodeRepo) Delete(ctx context.Context, token string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM members_code WHERE validation_token = $1`, token)
	if err != nil {
		return false, fmt.Errorf("delete membership code: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
