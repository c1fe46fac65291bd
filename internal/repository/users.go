package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/jmoiron/sqlx"

    "github.com/xirucas/ProjetoBD2/internal/models"
)

// ErrNotFound — запись не найдена в представлении
var ErrNotFound = errors.New("запись не найдена")

// CreateMemberParams — полный кортеж аргументов sp_create_member.
// Пароль передаётся уже захешированным.
type CreateMemberParams struct {
    Name           string
    HashedPassword string
    NIF            string
    Email          string
    Phone          string
    IBAN           string
    BirthDate      time.Time
    Gender         string
    Address        string
    City           string
    PostalCode     string
    PlanID         int
}

// Users — узкий интерфейс к представлениям и процедурам аутентификации.
// Контракт внешний — имена vw_*/sp_*; внутри можно менять механизм запросов.
type Users interface {
    FindByEmail(ctx context.Context, email string) (*models.UserAuthentication, error)
    EmailExists(ctx context.Context, email string) (bool, error)
    UpdateLastLogin(ctx context.Context, userID int) error
    CreateMember(ctx context.Context, p CreateMemberParams) error
    BookClass(ctx context.Context, userID, classScheduleID int) error
    ActivePlans(ctx context.Context) ([]models.Plan, error)
}

type userRepo struct {
    db *sqlx.DB
}

func NewUsers(db *sqlx.DB) Users {
    return &userRepo{db: db}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.UserAuthentication, error) {
    var u models.UserAuthentication
    err := r.db.GetContext(ctx, &u, `
        SELECT userid, email, name, password, usertypeid, isactive, user_type_label
        FROM vw_user_authentication
        WHERE email = $1
    `, email)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepo) EmailExists(ctx context.Context, email string) (bool, error) {
    var exists bool
    err := r.db.GetContext(ctx, &exists,
        `SELECT EXISTS(SELECT 1 FROM vw_email_exists WHERE email = $1)`, email)
    return exists, err
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, userID int) error {
    _, err := r.db.ExecContext(ctx, `CALL sp_update_last_login($1)`, userID)
    return err
}

func (r *userRepo) CreateMember(ctx context.Context, p CreateMemberParams) error {
    _, err := r.db.ExecContext(ctx,
        `CALL sp_create_member($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
        p.Name, p.HashedPassword, p.NIF, p.Email, p.Phone, p.IBAN,
        p.BirthDate, p.Gender, p.Address, p.City, p.PostalCode, p.PlanID)
    return err
}

func (r *userRepo) BookClass(ctx context.Context, userID, classScheduleID int) error {
    _, err := r.db.ExecContext(ctx, `CALL sp_book_class($1,$2)`, userID, classScheduleID)
    return err
}

func (r *userRepo) ActivePlans(ctx context.Context) ([]models.Plan, error) {
    var plans []models.Plan
    err := r.db.SelectContext(ctx, &plans, `
        SELECT planid, name, monthlyprice, access24h
        FROM vw_plan
        ORDER BY monthlyprice
    `)
    return plans, err
}
