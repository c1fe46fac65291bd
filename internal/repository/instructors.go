package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/jmoiron/sqlx"

    "github.com/xirucas/ProjetoBD2/internal/models"
)

// Instructors — представления кабинета инструктора
type Instructors interface {
    Info(ctx context.Context, userID int) (*models.InstructorInfo, error)
    Classes(ctx context.Context, userID int) ([]models.InstructorClass, error)
    Schedules(ctx context.Context, userID int) ([]models.ClassSchedule, error)
}

type instructorRepo struct {
    db *sqlx.DB
}

func NewInstructors(db *sqlx.DB) Instructors {
    return &instructorRepo{db: db}
}

func (r *instructorRepo) Info(ctx context.Context, userID int) (*models.InstructorInfo, error) {
    var info models.InstructorInfo
    err := r.db.GetContext(ctx, &info, `
        SELECT instructorid, name, nif, email, phone, isactive, userid
        FROM vw_instructor_info
        WHERE userid = $1
    `, userID)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &info, nil
}

func (r *instructorRepo) Classes(ctx context.Context, userID int) ([]models.InstructorClass, error) {
    var list []models.InstructorClass
    err := r.db.SelectContext(ctx, &list, `
        SELECT classid, name, room, capacity, duration_minutes, instructorid, userid
        FROM vw_instructor_classes
        WHERE userid = $1
        ORDER BY name
    `, userID)
    return list, err
}

func (r *instructorRepo) Schedules(ctx context.Context, userID int) ([]models.ClassSchedule, error) {
    var list []models.ClassSchedule
    err := r.db.SelectContext(ctx, &list, `
        SELECT classscheduleid, name, date, starttime, endtime,
               maxparticipants, room, instructorid, userid
        FROM vw_class_schedules
        WHERE userid = $1
        ORDER BY date, starttime
    `, userID)
    return list, err
}
