package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/jmoiron/sqlx"

    "github.com/xirucas/ProjetoBD2/internal/models"
)

// Members — чтение представлений личного кабинета участника.
// Все представления фильтруются по userid из сессии.
type Members interface {
    StatsMonth(ctx context.Context, userID int) (*models.MemberStatsMonth, error)
    ScheduledClasses(ctx context.Context, userID int) ([]models.MemberScheduleClass, error)
    AvailableClasses(ctx context.Context) ([]models.MemberAvailableClass, error)
    AccountDetails(ctx context.Context, userID int) (*models.MemberAccountDetails, error)
    PaymentHistory(ctx context.Context, userID int) ([]models.MemberPayment, error)
    CheckinHistory(ctx context.Context, userID int) ([]models.MemberCheckin, error)
}

type memberRepo struct {
    db *sqlx.DB
}

func NewMembers(db *sqlx.DB) Members {
    return &memberRepo{db: db}
}

func (r *memberRepo) StatsMonth(ctx context.Context, userID int) (*models.MemberStatsMonth, error) {
    var s models.MemberStatsMonth
    err := r.db.GetContext(ctx, &s, `
        SELECT checkin_count, class_bookings, total_hours,
               next_payment, payment_price, memberid, userid
        FROM vw_member_stats_month
        WHERE userid = $1
    `, userID)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &s, nil
}

func (r *memberRepo) ScheduledClasses(ctx context.Context, userID int) ([]models.MemberScheduleClass, error) {
    var list []models.MemberScheduleClass
    err := r.db.SelectContext(ctx, &list, `
        SELECT class_name, date, starttime, endtime, room, instructor_name, userid
        FROM vw_member_schedule_classes
        WHERE userid = $1
        ORDER BY date, starttime
    `, userID)
    return list, err
}

func (r *memberRepo) AvailableClasses(ctx context.Context) ([]models.MemberAvailableClass, error) {
    var list []models.MemberAvailableClass
    err := r.db.SelectContext(ctx, &list, `
        SELECT classscheduleid, class_name, date, starttime, endtime,
               room, instructor_name, available_spots
        FROM vw_member_available_classes
        ORDER BY date, starttime
    `)
    return list, err
}

func (r *memberRepo) AccountDetails(ctx context.Context, userID int) (*models.MemberAccountDetails, error) {
    var d models.MemberAccountDetails
    err := r.db.GetContext(ctx, &d, `
        SELECT memberid, name, nif, email, phone, iban, birthdate, gender,
               address, city, postalcode, registrationdate, startdate, enddate,
               next_payment_date, plan_name, monthlyprice, access24h, userid
        FROM vw_member_account_details
        WHERE userid = $1
    `, userID)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &d, nil
}

func (r *memberRepo) PaymentHistory(ctx context.Context, userID int) ([]models.MemberPayment, error) {
    var list []models.MemberPayment
    err := r.db.SelectContext(ctx, &list, `
        SELECT paymentid, payment_date, payment_amount, paymentmethod,
               payment_status, paymentdate, memberid, userid
        FROM vw_member_payment_history
        WHERE userid = $1
        ORDER BY payment_date DESC
    `, userID)
    return list, err
}

func (r *memberRepo) CheckinHistory(ctx context.Context, userID int) ([]models.MemberCheckin, error) {
    var list []models.MemberCheckin
    err := r.db.SelectContext(ctx, &list, `
        SELECT checkinid, checkin_date, entrancetime, exittime,
               duration_hours, duration_formatted, memberid, userid
        FROM vw_member_checkin_history
        WHERE userid = $1
        ORDER BY checkin_date DESC, entrancetime DESC
    `, userID)
    return list, err
}
