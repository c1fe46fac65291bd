package repository

import (
    "context"

    "github.com/jmoiron/sqlx"

    "github.com/xirucas/ProjetoBD2/internal/models"
)

// Managers — сводные представления для панели менеджера
type Managers interface {
    DashboardStats(ctx context.Context) (*models.DashboardStats, error)
    AllMembers(ctx context.Context) ([]models.MemberSummary, error)
    AllClasses(ctx context.Context) ([]models.ClassSummary, error)
    AllCheckins(ctx context.Context) ([]models.CheckinSummary, error)
    Machines(ctx context.Context) ([]models.Machine, error)
    Payments(ctx context.Context) ([]models.Payment, error)
    Plans(ctx context.Context) ([]models.PlanDetails, error)
}

type managerRepo struct {
    db *sqlx.DB
}

func NewManagers(db *sqlx.DB) Managers {
    return &managerRepo{db: db}
}

func (r *managerRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
    var s models.DashboardStats
    err := r.db.GetContext(ctx, &s, `
        SELECT total_members, total_instructors, active_memberships, today_checkins
        FROM vw_dashboard_stats
    `)
    if err != nil {
        return nil, err
    }
    return &s, nil
}

func (r *managerRepo) AllMembers(ctx context.Context) ([]models.MemberSummary, error) {
    var list []models.MemberSummary
    err := r.db.SelectContext(ctx, &list, `
        SELECT memberid, name, email, phone, registrationdate, isactive,
               startdate, enddate, plan_name
        FROM vw_all_members
        ORDER BY name
    `)
    return list, err
}

func (r *managerRepo) AllClasses(ctx context.Context) ([]models.ClassSummary, error) {
    var list []models.ClassSummary
    err := r.db.SelectContext(ctx, &list, `
        SELECT classscheduleid, name, instructor_name, date, starttime, endtime,
               room, maxparticipants
        FROM vw_all_classes
        ORDER BY date, starttime
    `)
    return list, err
}

func (r *managerRepo) AllCheckins(ctx context.Context) ([]models.CheckinSummary, error) {
    var list []models.CheckinSummary
    err := r.db.SelectContext(ctx, &list, `
        SELECT checkinid, name, date, entrancetime, exittime
        FROM vw_all_checkins
        ORDER BY date DESC, entrancetime DESC
    `)
    return list, err
}

func (r *managerRepo) Machines(ctx context.Context) ([]models.Machine, error) {
    var list []models.Machine
    err := r.db.SelectContext(ctx, &list, `
        SELECT machineid, name, type, manufacturer, model, status,
               installationdate, maintenancedate
        FROM vw_machines
        ORDER BY machineid
    `)
    return list, err
}

func (r *managerRepo) Payments(ctx context.Context) ([]models.Payment, error) {
    var list []models.Payment
    err := r.db.SelectContext(ctx, &list, `
        SELECT paymentid, member_name, plan_name, amount, duedate,
               paymentdate, ispayed, paymentmethod
        FROM vw_payments
        ORDER BY duedate DESC
    `)
    return list, err
}

func (r *managerRepo) Plans(ctx context.Context) ([]models.PlanDetails, error) {
    var list []models.PlanDetails
    err := r.db.SelectContext(ctx, &list, `
        SELECT planid, name, monthlyprice, access24h, description, isactive
        FROM vw_plans
        ORDER BY monthlyprice
    `)
    return list, err
}
