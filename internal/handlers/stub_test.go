package handlers

import (
    "context"
    "fmt"
    "io"

    "github.com/gofiber/fiber/v2"

    "github.com/xirucas/ProjetoBD2/internal/documents"
    "github.com/xirucas/ProjetoBD2/internal/models"
    "github.com/xirucas/ProjetoBD2/internal/repository"
)

// fakeViews пишет имя шаблона, сообщение об ошибке и пользователя —
// достаточно, чтобы проверять, что именно отрендерили
type fakeViews struct{}

func (fakeViews) Load() error { return nil }

func (fakeViews) Render(w io.Writer, name string, bind interface{}, _ ...string) error {
    m, _ := bind.(fiber.Map)
    _, err := fmt.Fprintf(w, "%s|%v|%v", name, m["Error"], m["User"])
    return err
}

// ---------------- Заглушки репозиториев ----------------

type stubUsers struct {
    byEmail   map[string]*models.UserAuthentication
    exists    map[string]bool
    plans     []models.Plan
    lastLogin []int
    created   []repository.CreateMemberParams
    booked    [][2]int
    bookErr   error
}

func newStubUsers() *stubUsers {
    return &stubUsers{
        byEmail: map[string]*models.UserAuthentication{},
        exists:  map[string]bool{},
    }
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*models.UserAuthentication, error) {
    if u, ok := s.byEmail[email]; ok {
        return u, nil
    }
    return nil, repository.ErrNotFound
}

func (s *stubUsers) EmailExists(_ context.Context, email string) (bool, error) {
    return s.exists[email], nil
}

func (s *stubUsers) UpdateLastLogin(_ context.Context, userID int) error {
    s.lastLogin = append(s.lastLogin, userID)
    return nil
}

func (s *stubUsers) CreateMember(_ context.Context, p repository.CreateMemberParams) error {
    s.created = append(s.created, p)
    s.exists[p.Email] = true
    return nil
}

func (s *stubUsers) BookClass(_ context.Context, userID, classScheduleID int) error {
    if s.bookErr != nil {
        return s.bookErr
    }
    s.booked = append(s.booked, [2]int{userID, classScheduleID})
    return nil
}

func (s *stubUsers) ActivePlans(_ context.Context) ([]models.Plan, error) {
    return s.plans, nil
}

type stubMembers struct{}

func (stubMembers) StatsMonth(context.Context, int) (*models.MemberStatsMonth, error) {
    return nil, repository.ErrNotFound
}
func (stubMembers) ScheduledClasses(context.Context, int) ([]models.MemberScheduleClass, error) {
    return nil, nil
}
func (stubMembers) AvailableClasses(context.Context) ([]models.MemberAvailableClass, error) {
    return nil, nil
}
func (stubMembers) AccountDetails(context.Context, int) (*models.MemberAccountDetails, error) {
    return nil, repository.ErrNotFound
}
func (stubMembers) PaymentHistory(context.Context, int) ([]models.MemberPayment, error) {
    return nil, nil
}
func (stubMembers) CheckinHistory(context.Context, int) ([]models.MemberCheckin, error) {
    return nil, nil
}

type stubInstructors struct{}

func (stubInstructors) Info(context.Context, int) (*models.InstructorInfo, error) {
    return nil, repository.ErrNotFound
}
func (stubInstructors) Classes(context.Context, int) ([]models.InstructorClass, error) {
    return nil, nil
}
func (stubInstructors) Schedules(context.Context, int) ([]models.ClassSchedule, error) {
    return nil, nil
}

type stubManagers struct{}

func (stubManagers) DashboardStats(context.Context) (*models.DashboardStats, error) {
    return &models.DashboardStats{}, nil
}
func (stubManagers) AllMembers(context.Context) ([]models.MemberSummary, error)   { return nil, nil }
func (stubManagers) AllClasses(context.Context) ([]models.ClassSummary, error)    { return nil, nil }
func (stubManagers) AllCheckins(context.Context) ([]models.CheckinSummary, error) { return nil, nil }
func (stubManagers) Machines(context.Context) ([]models.Machine, error)           { return nil, nil }
func (stubManagers) Payments(context.Context) ([]models.Payment, error)           { return nil, nil }
func (stubManagers) Plans(context.Context) ([]models.PlanDetails, error)          { return nil, nil }

// newTestApp собирает приложение с теми же маршрутами, что и в бою.
// MongoDB в тестах недоступна: документные модели без шлюза деградируют
// до пустых результатов.
func newTestApp(users repository.Users) (*fiber.App, *Handler) {
    h := New(
        users,
        stubMembers{},
        stubInstructors{},
        stubManagers{},
        documents.NewCheckIns(nil),
        documents.NewWorkoutLogs(nil),
        documents.NewEquipment(nil),
        documents.NewClassSchedules(nil),
        NewSessionStore(),
    )

    app := fiber.New(fiber.Config{Views: fakeViews{}})

    app.Get("/login", h.LoginPage)
    app.Post("/login", h.Login)
    app.Get("/register", h.RegisterPage)
    app.Post("/register", h.Register)
    app.Get("/logout", h.Logout)

    member := app.Group("/", h.RequireAuth())
    member.Get("/", h.MemberHome)
    member.Get("/member/account", h.MemberAccount)
    member.Post("/member/classes/book", h.BookClass)
    member.Post("/member/checkin", h.CheckIn)
    member.Post("/member/checkout/:id", h.CheckOut)

    manager := app.Group("/manager", h.RequireRole(RoleManager))
    manager.Get("/dashboard", h.ManagerDashboard)

    instructor := app.Group("/instructor", h.RequireRole(RoleInstructor))
    instructor.Get("/account", h.InstructorAccount)

    return app, h
}
