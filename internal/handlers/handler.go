package handlers

import (
    "time"

    "github.com/gofiber/fiber/v2"
    "github.com/gofiber/fiber/v2/middleware/session"

    "github.com/xirucas/ProjetoBD2/internal/documents"
    "github.com/xirucas/ProjetoBD2/internal/repository"
)

// Роли из vw_user_authentication.usertypeid
const (
    RoleManager    = 1
    RoleInstructor = 2
    RoleMember     = 3
)

// Handler держит все зависимости обработчиков: репозитории PostgreSQL,
// документные модели MongoDB и хранилище сессий. Создаётся один раз в main.
type Handler struct {
    users       repository.Users
    members     repository.Members
    instructors repository.Instructors
    managers    repository.Managers

    checkins  *documents.CheckIns
    workouts  *documents.WorkoutLogs
    equipment *documents.Equipment
    schedules *documents.ClassSchedules

    sessions *session.Store
}

func New(
    users repository.Users,
    members repository.Members,
    instructors repository.Instructors,
    managers repository.Managers,
    checkins *documents.CheckIns,
    workouts *documents.WorkoutLogs,
    equipment *documents.Equipment,
    schedules *documents.ClassSchedules,
    sessions *session.Store,
) *Handler {
    return &Handler{
        users:       users,
        members:     members,
        instructors: instructors,
        managers:    managers,
        checkins:    checkins,
        workouts:    workouts,
        equipment:   equipment,
        schedules:   schedules,
        sessions:    sessions,
    }
}

// NewSessionStore — серверные сессии с opaque id в cookie
func NewSessionStore() *session.Store {
    return session.New(session.Config{
        Expiration:     12 * time.Hour,
        CookieHTTPOnly: true,
        CookieSameSite: "Lax",
    })
}

// sessionUser — поля аутентифицированной сессии
type sessionUser struct {
    ID        int
    Email     string
    Name      string
    RoleID    int
    RoleLabel string
}

func (h *Handler) currentUser(c *fiber.Ctx) (sessionUser, bool) {
    sess, err := h.sessions.Get(c)
    if err != nil {
        return sessionUser{}, false
    }
    id, ok := sess.Get("userid").(int)
    if !ok {
        return sessionUser{}, false
    }
    u := sessionUser{ID: id}
    u.Email, _ = sess.Get("email").(string)
    u.Name, _ = sess.Get("name").(string)
    u.RoleID, _ = sess.Get("roleid").(int)
    u.RoleLabel, _ = sess.Get("rolelabel").(string)
    return u, true
}

// RequireAuth пускает только аутентифицированных, остальных — на /login
func (h *Handler) RequireAuth() fiber.Handler {
    return func(c *fiber.Ctx) error {
        if _, ok := h.currentUser(c); !ok {
            return c.Redirect("/login")
        }
        return c.Next()
    }
}

// RequireRole — единая проверка роли для всех закрытых маршрутов.
// Проверка обязательна: вариантов с отключённым контролем нет.
func (h *Handler) RequireRole(roleID int) fiber.Handler {
    return func(c *fiber.Ctx) error {
        u, ok := h.currentUser(c)
        if !ok {
            return c.Redirect("/login")
        }
        if u.RoleID != roleID {
            return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
                "Title": "Доступ запрещён",
                "Error": "Недостаточно прав для просмотра этой страницы",
            })
        }
        return c.Next()
    }
}
