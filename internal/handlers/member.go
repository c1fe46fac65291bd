package handlers

import (
    "errors"
    "log"
    "strconv"
    "time"

    "github.com/gofiber/fiber/v2"
    "go.mongodb.org/mongo-driver/bson/primitive"

    "github.com/xirucas/ProjetoBD2/internal/documents"
    "github.com/xirucas/ProjetoBD2/internal/models"
    "github.com/xirucas/ProjetoBD2/internal/repository"
)

// ---------------- Главная участника ----------------

// MemberHome собирает сводку: статистика месяца и расписание — из
// PostgreSQL, последние посещения и тренировки — из MongoDB.
// Любая из частей может отсутствовать, страница рендерится с тем, что есть.
func (h *Handler) MemberHome(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{
        "Title": "Главная",
        "User":  u,
    }

    stats, err := h.members.StatsMonth(ctx, u.ID)
    if err != nil && !errors.Is(err, repository.ErrNotFound) {
        log.Printf("❌ Статистика участника: %v", err)
        data["Error"] = "Не удалось загрузить статистику"
    }
    if stats != nil {
        data["Stats"] = stats
    }

    if scheduled, err := h.members.ScheduledClasses(ctx, u.ID); err == nil {
        data["ScheduledClasses"] = scheduled
    } else {
        log.Printf("❌ Расписание участника: %v", err)
    }
    if available, err := h.members.AvailableClasses(ctx); err == nil {
        data["AvailableClasses"] = available
    } else {
        log.Printf("❌ Доступные занятия: %v", err)
    }

    // MongoDB недоступна → просто пустые списки
    recent, _ := h.checkins.ForUser(ctx, u.ID)
    data["RecentCheckins"] = recent
    if open, _ := h.checkins.Open(ctx, u.ID); open != nil {
        data["OpenCheckin"] = open
    }

    return c.Render("member/home", data)
}

// MemberAccount — данные аккаунта и истории платежей/посещений
func (h *Handler) MemberAccount(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{
        "Title": "Мой аккаунт",
        "User":  u,
    }

    details, err := h.members.AccountDetails(ctx, u.ID)
    if err != nil {
        if !errors.Is(err, repository.ErrNotFound) {
            log.Printf("❌ Данные аккаунта: %v", err)
        }
        data["Error"] = "Не удалось загрузить данные аккаунта"
        return c.Render("member/account", data)
    }
    data["Details"] = details

    if payments, err := h.members.PaymentHistory(ctx, u.ID); err == nil {
        data["Payments"] = payments
    }
    if history, err := h.members.CheckinHistory(ctx, u.ID); err == nil {
        data["Checkins"] = history
    }

    return c.Render("member/account", data)
}

// ---------------- Бронирование занятий ----------------

// BookClass записывает участника на занятие через sp_book_class
func (h *Handler) BookClass(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    scheduleID, err := strconv.Atoi(c.FormValue("class_schedule_id"))
    if err != nil || scheduleID <= 0 {
        return jsonError(c, 400, "Некорректный id занятия", err)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    if err := h.users.BookClass(ctx, u.ID, scheduleID); err != nil {
        // Детали нарушения (нет мест, дубль записи) остаются в логе
        return jsonError(c, 500, "Не удалось записаться на занятие", err)
    }
    return jsonOK(c, fiber.Map{"message": "Вы записаны на занятие"})
}

// ---------------- Посещения (MongoDB) ----------------

// CheckIn регистрирует вход в зал
func (h *Handler) CheckIn(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    ctx, cancel := withDBTimeout()
    defer cancel()

    res, err := h.checkins.Create(ctx, u.ID, u.Name)
    if errors.Is(err, documents.ErrUnavailable) {
        return jsonError(c, 503, "База посещений недоступна", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка сохранения посещения", err)
    }
    return jsonOK(c, fiber.Map{"message": "Вход зарегистрирован", "id": res.InsertedID})
}

// CheckOut закрывает посещение и записывает длительность в минутах
func (h *Handler) CheckOut(c *fiber.Ctx) error {
    id, err := primitive.ObjectIDFromHex(c.Params("id"))
    if err != nil {
        return jsonError(c, 400, "Некорректный id посещения", err)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    res, err := h.checkins.Checkout(ctx, id)
    if err != nil {
        return jsonError(c, 500, "Ошибка закрытия посещения", err)
    }
    if res == nil {
        return jsonError(c, 404, "Посещение не найдено", nil)
    }
    return jsonOK(c, fiber.Map{"message": "Выход зарегистрирован"})
}

// ---------------- Журнал тренировок (MongoDB) ----------------

// MemberWorkouts — страница журнала тренировок
func (h *Handler) MemberWorkouts(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    ctx, cancel := withDBTimeout()
    defer cancel()

    logs, _ := h.workouts.ForUser(ctx, u.ID)
    return c.Render("member/workouts", fiber.Map{
        "Title":    "Мои тренировки",
        "User":     u,
        "Workouts": logs,
    })
}

// LogWorkout сохраняет тренировку. Упражнения не валидируются —
// пишутся как переданы, пустой список допустим.
func (h *Handler) LogWorkout(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    var body struct {
        Exercises       []models.Exercise `json:"exercises"`
        Date            string            `json:"date"` // YYYY-MM-DD, опционально
        DurationMinutes *int              `json:"duration_minutes"`
        Notes           string            `json:"notes"`
    }
    if err := c.BodyParser(&body); err != nil {
        return jsonError(c, 400, "Неверные данные формы", err)
    }

    opts := documents.LogOptions{
        DurationMinutes: body.DurationMinutes,
        Notes:           body.Notes,
    }
    if body.Date != "" {
        if t, err := time.Parse("2006-01-02", body.Date); err == nil {
            opts.Date = &t
        }
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    res, err := h.workouts.Log(ctx, u.ID, body.Exercises, opts)
    if errors.Is(err, documents.ErrUnavailable) {
        return jsonError(c, 503, "База тренировок недоступна", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка сохранения тренировки", err)
    }
    return jsonOK(c, fiber.Map{"message": "Тренировка записана", "id": res.InsertedID})
}
