package handlers

import (
    "errors"
    "log"
    "strconv"
    "strings"
    "time"

    "github.com/gofiber/fiber/v2"
    "go.mongodb.org/mongo-driver/bson/primitive"

    "github.com/xirucas/ProjetoBD2/internal/documents"
    "github.com/xirucas/ProjetoBD2/internal/repository"
)

// ---------------- Кабинет инструктора ----------------

func (h *Handler) InstructorAccount(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{
        "Title": "Кабинет инструктора",
        "User":  u,
    }

    info, err := h.instructors.Info(ctx, u.ID)
    if err != nil {
        if !errors.Is(err, repository.ErrNotFound) {
            log.Printf("❌ Данные инструктора: %v", err)
        }
        data["Error"] = "Не удалось загрузить данные инструктора"
        return c.Render("instructor/account", data)
    }
    data["Info"] = info

    if classes, err := h.instructors.Classes(ctx, u.ID); err == nil {
        data["Classes"] = classes
    } else {
        log.Printf("❌ Занятия инструктора: %v", err)
    }

    return c.Render("instructor/account", data)
}

// InstructorClasses — расписание инструктора: реляционное расписание
// плюс документные занятия из коллекции class_schedules
func (h *Handler) InstructorClasses(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{
        "Title": "Мои занятия",
        "User":  u,
    }

    if schedules, err := h.instructors.Schedules(ctx, u.ID); err == nil {
        data["Schedules"] = schedules
    } else {
        log.Printf("❌ Расписание инструктора: %v", err)
        data["Error"] = "Не удалось загрузить расписание"
    }

    if info, err := h.instructors.Info(ctx, u.ID); err == nil {
        docs, _ := h.schedules.ForInstructor(ctx, info.InstructorID)
        data["ScheduleDocs"] = docs
    }

    return c.Render("instructor/classes", data)
}

// CreateSchedule добавляет документное занятие.
// Реляционное расписание ведёт менеджер; документная копия позволяет
// инструктору набирать группу до его утверждения.
func (h *Handler) CreateSchedule(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    type formT struct {
        ClassName string `form:"class_name"`
        StartsAt  string `form:"starts_at"` // YYYY-MM-DDTHH:MM
        Capacity  int    `form:"capacity"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return jsonError(c, 400, "Неверные данные формы", err)
    }
    if strings.TrimSpace(f.ClassName) == "" || f.Capacity <= 0 {
        return jsonError(c, 400, "Заполните обязательные поля", nil)
    }
    startsAt, err := time.Parse("2006-01-02T15:04", f.StartsAt)
    if err != nil {
        return jsonError(c, 400, "Неверный формат даты", err)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    info, err := h.instructors.Info(ctx, u.ID)
    if err != nil {
        return jsonError(c, 404, "Инструктор не найден", err)
    }

    res, err := h.schedules.Create(ctx, info.InstructorID, strings.TrimSpace(f.ClassName), startsAt, f.Capacity)
    if errors.Is(err, documents.ErrUnavailable) {
        return jsonError(c, 503, "База расписаний недоступна", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка сохранения занятия", err)
    }
    return jsonOK(c, fiber.Map{"message": "Занятие создано", "id": res.InsertedID})
}

// EnrollSchedule записывает участника в документное занятие
func (h *Handler) EnrollSchedule(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    id, err := primitive.ObjectIDFromHex(c.Params("id"))
    if err != nil {
        return jsonError(c, 400, "Некорректный id занятия", err)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    userID := u.ID
    if v, convErr := strconv.Atoi(c.FormValue("user_id")); convErr == nil && v > 0 {
        userID = v
    }

    _, err = h.schedules.Enroll(ctx, id, userID)
    if errors.Is(err, documents.ErrClassFull) {
        return jsonError(c, 409, "В занятии нет свободных мест", nil)
    }
    if errors.Is(err, documents.ErrUnavailable) {
        return jsonError(c, 503, "База расписаний недоступна", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка записи на занятие", err)
    }
    return jsonOK(c, fiber.Map{"message": "Участник записан"})
}
