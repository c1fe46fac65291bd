package handlers

import (
    "errors"
    "log"
    "strings"
    "time"

    "github.com/gofiber/fiber/v2"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"

    "github.com/xirucas/ProjetoBD2/internal/documents"
)

// ---------------- Панель менеджера ----------------

func (h *Handler) ManagerDashboard(c *fiber.Ctx) error {
    u, _ := h.currentUser(c)

    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{
        "Title": "Панель менеджера",
        "User":  u,
    }

    stats, err := h.managers.DashboardStats(ctx)
    if err != nil {
        log.Printf("❌ Статистика панели: %v", err)
        data["Error"] = "Не удалось загрузить статистику"
    } else {
        data["Stats"] = stats
        log.Printf("📊 Статистика: участники=%d, инструкторы=%d, абонементы=%d, посещения=%d",
            stats.TotalMembers, stats.TotalInstructors, stats.ActiveMemberships, stats.TodayCheckins)
    }

    return c.Render("manager/dashboard", data)
}

func (h *Handler) ManagerMembers(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{"Title": "Участники"}
    members, err := h.managers.AllMembers(ctx)
    if err != nil {
        log.Printf("❌ Список участников: %v", err)
        data["Error"] = "Не удалось загрузить участников"
    }
    data["Members"] = members
    return c.Render("manager/members", data)
}

func (h *Handler) ManagerClasses(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{"Title": "Занятия"}
    classes, err := h.managers.AllClasses(ctx)
    if err != nil {
        log.Printf("❌ Список занятий: %v", err)
        data["Error"] = "Не удалось загрузить занятия"
    }
    data["Classes"] = classes
    return c.Render("manager/classes", data)
}

func (h *Handler) ManagerCheckins(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{"Title": "Посещения"}
    checkins, err := h.managers.AllCheckins(ctx)
    if err != nil {
        log.Printf("❌ Список посещений: %v", err)
        data["Error"] = "Не удалось загрузить посещения"
    }
    data["Checkins"] = checkins
    return c.Render("manager/checkins", data)
}

// ManagerMachines — тренажёры из vw_machines плюс документный
// инвентарь из коллекции equipment
func (h *Handler) ManagerMachines(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{"Title": "Тренажёры"}
    machines, err := h.managers.Machines(ctx)
    if err != nil {
        log.Printf("❌ Список тренажёров: %v", err)
        data["Error"] = "Не удалось загрузить тренажёры"
    }
    data["Machines"] = machines

    inventory, _ := h.equipment.All(ctx)
    data["Inventory"] = inventory

    return c.Render("manager/machines", data)
}

func (h *Handler) ManagerPayments(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{"Title": "Платежи"}
    payments, err := h.managers.Payments(ctx)
    if err != nil {
        log.Printf("❌ Список платежей: %v", err)
        data["Error"] = "Не удалось загрузить платежи"
    }
    data["Payments"] = payments
    return c.Render("manager/payments", data)
}

func (h *Handler) ManagerPlans(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    data := fiber.Map{"Title": "Планы"}
    plans, err := h.managers.Plans(ctx)
    if err != nil {
        log.Printf("❌ Список планов: %v", err)
        data["Error"] = "Не удалось загрузить планы"
    }
    data["Plans"] = plans
    return c.Render("manager/plans", data)
}

// ---------------- Инвентарь (MongoDB) ----------------

// AddEquipment добавляет запись об оборудовании
func (h *Handler) AddEquipment(c *fiber.Ctx) error {
    type formT struct {
        Name     string `form:"name"`
        Category string `form:"category"`
        Status   string `form:"status"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return jsonError(c, 400, "Неверные данные формы", err)
    }
    if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Category) == "" {
        return jsonError(c, 400, "Укажите название и категорию", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    res, err := h.equipment.Add(ctx, strings.TrimSpace(f.Name), strings.TrimSpace(f.Category), f.Status)
    if errors.Is(err, documents.ErrUnavailable) {
        return jsonError(c, 503, "База инвентаря недоступна", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка сохранения", err)
    }
    return jsonOK(c, fiber.Map{"message": "Оборудование добавлено", "id": res.InsertedID})
}

// UpdateEquipmentStatus меняет статус оборудования
func (h *Handler) UpdateEquipmentStatus(c *fiber.Ctx) error {
    id, err := primitive.ObjectIDFromHex(c.Params("id"))
    if err != nil {
        return jsonError(c, 400, "Некорректный id", err)
    }
    status := strings.TrimSpace(c.FormValue("status"))
    if status == "" {
        return jsonError(c, 400, "Укажите статус", nil)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    res, err := h.equipment.UpdateStatus(ctx, id, status)
    if errors.Is(err, documents.ErrUnavailable) {
        return jsonError(c, 503, "База инвентаря недоступна", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка обновления", err)
    }
    if res.MatchedCount == 0 {
        return jsonError(c, 404, "Оборудование не найдено", nil)
    }
    return jsonOK(c, fiber.Map{"message": "Статус обновлён"})
}

// SetEquipmentMaintenance фиксирует обслуживание оборудования
func (h *Handler) SetEquipmentMaintenance(c *fiber.Ctx) error {
    id, err := primitive.ObjectIDFromHex(c.Params("id"))
    if err != nil {
        return jsonError(c, 400, "Некорректный id", err)
    }

    type formT struct {
        Date  string `form:"date"` // YYYY-MM-DD
        Notes string `form:"notes"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return jsonError(c, 400, "Неверные данные формы", err)
    }
    date := time.Now().UTC()
    if f.Date != "" {
        t, err := time.Parse("2006-01-02", f.Date)
        if err != nil {
            return jsonError(c, 400, "Неверный формат даты", err)
        }
        date = t
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    res, err := h.equipment.SetMaintenance(ctx, id, date, f.Notes)
    if errors.Is(err, documents.ErrUnavailable) {
        return jsonError(c, 503, "База инвентаря недоступна", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка обновления", err)
    }
    if res.MatchedCount == 0 {
        return jsonError(c, 404, "Оборудование не найдено", nil)
    }
    return jsonOK(c, fiber.Map{"message": "Обслуживание записано"})
}

// DeleteEquipment удаляет запись об оборудовании
func (h *Handler) DeleteEquipment(c *fiber.Ctx) error {
    id, err := primitive.ObjectIDFromHex(c.Params("id"))
    if err != nil {
        return jsonError(c, 400, "Некорректный id", err)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    res, err := h.equipment.DeleteOne(ctx, bson.M{"_id": id})
    if errors.Is(err, documents.ErrUnavailable) {
        return jsonError(c, 503, "База инвентаря недоступна", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка удаления", err)
    }
    if res.DeletedCount == 0 {
        return jsonError(c, 404, "Оборудование не найдено", nil)
    }
    return jsonOK(c, fiber.Map{"message": "Удалено"})
}
