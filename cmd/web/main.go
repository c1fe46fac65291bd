package main

import (
    "context"
    "log"
    "time"

    "github.com/xirucas/ProjetoBD2/internal/config"
    "github.com/xirucas/ProjetoBD2/internal/database"
    "github.com/xirucas/ProjetoBD2/internal/documents"
    "github.com/xirucas/ProjetoBD2/internal/handlers"
    "github.com/xirucas/ProjetoBD2/internal/repository"

    "github.com/gofiber/fiber/v2"
    "github.com/gofiber/fiber/v2/middleware/compress"
    "github.com/gofiber/fiber/v2/middleware/etag"
    "github.com/gofiber/fiber/v2/middleware/helmet"
    "github.com/gofiber/fiber/v2/middleware/limiter"
    "github.com/gofiber/fiber/v2/middleware/logger"
    "github.com/gofiber/fiber/v2/middleware/recover"
    "github.com/gofiber/template/html/v2"
)

func main() {
    // Загрузка конфигурации
    cfg := config.LoadConfig()

    // PostgreSQL — источник истины для пользователей и биллинга
    db, err := database.Connect(cfg)
    if err != nil {
        log.Fatalf("PostgreSQL: %v", err)
    }
    defer db.Close()

    // MongoDB — посещения, тренировки, инвентарь, расписания.
    // Недоступность не фатальна: страницы рендерятся с пустыми списками.
    mongoGW := database.NewMongoGateway(cfg)
    if err := mongoGW.Connect(context.Background()); err != nil {
        log.Printf("⚠️ MongoDB недоступна, документные данные отключены: %v", err)
    }
    defer mongoGW.Close(context.Background())

    // Зависимости обработчиков
    h := handlers.New(
        repository.NewUsers(db),
        repository.NewMembers(db),
        repository.NewInstructors(db),
        repository.NewManagers(db),
        documents.NewCheckIns(mongoGW),
        documents.NewWorkoutLogs(mongoGW),
        documents.NewEquipment(mongoGW),
        documents.NewClassSchedules(mongoGW),
        handlers.NewSessionStore(),
    )

    // Инициализация шаблонов
    engine := html.New(cfg.Server.TemplatePath, ".html")

    // Создание приложения Fiber
    app := fiber.New(fiber.Config{
        Views:       engine,
        AppName:     "PrimeFit",
        ViewsLayout: "layouts/base",
    })

    // -------------------------------
    // Middleware: безопасность и логика
    // -------------------------------

    app.Use(recover.New())  // Перехватывает паники, возвращает 500 вместо краша
    app.Use(helmet.New())   // Добавляет HTTP security-заголовки
    app.Use(compress.New()) // Сжимает ответы gzip/br
    app.Use(logger.New())   // Логи запросов
    app.Use(limiter.New(limiter.Config{
        Max:        120,         // 120 запросов
        Expiration: time.Minute, // за минуту
        LimitReached: func(c *fiber.Ctx) error {
            return c.Status(fiber.StatusTooManyRequests).SendString("Слишком много запросов. Попробуйте позже.")
        },
    }))
    app.Use(etag.New())

    // -------------------------------
    // Статика и маршруты
    // -------------------------------
    app.Static("/static", cfg.Server.StaticPath)

    setupRoutes(app, h)

    log.Printf("🚀 Сервер запущен на http://localhost%s", cfg.Server.Port)

    log.Fatal(app.Listen(cfg.Server.Port))
}

// setupRoutes — маршруты приложения
func setupRoutes(app *fiber.App, h *handlers.Handler) {
    // аутентификация
    app.Get("/login", h.LoginPage)
    app.Post("/login", h.Login)
    app.Get("/register", h.RegisterPage)
    app.Post("/register", h.Register)
    app.Get("/logout", h.Logout)

    // --- участник (доступно любому вошедшему, как и раньше)
    member := app.Group("/", h.RequireAuth())
    member.Get("/", h.MemberHome)
    member.Get("/member/home", h.MemberHome)
    member.Get("/member/account", h.MemberAccount)
    member.Get("/member/workouts", h.MemberWorkouts)
    member.Post("/member/workouts", h.LogWorkout)
    member.Post("/member/classes/book", h.BookClass)
    member.Post("/member/checkin", h.CheckIn)
    member.Post("/member/checkout/:id", h.CheckOut)

    // --- инструктор
    instructor := app.Group("/instructor", h.RequireRole(handlers.RoleInstructor))
    instructor.Get("/account", h.InstructorAccount)
    instructor.Get("/classes", h.InstructorClasses)
    instructor.Post("/classes", h.CreateSchedule)
    instructor.Post("/classes/:id/enroll", h.EnrollSchedule)

    // --- менеджер
    manager := app.Group("/manager", h.RequireRole(handlers.RoleManager))
    manager.Get("/dashboard", h.ManagerDashboard)
    manager.Get("/members", h.ManagerMembers)
    manager.Get("/classes", h.ManagerClasses)
    manager.Get("/checkins", h.ManagerCheckins)
    manager.Get("/machines", h.ManagerMachines)
    manager.Get("/payments", h.ManagerPayments)
    manager.Get("/plans", h.ManagerPlans)
    manager.Post("/equipment", h.AddEquipment)
    manager.Put("/equipment/:id/status", h.UpdateEquipmentStatus)
    manager.Put("/equipment/:id/maintenance", h.SetEquipmentMaintenance)
    manager.Delete("/equipment/:id", h.DeleteEquipment)
}
