package handlers

import (
    "errors"
    "log"
    "strings"
    "time"

    "github.com/gofiber/fiber/v2"
    "golang.org/x/crypto/bcrypt"

    "github.com/xirucas/ProjetoBD2/internal/repository"
)

// Единое сообщение для несуществующего email и неверного пароля:
// по ответу нельзя перечислять зарегистрированные адреса
const msgBadCredentials = "Неверный email или пароль"

const minPasswordLen = 8

// LoginPage отображает форму входа
func (h *Handler) LoginPage(c *fiber.Ctx) error {
    return c.Render("login", fiber.Map{
        "Title": "Вход",
    })
}

// Login проверяет учётные данные по vw_user_authentication
// и открывает сессию с ролевой маршрутизацией
func (h *Handler) Login(c *fiber.Ctx) error {
    email := strings.TrimSpace(c.FormValue("email"))
    password := c.FormValue("password")

    if email == "" || password == "" {
        return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
            "Title": "Вход",
            "Error": "Заполните email и пароль",
            "Email": email,
        })
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    u, err := h.users.FindByEmail(ctx, email)
    if err != nil {
        if !errors.Is(err, repository.ErrNotFound) {
            log.Printf("❌ Ошибка поиска пользователя: %v", err)
        }
        return h.rejectLogin(c, email)
    }
    if !u.IsActive {
        return h.rejectLogin(c, email)
    }
    // Только сравнение хеша, никакого сравнения открытым текстом
    if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
        return h.rejectLogin(c, email)
    }

    sess, err := h.sessions.Get(c)
    if err != nil {
        return jsonError(c, fiber.StatusInternalServerError, "Ошибка сессии", err)
    }
    sess.Set("userid", u.UserID)
    sess.Set("email", u.Email)
    sess.Set("name", u.Name)
    sess.Set("roleid", u.UserTypeID)
    sess.Set("rolelabel", u.UserTypeLabel)
    if err := sess.Save(); err != nil {
        return jsonError(c, fiber.StatusInternalServerError, "Ошибка сессии", err)
    }

    // Отметка последнего входа; её сбой не мешает входу
    if err := h.users.UpdateLastLogin(ctx, u.UserID); err != nil {
        log.Printf("⚠️ sp_update_last_login: %v", err)
    }

    log.Printf("✅ Вход: %s (%s)", u.Email, u.UserTypeLabel)

    switch u.UserTypeID {
    case RoleManager:
        return c.Redirect("/manager/dashboard")
    case RoleInstructor:
        return c.Redirect("/instructor/account")
    default:
        return c.Redirect("/")
    }
}

func (h *Handler) rejectLogin(c *fiber.Ctx, email string) error {
    return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
        "Title": "Вход",
        "Error": msgBadCredentials,
        "Email": email,
    })
}

// RegisterPage отображает форму регистрации со списком планов
func (h *Handler) RegisterPage(c *fiber.Ctx) error {
    ctx, cancel := withDBTimeout()
    defer cancel()

    plans, err := h.users.ActivePlans(ctx)
    if err != nil {
        log.Printf("❌ Ошибка загрузки планов: %v", err)
    }
    return c.Render("register", fiber.Map{
        "Title": "Регистрация",
        "Plans": plans,
    })
}

type registerForm struct {
    Name            string `form:"name"`
    Email           string `form:"email"`
    Password        string `form:"password"`
    ConfirmPassword string `form:"confirm_password"`
    NIF             string `form:"nif"`
    Phone           string `form:"phone"`
    IBAN            string `form:"iban"`
    BirthDate       string `form:"birthdate"` // YYYY-MM-DD
    Gender          string `form:"gender"`
    Address         string `form:"address"`
    City            string `form:"city"`
    PostalCode      string `form:"postalcode"`
    PlanID          int    `form:"plan_id"`
}

// validate возвращает сообщение для пользователя или пустую строку
func (f *registerForm) validate() string {
    f.Email = strings.TrimSpace(f.Email)
    if f.Email == "" || f.Password == "" {
        return "Заполните email и пароль"
    }
    if f.Password != f.ConfirmPassword {
        return "Пароли не совпадают"
    }
    if len(f.Password) < minPasswordLen {
        return "Пароль должен содержать минимум 8 символов"
    }
    if strings.TrimSpace(f.Name) == "" {
        return "Укажите имя"
    }
    if f.BirthDate == "" || f.Gender == "" || strings.TrimSpace(f.Address) == "" ||
        strings.TrimSpace(f.City) == "" || strings.TrimSpace(f.PostalCode) == "" {
        return "Заполните обязательные поля"
    }
    if _, err := time.Parse("2006-01-02", f.BirthDate); err != nil {
        return "Неверный формат даты рождения"
    }
    return ""
}

// Register валидирует форму и делегирует создание учётной записи
// процедуре sp_create_member (атомарность — на стороне процедуры)
func (h *Handler) Register(c *fiber.Ctx) error {
    var f registerForm
    if err := c.BodyParser(&f); err != nil {
        return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
            "Title": "Регистрация",
            "Error": "Неверные данные формы",
        })
    }

    if msg := f.validate(); msg != "" {
        return h.rejectRegister(c, &f, msg)
    }

    ctx, cancel := withDBTimeout()
    defer cancel()

    exists, err := h.users.EmailExists(ctx, f.Email)
    if err != nil {
        log.Printf("❌ Ошибка проверки email: %v", err)
        return h.rejectRegister(c, &f, "Не удалось завершить регистрацию, попробуйте позже")
    }
    if exists {
        return h.rejectRegister(c, &f, "Этот email уже зарегистрирован")
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
    if err != nil {
        return h.rejectRegister(c, &f, "Не удалось завершить регистрацию, попробуйте позже")
    }

    birthDate, _ := time.Parse("2006-01-02", f.BirthDate)
    err = h.users.CreateMember(ctx, repository.CreateMemberParams{
        Name:           strings.TrimSpace(f.Name),
        HashedPassword: string(hash),
        NIF:            f.NIF,
        Email:          f.Email,
        Phone:          f.Phone,
        IBAN:           f.IBAN,
        BirthDate:      birthDate,
        Gender:         f.Gender,
        Address:        strings.TrimSpace(f.Address),
        City:           strings.TrimSpace(f.City),
        PostalCode:     strings.TrimSpace(f.PostalCode),
        PlanID:         f.PlanID,
    })
    if err != nil {
        // Детали нарушения внутри процедуры пользователю не показываем
        log.Printf("❌ sp_create_member: %v", err)
        return h.rejectRegister(c, &f, "Не удалось завершить регистрацию, попробуйте позже")
    }

    log.Printf("✅ Зарегистрирован новый участник: %s", f.Email)
    return c.Redirect("/login")
}

func (h *Handler) rejectRegister(c *fiber.Ctx, f *registerForm, msg string) error {
    ctx, cancel := withDBTimeout()
    defer cancel()
    plans, _ := h.users.ActivePlans(ctx)
    return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{
        "Title": "Регистрация",
        "Error": msg,
        "Form":  f,
        "Plans": plans,
    })
}

// Logout безусловно очищает сессию
func (h *Handler) Logout(c *fiber.Ctx) error {
    if sess, err := h.sessions.Get(c); err == nil {
        _ = sess.Destroy()
    }
    return c.Redirect("/login")
}
