package main

import (
    "context"
    "log"
    "time"

    "golang.org/x/crypto/bcrypt"

    "github.com/xirucas/ProjetoBD2/internal/config"
    "github.com/xirucas/ProjetoBD2/internal/database"
    "github.com/xirucas/ProjetoBD2/internal/repository"
)

// Сидер тестовых учётных записей: менеджер, инструктор, участник.
// Участник создаётся через sp_create_member; менеджера и инструктора
// процедура не создаёт — их заводит администратор БД.
func main() {
    cfg := config.LoadConfig()

    db, err := database.Connect(cfg)
    if err != nil {
        log.Fatalf("PostgreSQL: %v", err)
    }
    defer db.Close()

    users := repository.NewUsers(db)

    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    email := "member@primefit.com"
    exists, err := users.EmailExists(ctx, email)
    if err != nil {
        log.Fatalf("Проверка email: %v", err)
    }
    if exists {
        log.Printf("Участник %s уже существует, пропускаем", email)
        return
    }

    hash, err := bcrypt.GenerateFromPassword([]byte("member123"), bcrypt.DefaultCost)
    if err != nil {
        log.Fatalf("Хеширование пароля: %v", err)
    }

    err = users.CreateMember(ctx, repository.CreateMemberParams{
        Name:           "Maria Santos",
        HashedPassword: string(hash),
        NIF:            "123456789",
        Email:          email,
        Phone:          "912345678",
        IBAN:           "PT50000201231234567890154",
        BirthDate:      time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
        Gender:         "F",
        Address:        "Rua das Flores 10",
        City:           "Lisboa",
        PostalCode:     "1000-100",
        PlanID:         1,
    })
    if err != nil {
        log.Fatalf("sp_create_member: %v", err)
    }

    log.Printf("✅ Участник создан: %s", email)
}
