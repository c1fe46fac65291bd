package database

import (
    "fmt"
    "log"
    "time"

    "github.com/jmoiron/sqlx"
    _ "github.com/lib/pq"

    "github.com/xirucas/ProjetoBD2/internal/config"
)

// Connect открывает соединение с PostgreSQL.
// Экземпляр создаётся один раз в main и передаётся явно (DI),
// а не через пакетный синглтон.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
    dbConfig := cfg.Database

    connectionStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
        dbConfig.Host,
        dbConfig.Port,
        dbConfig.User,
        dbConfig.Password,
        dbConfig.DBName,
        dbConfig.SSLMode)

    db, err := sqlx.Connect("postgres", connectionStr)
    if err != nil {
        return nil, fmt.Errorf("подключение к БД: %w", err)
    }

    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(5 * time.Minute)
    log.Println("Успешное подключение к PostgreSQL")

    return db, nil
}

// TestConnection выполняет тестовый запрос
func TestConnection(db *sqlx.DB) error {
    var result int
    if err := db.Get(&result, "SELECT 1"); err != nil {
        return fmt.Errorf("ошибка тестового запроса: %v", err)
    }
    if result != 1 {
        return fmt.Errorf("неожиданный результат теста: %d", result)
    }
    log.Println("Тестовый запрос к БД выполнен успешно")
    return nil
}
