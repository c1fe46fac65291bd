package config

import (
    "log"
    "os"

    "github.com/joho/godotenv"
    "gopkg.in/yaml.v3"
)

type Config struct {
    Database struct {
        Host     string `yaml:"host"`
        Port     string `yaml:"port"`
        User     string `yaml:"user"`
        Password string `yaml:"password"`
        DBName   string `yaml:"dbname"`
        SSLMode  string `yaml:"sslmode"`
    } `yaml:"database"`
    MongoDB struct {
        URL string `yaml:"url"`
        DB  string `yaml:"db"`
    } `yaml:"mongodb"`
    Server struct {
        Port         string `yaml:"port"`
        TemplatePath string `yaml:"template_path"`
        StaticPath   string `yaml:"static_path"`
    } `yaml:"server"`
}

// LoadConfig загружает конфигурацию из файлов
func LoadConfig() *Config {
    // .env может переопределить секреты (MongoDB Atlas, пароль БД)
    _ = godotenv.Load()

    config := &Config{}

    // 1. Загружаем основной конфиг (без пароля)
    data, err := os.ReadFile("config.yaml")
    if err != nil {
        log.Fatalf("Ошибка чтения config.yaml: %v", err)
    }

    err = yaml.Unmarshal(data, config)
    if err != nil {
        log.Fatalf("Ошибка парсинга config.yaml: %v", err)
    }

    // 2. Загружаем секретный конфиг (с паролем), если он есть
    if secretData, err := os.ReadFile("config.secret.yaml"); err == nil {
        var secretConfig struct {
            Database struct {
                Password string `yaml:"password"`
            } `yaml:"database"`
            MongoDB struct {
                URL string `yaml:"url"`
            } `yaml:"mongodb"`
        }

        if err := yaml.Unmarshal(secretData, &secretConfig); err != nil {
            log.Fatalf("Ошибка парсинга config.secret.yaml: %v", err)
        }

        if secretConfig.Database.Password != "" {
            config.Database.Password = secretConfig.Database.Password
        }
        if secretConfig.MongoDB.URL != "" {
            config.MongoDB.URL = secretConfig.MongoDB.URL
        }
    }

    // 3. Переменные окружения имеют приоритет над yaml
    if v := os.Getenv("DB_PASSWORD"); v != "" {
        config.Database.Password = v
    }
    if v := os.Getenv("MONGODB_URL"); v != "" {
        config.MongoDB.URL = v
    }
    if v := os.Getenv("MONGODB_DB"); v != "" {
        config.MongoDB.DB = v
    }

    if config.Database.Password == "" {
        log.Fatal("Database password is required (config.secret.yaml или DB_PASSWORD)")
    }
    if config.MongoDB.URL == "" {
        config.MongoDB.URL = "mongodb://localhost:27017/"
    }
    if config.MongoDB.DB == "" {
        config.MongoDB.DB = "ProjetoBD2"
    }

    log.Println("Конфигурация успешно загружена")
    return config
}
