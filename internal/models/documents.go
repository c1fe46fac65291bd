package models

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Документы MongoDB. Каждый вид записи — явная структура с именованными
// полями: лишние поля на границе отбрасываются, а не проносятся как есть.

// CheckIn — посещение зала. Создаётся при входе с пустыми checkout_time
// и duration_minutes; checkout заполняет оба поля ровно один раз
// (повторный checkout перезаписывает их — поведение зафиксировано тестами).
type CheckIn struct {
    ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    UserID          int                `bson:"user_id" json:"user_id"`
    Username        string             `bson:"username" json:"username"`
    CheckinTime     time.Time          `bson:"checkin_time" json:"checkin_time"`
    CheckoutTime    *time.Time         `bson:"checkout_time" json:"checkout_time"`
    DurationMinutes *float64           `bson:"duration_minutes" json:"duration_minutes"`
    CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
    UpdatedAt       *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type Exercise struct {
    Name   string  `bson:"name" json:"name"`
    Sets   int     `bson:"sets" json:"sets"`
    Reps   int     `bson:"reps" json:"reps"`
    Weight float64 `bson:"weight" json:"weight"`
}

// WorkoutLog — журнал тренировки, append-only
type WorkoutLog struct {
    ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    UserID          int                `bson:"user_id" json:"user_id"`
    Exercises       []Exercise         `bson:"exercises" json:"exercises"`
    WorkoutDate     time.Time          `bson:"workout_date" json:"workout_date"`
    DurationMinutes *int               `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
    Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
    CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

type EquipmentDoc struct {
    ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    Name            string             `bson:"name" json:"name"`
    Category        string             `bson:"category" json:"category"`
    Status          string             `bson:"status" json:"status"`
    MaintenanceDate *time.Time         `bson:"maintenance_date,omitempty" json:"maintenance_date,omitempty"`
    Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
    CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
    UpdatedAt       *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type ClassScheduleDoc struct {
    ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
    InstructorID int                `bson:"instructor_id" json:"instructor_id"`
    ClassName    string             `bson:"class_name" json:"class_name"`
    StartsAt     time.Time          `bson:"starts_at" json:"starts_at"`
    Capacity     int                `bson:"capacity" json:"capacity"`
    Participants []int              `bson:"participants" json:"participants"`
    Status       string             `bson:"status" json:"status"`
    CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
    UpdatedAt    *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
