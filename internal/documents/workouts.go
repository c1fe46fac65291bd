package documents

import (
    "context"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"

    "github.com/xirucas/ProjetoBD2/internal/database"
    "github.com/xirucas/ProjetoBD2/internal/models"
)

// WorkoutLogs — коллекция "workout_logs". Журнал append-only:
// записи не обновляются и не удаляются штатными сценариями.
type WorkoutLogs struct {
    baseModel
}

func NewWorkoutLogs(gw *database.MongoGateway) *WorkoutLogs {
    return &WorkoutLogs{baseModel{gateway: gw, name: "workout_logs"}}
}

// LogOptions — необязательные поля записи тренировки
type LogOptions struct {
    Date            *time.Time
    DurationMinutes *int
    Notes           string
}

// Log сохраняет тренировку. Упражнения пишутся как переданы,
// пустой список допустим; дата по умолчанию — сегодня.
func (m *WorkoutLogs) Log(ctx context.Context, userID int, exercises []models.Exercise, opts LogOptions) (*mongo.InsertOneResult, error) {
    date := time.Now().UTC()
    if opts.Date != nil {
        date = opts.Date.UTC()
    }
    if exercises == nil {
        exercises = []models.Exercise{}
    }

    doc := bson.M{
        "user_id":      userID,
        "exercises":    exercises,
        "workout_date": date,
    }
    if opts.DurationMinutes != nil {
        doc["duration_minutes"] = *opts.DurationMinutes
    }
    if opts.Notes != "" {
        doc["notes"] = opts.Notes
    }
    return m.InsertOne(ctx, doc)
}

// ForUser — тренировки пользователя
func (m *WorkoutLogs) ForUser(ctx context.Context, userID int) ([]models.WorkoutLog, error) {
    col := m.collection()
    if col == nil {
        return []models.WorkoutLog{}, nil
    }
    cur, err := col.Find(ctx, bson.M{"user_id": userID})
    if err != nil {
        return []models.WorkoutLog{}, err
    }
    defer cur.Close(ctx)

    var out []models.WorkoutLog
    if err := cur.All(ctx, &out); err != nil {
        return []models.WorkoutLog{}, err
    }
    if out == nil {
        out = []models.WorkoutLog{}
    }
    return out, nil
}
