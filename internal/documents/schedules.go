package documents

import (
    "context"
    "errors"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
    "go.mongodb.org/mongo-driver/mongo"

    "github.com/xirucas/ProjetoBD2/internal/database"
    "github.com/xirucas/ProjetoBD2/internal/models"
)

// ErrClassFull — свободных мест в занятии не осталось
var ErrClassFull = errors.New("в занятии нет свободных мест")

// ClassSchedules — коллекция "class_schedules": документные копии
// расписания занятий (реляционное расписание остаётся источником
// истины для бронирований через sp_book_class)
type ClassSchedules struct {
    baseModel
}

func NewClassSchedules(gw *database.MongoGateway) *ClassSchedules {
    return &ClassSchedules{baseModel{gateway: gw, name: "class_schedules"}}
}

// Create добавляет занятие со статусом "scheduled" и пустым списком участников
func (m *ClassSchedules) Create(ctx context.Context, instructorID int, className string, startsAt time.Time, capacity int) (*mongo.InsertOneResult, error) {
    return m.InsertOne(ctx, bson.M{
        "instructor_id": instructorID,
        "class_name":    className,
        "starts_at":     startsAt.UTC(),
        "capacity":      capacity,
        "participants":  []int{},
        "status":        "scheduled",
    })
}

// Enroll дописывает участника, пока есть места.
// Фильтр с $expr исключает запись сверх capacity на стороне БД.
func (m *ClassSchedules) Enroll(ctx context.Context, id primitive.ObjectID, userID int) (*mongo.UpdateResult, error) {
    col := m.collection()
    if col == nil {
        return nil, ErrUnavailable
    }
    res, err := col.UpdateOne(ctx,
        bson.M{
            "_id":          id,
            "participants": bson.M{"$ne": userID},
            "$expr":        bson.M{"$lt": []interface{}{bson.M{"$size": "$participants"}, "$capacity"}},
        },
        bson.M{
            "$push": bson.M{"participants": userID},
            "$set":  bson.M{"updated_at": time.Now().UTC()},
        },
    )
    if err != nil {
        return nil, err
    }
    if res.MatchedCount == 0 {
        return nil, ErrClassFull
    }
    return res, nil
}

// SetStatus меняет статус занятия (scheduled / cancelled / done)
func (m *ClassSchedules) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
    return m.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"status": status})
}

// ForInstructor — занятия инструктора
func (m *ClassSchedules) ForInstructor(ctx context.Context, instructorID int) ([]models.ClassScheduleDoc, error) {
    col := m.collection()
    if col == nil {
        return []models.ClassScheduleDoc{}, nil
    }
    cur, err := col.Find(ctx, bson.M{"instructor_id": instructorID})
    if err != nil {
        return []models.ClassScheduleDoc{}, err
    }
    defer cur.Close(ctx)

    var out []models.ClassScheduleDoc
    if err := cur.All(ctx, &out); err != nil {
        return []models.ClassScheduleDoc{}, err
    }
    if out == nil {
        out = []models.ClassScheduleDoc{}
    }
    return out, nil
}
