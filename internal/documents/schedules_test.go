package documents

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/require"
    "go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScheduleCreateDefaults(t *testing.T) {
    col := &fakeCollection{}
    m := &ClassSchedules{newFakeModel("class_schedules", col)}

    startsAt := time.Date(2025, 12, 1, 18, 30, 0, 0, time.UTC)
    _, err := m.Create(context.Background(), 3, "Yoga", startsAt, 10)
    require.NoError(t, err)

    doc := col.inserts[0]
    require.Equal(t, 3, doc["instructor_id"])
    require.Equal(t, "Yoga", doc["class_name"])
    require.Equal(t, "scheduled", doc["status"])
    require.Equal(t, 10, doc["capacity"])
    require.Empty(t, doc["participants"])
}

func TestEnrollAppendsUntilFull(t *testing.T) {
    col := &fakeCollection{}
    m := &ClassSchedules{newFakeModel("class_schedules", col)}
    ctx := context.Background()

    res, err := m.Create(ctx, 3, "Yoga", time.Now().UTC(), 2)
    require.NoError(t, err)
    id := res.InsertedID.(primitive.ObjectID)

    _, err = m.Enroll(ctx, id, 7)
    require.NoError(t, err)
    _, err = m.Enroll(ctx, id, 8)
    require.NoError(t, err)
    require.Equal(t, []int{7, 8}, col.docs[0]["participants"])

    // мест больше нет
    _, err = m.Enroll(ctx, id, 9)
    require.ErrorIs(t, err, ErrClassFull)
    require.Equal(t, []int{7, 8}, col.docs[0]["participants"])
}

func TestEnrollRejectsDuplicate(t *testing.T) {
    col := &fakeCollection{}
    m := &ClassSchedules{newFakeModel("class_schedules", col)}
    ctx := context.Background()

    res, err := m.Create(ctx, 3, "Yoga", time.Now().UTC(), 5)
    require.NoError(t, err)
    id := res.InsertedID.(primitive.ObjectID)

    _, err = m.Enroll(ctx, id, 7)
    require.NoError(t, err)
    _, err = m.Enroll(ctx, id, 7)
    require.ErrorIs(t, err, ErrClassFull)
    require.Equal(t, []int{7}, col.docs[0]["participants"])
}

func TestWorkoutLogDefaults(t *testing.T) {
    col := &fakeCollection{}
    m := &WorkoutLogs{newFakeModel("workout_logs", col)}

    before := time.Now().UTC()
    _, err := m.Log(context.Background(), 7, nil, LogOptions{})
    require.NoError(t, err)

    doc := col.inserts[0]
    require.Equal(t, 7, doc["user_id"])
    // пустой список упражнений принимается молча
    require.Empty(t, doc["exercises"])
    date, ok := doc["workout_date"].(time.Time)
    require.True(t, ok)
    require.False(t, date.Before(before))
    require.NotContains(t, doc, "notes")
    require.NotContains(t, doc, "duration_minutes")
}

func TestEquipmentAddDefaultStatus(t *testing.T) {
    col := &fakeCollection{}
    m := &Equipment{newFakeModel("equipment", col)}

    _, err := m.Add(context.Background(), "Esteira Profissional", "Cardio", "")
    require.NoError(t, err)

    doc := col.inserts[0]
    require.Equal(t, "Esteira Profissional", doc["name"])
    require.Equal(t, "Cardio", doc["category"])
    require.Equal(t, "active", doc["status"])
}
