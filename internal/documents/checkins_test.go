package documents

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/require"
    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCheckoutFieldsDuration(t *testing.T) {
    entry := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
    now := entry.Add(90*time.Minute + 30*time.Second)

    fields := checkoutFields(entry, now)
    require.Equal(t, now, fields["checkout_time"])
    require.InDelta(t, 90.5, fields["duration_minutes"].(float64), 1e-9)
}

func TestCreateLeavesCheckoutEmpty(t *testing.T) {
    col := &fakeCollection{}
    m := &CheckIns{newFakeModel("checkins", col)}

    before := time.Now().UTC()
    res, err := m.Create(context.Background(), 7, "maria")
    require.NoError(t, err)
    require.NotNil(t, res.InsertedID)

    doc := col.inserts[0]
    require.Equal(t, 7, doc["user_id"])
    require.Equal(t, "maria", doc["username"])
    require.Nil(t, doc["checkout_time"])
    require.Nil(t, doc["duration_minutes"])

    entry, ok := doc["checkin_time"].(time.Time)
    require.True(t, ok)
    require.False(t, entry.Before(before))
}

func TestCheckoutUnknownIDIsNoop(t *testing.T) {
    col := &fakeCollection{}
    m := &CheckIns{newFakeModel("checkins", col)}

    res, err := m.Checkout(context.Background(), primitive.NewObjectID())
    require.NoError(t, err)
    require.Nil(t, res)
    require.Empty(t, col.updates, "без записи мутаций быть не должно")
}

func TestCheckoutComputesDuration(t *testing.T) {
    col := &fakeCollection{}
    m := &CheckIns{newFakeModel("checkins", col)}
    ctx := context.Background()

    id := primitive.NewObjectID()
    entry := time.Now().UTC().Add(-45 * time.Minute)
    col.docs = append(col.docs, bson.M{
        "_id":              id,
        "user_id":          7,
        "checkin_time":     entry,
        "checkout_time":    nil,
        "duration_minutes": nil,
    })

    res, err := m.Checkout(ctx, id)
    require.NoError(t, err)
    require.EqualValues(t, 1, res.MatchedCount)

    require.Len(t, col.updates, 1)
    exit := col.updates[0]["checkout_time"].(time.Time)
    require.False(t, exit.Before(entry))
    require.InDelta(t, 45.0, col.updates[0]["duration_minutes"].(float64), 0.1)
}

// Повторный checkout пересчитывает длительность от исходного входа
// до нового "сейчас" и молча перезаписывает первый результат.
// Это зафиксированное поведение системы, а не ошибка теста.
func TestDoubleCheckoutOverwrites(t *testing.T) {
    col := &fakeCollection{}
    m := &CheckIns{newFakeModel("checkins", col)}
    ctx := context.Background()

    id := primitive.NewObjectID()
    entry := time.Now().UTC().Add(-30 * time.Minute)
    col.docs = append(col.docs, bson.M{
        "_id":              id,
        "user_id":          7,
        "checkin_time":     entry,
        "checkout_time":    nil,
        "duration_minutes": nil,
    })

    _, err := m.Checkout(ctx, id)
    require.NoError(t, err)
    first := col.updates[0]

    time.Sleep(15 * time.Millisecond)

    _, err = m.Checkout(ctx, id)
    require.NoError(t, err)
    require.Len(t, col.updates, 2)
    second := col.updates[1]

    // Вторая длительность считается от исходного checkin_time
    require.Greater(t, second["duration_minutes"].(float64), first["duration_minutes"].(float64))
    require.True(t, second["checkout_time"].(time.Time).After(first["checkout_time"].(time.Time)))
    // В документе остался результат второго вызова
    require.Equal(t, second["checkout_time"], col.docs[0]["checkout_time"])
    require.Equal(t, second["duration_minutes"], col.docs[0]["duration_minutes"])
}

func TestForUserDecodesTyped(t *testing.T) {
    col := &fakeCollection{}
    m := &CheckIns{newFakeModel("checkins", col)}
    ctx := context.Background()

    _, err := m.Create(ctx, 7, "maria")
    require.NoError(t, err)
    _, err = m.Create(ctx, 8, "joao")
    require.NoError(t, err)

    list, err := m.ForUser(ctx, 7)
    require.NoError(t, err)
    require.Len(t, list, 1)
    require.Equal(t, 7, list[0].UserID)
    require.Equal(t, "maria", list[0].Username)
    require.Nil(t, list[0].CheckoutTime)
    require.Nil(t, list[0].DurationMinutes)
}
