package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/MaiAphrodite/difie-hellman/session"
)

// RedisStore хранит снимки сессий: по одному hash на сессию.
// Ключ — "exchange:<id сессии>".
type RedisStore struct {
	client *redis.Client
}

// Создание нового хранилища
func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client}
}

func sessionKey(sessionID string) string {
	return "exchange:" + sessionID
}

func snapshotFields(snap session.Snapshot) map[string]interface{} {
	return map[string]interface{}{
		"step":         snap.Step,
		"title":        snap.Title,
		"p":            snap.P,
		"g":            snap.G,
		"a":            snap.A,
		"b":            snap.B,
		"alice_public": snap.AlicePublic,
		"bob_public":   snap.BobPublic,
		"alice_shared": snap.AliceShared,
		"bob_shared":   snap.BobShared,
		"verified":     snap.Verified,
	}
}

// обратное преобразование полей hash в снимок; булево redis хранит как "1"/"0"
func snapshotFromFields(fields map[string]string) session.Snapshot {
	step, _ := strconv.Atoi(fields["step"])
	return session.Snapshot{
		Step:        step,
		Title:       fields["title"],
		P:           fields["p"],
		G:           fields["g"],
		A:           fields["a"],
		B:           fields["b"],
		AlicePublic: fields["alice_public"],
		BobPublic:   fields["bob_public"],
		AliceShared: fields["alice_shared"],
		BobShared:   fields["bob_shared"],
		Verified:    fields["verified"] == "1",
	}
}

// Сохранение снимка сессии
func (r *RedisStore) SaveSnapshot(ctx context.Context, sessionID string, snap session.Snapshot) error {
	if err := r.client.HSet(ctx, sessionKey(sessionID), snapshotFields(snap)).Err(); err != nil {
		return fmt.Errorf("не удалось сохранить снимок сессии %s: %v", sessionID, err)
	}
	return nil
}

// Чтение сохранённого снимка сессии
func (r *RedisStore) LoadSnapshot(ctx context.Context, sessionID string) (session.Snapshot, error) {
	fields, err := r.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("не удалось прочитать снимок сессии %s: %v", sessionID, err)
	}
	if len(fields) == 0 {
		return session.Snapshot{}, fmt.Errorf("снимок сессии %s не найден", sessionID)
	}
	return snapshotFromFields(fields), nil
}

// Удаление сессии
func (r *RedisStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("не удалось удалить сессию %s: %v", sessionID, err)
	}
	return nil
}

// Список идентификаторов сохранённых сессий
func (r *RedisStore) ListSessions(ctx context.Context) ([]string, error) {
	keys, err := r.client.Keys(ctx, sessionKey("*")).Result()
	if err != nil {
		return nil, fmt.Errorf("не удалось получить список сессий: %v", err)
	}
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, key[len("exchange:"):])
	}
	return ids, nil
}

// Закрытие соединения с Redis
func (r *RedisStore) Close() error {
	return r.client.Close()
}
