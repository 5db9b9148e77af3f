package clickstream

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"learnx/backend/models"
)

// Logger пишет события в журнал кликстрима. Логирование никогда не должно
// мешать действию пользователя: все ошибки здесь глотаются и уходят только
// в диагностический лог. Повторных попыток нет — потерянное событие
// считается приемлемой ценой за отзывчивость интерфейса.
type Logger struct {
	store  Store
	ip     IPResolver
	diag   *log.Logger
	origin string
	wg     sync.WaitGroup
}

func NewLogger(store Store, ip IPResolver, diag *log.Logger, origin string) *Logger {
	return &Logger{
		store:  store,
		ip:     ip,
		diag:   diag,
		origin: origin,
	}
}

// Record обогащает событие и добавляет одну запись в журнал. Анонимная
// активность (userID == 0) молча пропускается. Никогда не возвращает
// ошибку вызывающему.
func (l *Logger) Record(ctx context.Context, userID uint, ev Event) {
	if userID == 0 {
		return
	}
	ev.UserID = userID

	ip := ""
	if l.ip != nil {
		resolved, err := l.ip.Lookup(ctx)
		if err != nil {
			l.diag.Printf("clickstream: ip lookup failed: %v", err)
		} else {
			ip = resolved
		}
	}

	entry := l.buildEntry(ev, ip)
	if err := l.store.Append(ctx, entry); err != nil {
		l.diag.Printf("clickstream: failed to append event %q for user %d: %v", ev.Kind, userID, err)
		return
	}

	l.diag.Printf("clickstream: event=%s desc=%q ip=%s", entry.EventName, entry.Description, ip)
}

// RecordAsync — отсоединённый вариант Record: вызывающий не ждёт
// завершения. Close дожидается всех незавершённых записей.
func (l *Logger) RecordAsync(userID uint, ev Event) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.Record(context.Background(), userID, ev)
	}()
}

// Close блокируется до завершения всех асинхронных записей.
func (l *Logger) Close() {
	l.wg.Wait()
}

func (l *Logger) buildEntry(ev Event, ip string) *models.ClickstreamEvent {
	entry := &models.ClickstreamEvent{
		EventContext:     ev.Path,
		Component:        orNA(ev.Component),
		EventName:        string(ev.Kind),
		Description:      Describe(ev),
		Origin:           l.origin,
		IPAddress:        ip,
		Username:         ev.UserEmail, // email doubles as username in the log
		UserEmail:        ev.UserEmail,
		UserRole:         ev.Role(),
		UserID:           ev.UserID,
		CourseTitle:      orNA(ev.CourseTitle),
		ContentType:      orNA(ev.ContentType),
		Action:           ev.Action,
		Score:            ev.Score,
		TotalQuestions:   ev.TotalQuestions,
		ProgressPercent:  ev.ProgressPercent,
		TimeSpentSeconds: ev.TimeSpentSeconds,
	}

	if len(ev.Attrs) > 0 {
		if raw, err := json.Marshal(ev.Attrs); err == nil {
			entry.RawData = string(raw)
		}
	}

	return entry
}
