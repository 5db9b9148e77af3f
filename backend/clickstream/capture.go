package clickstream

import "sync"

// Session identifies the actor behind an interaction.
type Session struct {
	UserID  uint
	Email   string
	IsAdmin bool
}

// Capture — приёмник взаимодействий всей страницы. Аналог глобального
// слушателя кликов: у него явный жизненный цикл Start/Stop, привязанный
// к жизни приложения, а не голое глобальное состояние.
type Capture struct {
	logger *Logger

	mu      sync.Mutex
	started bool
}

func NewCapture(logger *Logger) *Capture {
	return &Capture{logger: logger}
}

// Start включает приём взаимодействий. Повторный Start безопасен.
func (c *Capture) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started = true
}

// Stop выключает приём и дожидается незавершённых записей в журнал.
func (c *Capture) Stop() {
	c.mu.Lock()
	c.started = false
	c.mu.Unlock()
	c.logger.Close()
}

func (c *Capture) running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// HandleInteraction разбирает взаимодействие и пересылает событие логгеру.
// Отслеживаются только элементы, явно помеченные атрибутом analytics-id:
// поиск идёт вверх по дереву до ближайшего помеченного предка (включая сам
// элемент). Вложенные помеченные элементы не дают двойных событий — берётся
// только ближайший. Возвращает true, если событие было принято.
func (c *Capture) HandleInteraction(session Session, target *Element, path string) bool {
	if !c.running() {
		return false
	}
	if session.UserID == 0 {
		// Only track for logged-in users.
		return false
	}
	if target == nil {
		return false
	}

	tagged := target.Closest(attrAnalyticsID)
	if tagged == nil {
		return false
	}

	ev := ParseAttrs(tagged.Dataset)
	ev.Action = "ui_click"
	ev.Path = path
	ev.UserEmail = session.Email
	ev.IsAdmin = session.IsAdmin
	ev.ElementTag = tagged.Tag
	ev.ElementText = TrimElementText(tagged.Text)

	c.logger.RecordAsync(session.UserID, ev)
	return true
}
