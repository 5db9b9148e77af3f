package clickstream

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"learnx/backend/models"
)

// Заголовок экспорта. Порядок колонок фиксирован, чтобы вывод был
// байт-в-байт стабилен при одинаковом входе.
var exportHeader = []string{
	"Time",
	"Event context",
	"Component",
	"Event name",
	"Description",
	"Origin",
	"IP address",
	"Username",
	"User Email",
	"User Role",
	"Course Title",
	"Content Type",
	"Action",
	"Score",
	"Total Questions",
	"Progress %",
	"Time Spent (seconds)",
}

// WriteCSV выгружает журнал в плоскую таблицу: одна строка на запись,
// одна колонка на поле верхнего уровня. Время — ISO-8601 (UTC). Сырые
// вложенные данные (RawData) в экспорт не попадают.
func WriteCSV(w io.Writer, events []models.ClickstreamEvent) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, ev := range events {
		row := []string{
			ev.Time.UTC().Format(time.RFC3339),
			ev.EventContext,
			ev.Component,
			ev.EventName,
			ev.Description,
			ev.Origin,
			ev.IPAddress,
			ev.Username,
			ev.UserEmail,
			ev.UserRole,
			ev.CourseTitle,
			ev.ContentType,
			ev.Action,
			intColumn(ev.Score),
			intColumn(ev.TotalQuestions),
			floatColumn(ev.ProgressPercent),
			intColumn(ev.TimeSpentSeconds),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFilename — детерминированное имя файла выгрузки по отметке времени.
func ExportFilename(t time.Time) string {
	return "clickstream_export_" + t.UTC().Format("20060102_150405") + ".csv"
}

func intColumn(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatColumn(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
