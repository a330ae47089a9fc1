// Package export serializes a materialized task list into the downloadable
// text formats offered by the UI: pretty JSON, Excel-friendly CSV and a
// standalone SQL dump. Every function is a pure value-to-bytes transform.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"vazifa-api/domain"
)

// utf8BOM makes spreadsheet applications detect the CSV encoding.
const utf8BOM = "\uFEFF"

// JSON renders the tasks as a two-space-indented array.
func JSON(tasks []domain.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return sonic.ConfigStd.MarshalIndent(tasks, "", "  ")
}

// CSV renders one row per task under the localized header. Titles are quoted
// with internal quotes doubled; dates use day/month/year order.
func CSV(tasks []domain.Task) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString("ID,Vazifa,Holat,Daraja,Qo'shilgan sana")

	for _, t := range tasks {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%d,%s,%s,%s,%q",
			t.ID,
			quoteCSV(t.Title),
			statusLabel(t.Completed),
			priorityLabel(t.Priority),
			t.CreatedAt.Format("02/01/2006"),
		)
	}
	return []byte(b.String())
}

// SQL renders a self-contained dump: header comments, table definition, one
// INSERT per task and a footer with completion counts. now stamps the header.
func SQL(tasks []domain.Task, now time.Time) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "-- Vazifalar SQL Export\n")
	fmt.Fprintf(&b, "-- Yaratilgan sana: %s\n", now.Format("02/01/2006, 15:04:05"))
	fmt.Fprintf(&b, "-- Jami vazifalar: %d\n\n", len(tasks))

	b.WriteString(`-- Jadval yaratish
CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    completed BOOLEAN DEFAULT FALSE,
    priority VARCHAR(10) DEFAULT 'medium',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Ma'lumotlarni tozalash (ixtiyoriy)
-- DELETE FROM tasks;

-- Ma'lumotlarni qo'shish
`)

	completed := 0
	for _, t := range tasks {
		done := 0
		if t.Completed {
			done = 1
			completed++
		}
		priority := t.Priority
		if priority == "" {
			priority = domain.PriorityMedium
		}
		fmt.Fprintf(&b, "INSERT INTO tasks (id, title, completed, priority, created_at) VALUES (%d, '%s', %d, '%s', '%s');\n",
			t.ID,
			strings.ReplaceAll(t.Title, "'", "''"),
			done,
			priority,
			t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		)
	}

	fmt.Fprintf(&b, "\n-- Export tugallandi\n")
	fmt.Fprintf(&b, "-- Jami qo'shilgan yozuvlar: %d\n", len(tasks))
	fmt.Fprintf(&b, "-- Bajarilgan vazifalar: %d\n", completed)
	fmt.Fprintf(&b, "-- Bajarilmagan vazifalar: %d", len(tasks)-completed)

	return []byte(b.String())
}

// Filename names a download after the export date: vazifalar-2006-01-02.csv.
func Filename(format string, now time.Time) string {
	return fmt.Sprintf("vazifalar-%s.%s", now.Format("2006-01-02"), format)
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func statusLabel(completed bool) string {
	if completed {
		return "Tugallangan"
	}
	return "Faol"
}

func priorityLabel(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "Yuqori"
	case domain.PriorityMedium:
		return "O'rta"
	default:
		return "Past"
	}
}
