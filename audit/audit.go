package audit

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger appends one line per notable user action to logs.txt:
//
//	2024-05-01 17:03:09 | ana@example.com | Inicia sesión
//
// Appends are fire-and-forget: the request never waits on the write, and a
// failed write is only reported to the process log.
type Logger struct {
	path string
	now  func() time.Time
}

func NewLogger(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Record queues an audit line for actor (an email, or "anonimo").
func (l *Logger) Record(actor, mensaje string) {
	go func() {
		if err := l.append(actor, mensaje); err != nil {
			log.Printf("❌ Error escribiendo log: %v", err)
		}
	}()
}

// append does the synchronous write. Kept separate so tests can call it
// without racing a goroutine.
func (l *Logger) append(actor, mensaje string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	linea := fmt.Sprintf("%s | %s | %s\n", l.now().UTC().Format("2006-01-02 15:04:05"), actor, mensaje)
	_, err = f.WriteString(linea)
	return err
}
