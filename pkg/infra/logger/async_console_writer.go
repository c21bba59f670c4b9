package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncConsoleHook mirrors every entry to stdout without blocking the caller.
type AsyncConsoleHook struct {
	out     io.Writer
	logChan chan []byte
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

func NewAsyncConsoleHook(bufferSize int) *AsyncConsoleHook {
	return newAsyncConsoleHook(os.Stdout, bufferSize)
}

func newAsyncConsoleHook(out io.Writer, bufferSize int) *AsyncConsoleHook {
	hook := &AsyncConsoleHook{
		out:     out,
		logChan: make(chan []byte, bufferSize),
		done:    make(chan struct{}),
	}

	hook.wg.Add(1)
	go hook.processLogs()

	return hook
}

func (h *AsyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}

	select {
	case h.logChan <- append([]byte(nil), line...):
	default:
	}
	return nil
}

func (h *AsyncConsoleHook) processLogs() {
	defer h.wg.Done()

	for {
		select {
		case line := <-h.logChan:
			_, _ = h.out.Write(line)
		case <-h.done:
			for len(h.logChan) > 0 {
				_, _ = h.out.Write(<-h.logChan)
			}
			return
		}
	}
}

func (h *AsyncConsoleHook) Close() {
	h.once.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
}

func (h *AsyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
