package app

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/decider/decider"
)

const fyneAppID = "yashubustudio.decider"

// Run loads configuration and drives one elicitation session through the
// desktop UI. The returned error is nil on a completed session; an
// *decider.InsufficientInputError means the user never entered the
// mandatory lists.
func Run(configPath string) error {
	cfg, err := decider.LoadConfig(configPath)
	if err != nil {
		return err
	}

	a := fyneapp.NewWithID(fyneAppID)
	w := a.NewWindow("Decider (意思決定支援)")
	w.Resize(fyne.NewSize(560, 400))

	logBind := binding.NewString()
	capture := newLogCapture(logBind, 200)
	logger := log.New(io.MultiWriter(os.Stdout, capture), "", log.LstdFlags)

	logView := widget.NewEntryWithData(logBind)
	logView.MultiLine = true
	logView.Wrapping = fyne.TextWrapWord
	logView.SetPlaceHolder("処理ログ")
	logView.Disable()
	w.SetContent(container.NewBorder(
		widget.NewLabelWithStyle("ログ", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil, logView))

	g := &gui{w: w, cfg: cfg, logger: logger}
	session := decider.NewSession(g, decider.WeightedScorer{}, cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		_, err := session.Run()
		if err != nil {
			logger.Printf("セッション終了: %v", err)
		} else {
			logger.Printf("セッション完了")
		}
		errCh <- err
		fyne.Do(func() { a.Quit() })
	}()

	w.ShowAndRun()
	select {
	case err := <-errCh:
		return err
	default:
		// Window closed before the session finished.
		return nil
	}
}

// IsInsufficientInput reports whether err is the fatal empty-list
// outcome that maps to exit status 2.
func IsInsufficientInput(err error) bool {
	var iie *decider.InsufficientInputError
	return errors.As(err, &iie)
}

// logCapture mirrors logger output into a string binding so the window
// shows the same lines as stdout.
type logCapture struct {
	mu    sync.Mutex
	bind  binding.String
	lines []string
	max   int
}

func newLogCapture(bind binding.String, max int) *logCapture {
	return &logCapture{bind: bind, max: max}
}

func (c *logCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	c.lines = append(c.lines, strings.TrimRight(string(p), "\n"))
	if len(c.lines) > c.max {
		c.lines = c.lines[len(c.lines)-c.max:]
	}
	text := strings.Join(c.lines, "\n")
	c.mu.Unlock()
	_ = c.bind.Set(text)
	return len(p), nil
}
