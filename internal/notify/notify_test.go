package notify

import (
	"strings"
	"sync"
	"testing"
)

func TestFuncs(t *testing.T) {
	var alerts, notices []string
	n := Funcs{
		AlertFunc:  func(m string) { alerts = append(alerts, m) },
		NoticeFunc: func(m string) { notices = append(notices, m) },
	}

	n.Alert("copy failed")
	n.Notice("exported")

	if len(alerts) != 1 || alerts[0] != "copy failed" {
		t.Errorf("alerts = %v, want [copy failed]", alerts)
	}
	if len(notices) != 1 || notices[0] != "exported" {
		t.Errorf("notices = %v, want [exported]", notices)
	}
}

func TestFuncs_NilFields(t *testing.T) {
	n := Funcs{}

	// Nil functions must not panic.
	n.Alert("ignored")
	n.Notice("ignored")
}

func TestWriter(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	w.Alert("service unreachable")
	w.Notice("saved to chat_export_2025-06-01.txt")

	got := buf.String()
	want := "Error: service unreachable\nsaved to chat_export_2025-06-01.txt\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriter_NilOut(t *testing.T) {
	w := NewWriter(nil)

	w.Alert("ignored")
	w.Notice("ignored")
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}

	r.Alert("first")
	r.Alert("second")
	r.Notice("info")

	alerts := r.Alerts()
	if len(alerts) != 2 || alerts[0] != "first" || alerts[1] != "second" {
		t.Errorf("Alerts() = %v, want [first second]", alerts)
	}
	notices := r.Notices()
	if len(notices) != 1 || notices[0] != "info" {
		t.Errorf("Notices() = %v, want [info]", notices)
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	r := &Recorder{}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Alert("a")
			r.Notice("n")
		}()
	}
	wg.Wait()

	if len(r.Alerts()) != 10 {
		t.Errorf("Alerts() len = %d, want 10", len(r.Alerts()))
	}
	if len(r.Notices()) != 10 {
		t.Errorf("Notices() len = %d, want 10", len(r.Notices()))
	}
}
