package notify

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/harunnryd/clickcall/pkg/handler"
)

// DesktopNotifier surfaces outcomes as OS notifications by shelling out to
// the platform notifier. Failures are logged and never propagate: user
// feedback must not break the pipeline.
type DesktopNotifier struct {
	goos string
	run  func(name string, args ...string) error
	log  *slog.Logger
}

func NewDesktopNotifier(log *slog.Logger) *DesktopNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &DesktopNotifier{
		goos: runtime.GOOS,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
		log: log,
	}
}

func (n *DesktopNotifier) ReportOutcome(result handler.Result) {
	title := "Call Failed"
	if result.OK() {
		title = "Call Initiated"
	}
	if err := n.show(title, result.Message()); err != nil {
		n.log.Debug("desktop notification unavailable", slog.String("error", err.Error()))
	}
}

func (n *DesktopNotifier) show(title, message string) error {
	switch n.goos {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		return n.run("osascript", "-e", script)
	case "linux":
		return n.run("notify-send", title, message)
	default:
		return fmt.Errorf("no desktop notifier for %s", n.goos)
	}
}

var _ handler.Notifier = (*DesktopNotifier)(nil)
