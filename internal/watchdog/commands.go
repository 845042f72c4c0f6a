package watchdog

import (
	"fmt"
	"strconv"
	"strings"

	cwerrors "github.com/cellwatch/cellwatch/internal/errors"
)

// Line command names, mirroring the notebook line magics.
const (
	CmdAuto  = "watchdog_auto"
	CmdSetup = "watchdog_setup"
)

// HandleLine routes a line-oriented command to the session. A leading '%' is
// tolerated so notebook-style input pastes cleanly.
//
//	watchdog_auto <seconds>   set/disable the duration threshold
//	watchdog_auto             print the current threshold
//	watchdog_setup <url>      set the webhook URL
//	watchdog_setup            print usage
func (s *Session) HandleLine(line string) error {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "%")

	name, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch name {
	case CmdAuto:
		return s.handleAuto(args)
	case CmdSetup:
		return s.SetWebhook(args)
	default:
		return cwerrors.UnknownCommand(name)
	}
}

// handleAuto implements the watchdog_auto line command. Empty arguments
// report the current threshold instead of changing it.
func (s *Session) handleAuto(args string) error {
	if args == "" {
		fmt.Fprintf(s.out, "Current threshold: %gs (0 = disabled)\n", s.threshold.Seconds())
		return nil
	}

	seconds, err := strconv.ParseFloat(args, 64)
	if err != nil {
		return cwerrors.InvalidThresholdSeconds(args)
	}
	return s.SetThreshold(seconds)
}
