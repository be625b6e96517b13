// Command duo-oncall is a SwiftBar/BitBar plugin that prints the current and
// upcoming on-call rotation for the configured teams. The host invokes it on
// a timer; each invocation is one fresh run.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/rorynscott/duo-oncall/internal/config"
	"github.com/rorynscott/duo-oncall/internal/logging"
	"github.com/rorynscott/duo-oncall/internal/menubar"
	"github.com/rorynscott/duo-oncall/internal/schedule"
	"github.com/rorynscott/duo-oncall/internal/victorops"
)

var buildVersion = "dev"

type teamList []string

func (t *teamList) String() string { return strings.Join(*t, ",") }

func (t *teamList) Set(value string) error {
	*t = append(*t, value)
	return nil
}

type options struct {
	configPath  string
	credsPath   string
	teams       teamList
	daysForward int
	collapse    bool
	logLevel    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to the INI config file (default <plugin dir>/.config.ini)")
	flag.StringVar(&opts.credsPath, "creds", "", "Path to the credentials file (default <cache dir>/.victorops)")
	flag.Var(&opts.teams, "team", "Team slug to include (repeatable, appended after config teams)")
	flag.IntVar(&opts.daysForward, "days-forward", 0, "Schedule horizon in days (overrides config)")
	flag.BoolVar(&opts.collapse, "collapse", true, "Collapse consecutive days with identical shifts into ranges")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(strings.TrimSpace(buildVersion))
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	logger, err := logging.New(opts.logLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(config.Options{
		ConfigPath:  opts.configPath,
		CredsPath:   opts.credsPath,
		Teams:       opts.teams,
		DaysForward: opts.daysForward,
	})
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		zap.Strings("teams", cfg.Teams),
		zap.Int("days_forward", cfg.DaysForward),
		zap.String("display_field", cfg.DisplayField))

	client, err := victorops.New(cfg.BaseURL, victorops.Creds{
		APIID:  cfg.Creds.APIID,
		APIKey: cfg.Creds.APIKey,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	var directory schedule.Directory
	if cfg.DisplayField != schedule.FieldUsername {
		users, err := client.Users(ctx)
		if err != nil {
			return fmt.Errorf("fetch user directory: %w", err)
		}
		directory = schedule.BuildDirectory(users, cfg.DisplayField)
		logger.Debug("user directory loaded", zap.Int("users", len(directory)))
	}

	responses := make([]victorops.TeamScheduleResponse, 0, len(cfg.Teams))
	for _, team := range cfg.Teams {
		resp, err := client.TeamSchedule(ctx, team, cfg.DaysForward)
		if err != nil {
			return fmt.Errorf("fetch schedule for team %s: %w", team, err)
		}
		logger.Debug("schedule fetched", zap.String("team", team), zap.Int("policies", len(resp.Schedules)))
		responses = append(responses, resp)
	}

	// Buffer the whole menu so a mid-render failure never leaves the host
	// with a half-drawn section.
	var buf bytes.Buffer
	w := menubar.NewWriter(&buf)
	renderer := menubar.Renderer{Directory: directory, Collapse: opts.collapse}
	if err := renderer.Render(w, cfg.Title, responses); err != nil {
		return err
	}
	if _, err := buf.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	return nil
}
