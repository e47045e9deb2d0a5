package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
)

var opts struct {
	Server  ServerCmd `command:"server" description:"run blog server"`
	Prune   PruneCmd  `command:"prune" description:"remove visitor preferences not updated within a period"`
	Version bool      `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("blog %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if opts.Version {
			return nil
		}
		if cmd == nil {
			return &flags.Error{Type: flags.ErrHelp, Message: "command required"}
		}
		return cmd.Execute(args)
	}

	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}

// validateBaseURL normalizes the base URL path. Empty and "/" mean no base URL.
func validateBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL %q must start with /", baseURL)
	}
	if strings.ContainsAny(baseURL, "?#") || strings.Contains(baseURL, "//") {
		return "", fmt.Errorf("base URL %q must be a plain path", baseURL)
	}
	return baseURL, nil
}
