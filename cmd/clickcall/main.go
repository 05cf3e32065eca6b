package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimiro1/banner"
	"github.com/harunnryd/clickcall/pkg/clickcall"
	"github.com/harunnryd/clickcall/pkg/settings"
	"github.com/harunnryd/clickcall/pkg/singleinstance"
)

const version = "dev"

func main() {
	configDir := flag.String("config-dir", "", "settings directory (default: user config dir)")
	listen := flag.Bool("listen", false, "run as the primary instance and accept forwarded links")
	configure := flag.Bool("configure", false, "save connection settings and exit")
	domain := flag.String("domain", "", "PBX domain, bare hostname")
	extension := flag.String("extension", "", "originating SIP extension")
	key := flag.String("key", "", "PBX access key")
	autoAnswer := flag.Bool("auto-answer", false, "request auto-answer on the destination leg")
	flag.Parse()

	dir := *configDir
	if dir == "" {
		var err error
		dir, err = settings.DefaultDir()
		if err != nil {
			fatal(err)
		}
	}

	if *configure {
		store := settings.NewStore(dir)
		err := store.Save(settings.Settings{
			Domain:     *domain,
			Extension:  *extension,
			Key:        *key,
			AutoAnswer: *autoAnswer,
		})
		if err != nil {
			fatal(fmt.Errorf("could not save settings: %w", err))
		}
		fmt.Println("settings saved")
		return
	}

	app, err := clickcall.NewApp(dir)
	if err != nil {
		fatal(err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *listen {
		printBanner()
		srv, err := singleinstance.Listen(singleinstance.SocketPath(), func(link string) {
			app.HandleLink(context.Background(), link)
		}, app.Log)
		if err != nil {
			fatal(err)
		}
		if err := srv.Serve(ctx); err != nil {
			fatal(err)
		}
		return
	}

	link := flag.Arg(0)
	if link == "" {
		fmt.Fprintln(os.Stderr, "usage: clickcall [flags] tel:+15551234567")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Hand the link to a running primary instance when one is listening.
	if err := singleinstance.Forward(singleinstance.SocketPath(), link); err == nil {
		return
	}

	result := app.HandleLink(ctx, link)
	fmt.Println(result.Message())
	if !result.OK() {
		os.Exit(1)
	}
}

func printBanner() {
	tpl := "{{ .Title \"CLICKCALL\" \"\" 0 }}\nVersion: " + version + "\n"
	banner.Init(os.Stdout, true, true, bytes.NewBufferString(tpl))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
