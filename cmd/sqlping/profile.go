package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"

	"github.com/sqlping/sqlping/internal/config"
	"github.com/sqlping/sqlping/internal/connector"
	"github.com/sqlping/sqlping/internal/spinner"
	"github.com/sqlping/sqlping/internal/styles"
)

func (a *App) handleInit() {
	if len(os.Args) < 3 {
		printError("Usage: sqlping init <name> -vendor <vendor> -host <host> -db <database> [flags]")
	}
	name := os.Args[2]

	fs := flag.NewFlagSet("init", flag.ExitOnError)
	p := paramFlags(fs)
	if err := fs.Parse(os.Args[3:]); err != nil {
		printError("%v", err)
	}

	conn, err := connector.FromParams(name, *p)
	if err != nil {
		printError("Could not create connector: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutOf(*p))
	defer cancel()
	if !conn.CanConnect(ctx) {
		for _, rec := range conn.Errors() {
			fmt.Println(styles.Error.Render(rec.String()))
		}
		printError("Could not establish connection to %s/%s", p.Vendor, name)
	}

	a.config.CurrentProfile = name
	a.config.Profiles[name] = &config.Profile{Name: name, Params: *p}
	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file: %v", err)
	}

	fmt.Println(styles.Success.Render("✓ Profile created:"),
		styles.Title.Render(fmt.Sprintf("%s/%s", p.Vendor, name)))
}

func (a *App) handleSwitch() {
	if len(os.Args) < 3 {
		printError("Usage: sqlping switch/use <profile>")
	}

	name := os.Args[2]
	profile, ok := a.config.Profiles[name]
	if !ok {
		printError("Profile '%s' does not exist", name)
	}
	a.config.CurrentProfile = name

	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file")
	}
	fmt.Printf("using: %s/%s\n", profile.Params.Vendor, name)
}

func (a *App) handleList() {
	if len(a.config.Profiles) == 0 {
		fmt.Println(styles.Faint.Render("No saved profiles. Run 'sqlping init' to create one."))
		return
	}

	for name, profile := range a.config.Profiles {
		marker := " "
		if name == a.config.CurrentProfile {
			marker = styles.Success.Render("◆")
		}
		// Params.String redacts the password unless persist is set
		fmt.Printf("%s %s %s\n", marker, styles.Title.Render(name),
			styles.Faint.Render(profile.Params.String()))
	}
}

func (a *App) handleRemove() {
	if len(os.Args) < 3 {
		printError("Usage: sqlping remove <profile>")
	}

	name := os.Args[2]
	if _, ok := a.config.Profiles[name]; !ok {
		printError("Profile '%s' could not be found", name)
	}

	delete(a.config.Profiles, name)
	if a.config.CurrentProfile == name {
		a.config.CurrentProfile = ""
	}

	if err := a.config.Save(); err != nil {
		printError("Could not save configuration file: %v", err)
	}
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ Removed profile '%s'", name)))
}

func (a *App) handleStatus() {
	if a.config.CurrentProfile == "" {
		fmt.Println(styles.Faint.Render("No active profile"))
		return
	}

	profile, err := a.config.Current()
	if err != nil {
		printError("%v", err)
	}
	info := fmt.Sprintf("%s/%s", profile.Params.Vendor, profile.Name)

	done := make(chan struct{})
	reachable := make(chan bool)

	go func() {
		conn, err := profile.Connector()
		if err != nil {
			reachable <- false
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeoutOf(profile.Params))
		defer cancel()
		reachable <- conn.CanConnect(ctx)
	}()
	go spinner.CircleWait(done)

	isReachable := <-reachable
	close(done)
	fmt.Print("\r\033[2K")

	icon, text := "●", "reachable"
	if !isReachable {
		icon, text = "○", "unreachable"
	}
	fmt.Printf("%s Using %s %s\n", styles.Success.Render(icon),
		styles.Title.Render(info), styles.Faint.Render(text))
}

func (a *App) handleEdit() {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	cmd := exec.Command(editor, config.CfgFile)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		printError("Failed to open editor: %v", err)
	}
}
