package main

import (
	"os"

	"github.com/sqlping/sqlping/internal/dsn"
	"github.com/sqlping/sqlping/internal/form"
)

func (a *App) handleForm() {
	var initial dsn.Params

	if len(os.Args) > 2 {
		profile, ok := a.config.Profiles[os.Args[2]]
		if !ok {
			printError("Profile '%s' does not exist", os.Args[2])
		}
		initial = profile.Params
	} else if profile, err := a.config.Current(); err == nil {
		initial = profile.Params
	}

	if err := form.Run(initial, a.config.DefaultRowLimit); err != nil {
		printError("Could not start the form: %v", err)
	}
}
