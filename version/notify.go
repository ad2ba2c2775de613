package version

import (
	"context"
	"fmt"
	"time"

	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/icon"
	"github.com/laradl/laradl/key"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/util"
	"github.com/spf13/viper"
)

// Notify prints an alert if a more recent release is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+version),
	)
}
