package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/term"

	saveguardian "github.com/Arionyxx/save-guardian"
	"github.com/Arionyxx/save-guardian/utils"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌
││  │ ││││││ ┬├┤ │││
┴└─┘└─┘┘└┘└─┘└─┘┘└┘

Save Guardian application icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

// config holds the environment backed defaults. Flags override them.
type config struct {
	Dir   string `env:"SAVE_GUARDIAN_ASSETS_DIR" envDefault:"assets"`
	Style string `env:"SAVE_GUARDIAN_ICON_STYLE" envDefault:"detailed"`
}

func main() {
	log.SetFlags(0)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to read the environment: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	var (
		outDir   = flag.String("out", cfg.Dir, "Output directory")
		icoName  = flag.String("ico", saveguardian.DefaultICOName, "Icon container file name")
		imgName  = flag.String("img", saveguardian.DefaultImgName, "Standalone bitmap file name")
		style    = flag.String("style", cfg.Style, "Icon style, either detailed or classic")
		mkdir    = flag.Bool("mkdir", false, "Create the output directory when missing")
		noVerify = flag.Bool("no-verify", false, "Skip re-opening the written icon container")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Piped and redirected output stays plain.
	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	utils.NoColor = !interactive

	iconStyle, err := saveguardian.ParseStyle(*style)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to select the icon style: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("🛡 GUARDIAN", utils.StatusMessage),
		utils.DecorateText("is drawing the application icon...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*80, true)
	if !interactive {
		spinner.Disable()
	}

	// Capture CTRL-C and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		spinner.RestoreCursor()
		os.Exit(1)
	}()

	fmt.Fprintln(os.Stderr, utils.DecorateText("Creating the Save Guardian application icon...", utils.DefaultMessage))

	now := time.Now()
	spinner.Start()

	comp := &saveguardian.Composer{Style: iconStyle}
	rep, err := comp.Generate(&saveguardian.Ops{
		Dir:     *outDir,
		ICOName: *icoName,
		ImgName: *imgName,
		MkDir:   *mkdir,
		Verify:  !*noVerify,
	})

	if err != nil {
		spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
			utils.DecorateText("🛡 GUARDIAN", utils.StatusMessage),
			utils.DecorateText("generating the icon failed", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
		spinner.Stop()

		log.Fatalf(
			utils.DecorateText("\nError generating the icon: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}

	spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
		utils.DecorateText("🛡 GUARDIAN", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the icon has been generated successfully ✔", utils.SuccessMessage),
	)
	spinner.Stop()

	printReport(rep)
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// printReport displays the relevant information about the generated artifacts.
func printReport(rep *saveguardian.Report) {
	for _, size := range rep.Sizes {
		fmt.Fprintf(os.Stderr, "  %s %s\n",
			utils.DecorateText("⇢", utils.DefaultMessage),
			utils.DecorateText(fmt.Sprintf("embedded %dx%d", size, size), utils.SuccessMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nThe icon container has been saved as: %s\n",
		utils.DecorateText(rep.ICOPath, utils.SuccessMessage))
	fmt.Fprintf(os.Stderr, "The standalone bitmap has been saved as: %s\n",
		utils.DecorateText(rep.ImgPath, utils.SuccessMessage))

	switch {
	case rep.Verify != nil:
		fmt.Fprintf(os.Stderr, "Verified the icon container: %s\n",
			utils.DecorateText(fmt.Sprintf("%d images, %d-%d px, reports %dx%d ✔",
				rep.Verify.Count, rep.Verify.MinEdge, rep.Verify.MaxEdge,
				rep.Verify.Width, rep.Verify.Height), utils.SuccessMessage))
	case rep.VerifyErr != nil:
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText("The icon container did not re-open cleanly:", utils.ErrorMessage),
			utils.DecorateText(rep.VerifyErr.Error(), utils.DefaultMessage))
	}
}
