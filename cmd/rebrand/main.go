package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"samsoft-rebrand/internal/apply"
	"samsoft-rebrand/internal/branding"
	"samsoft-rebrand/internal/config"
	"samsoft-rebrand/internal/console"
	"samsoft-rebrand/internal/elevation"
	"samsoft-rebrand/internal/winreg"
	"samsoft-rebrand/pkg/utils"
)

const windowTitle = "Samsoft OS NT 11 Rebrand"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath  string
	profilePath string
	noColor     bool
	noPause     bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "rebrand",
		Short:         "Applies Samsoft OS branding strings to the Windows registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Runtime config file (default: REBRAND_CONFIG)")
	cmd.PersistentFlags().StringVar(&flags.profilePath, "profile", "", "Branding profile YAML (default: built-in Samsoft profile)")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable ANSI colors")
	cmd.PersistentFlags().BoolVar(&flags.noPause, "no-pause", false, "Skip the closing keypress gate")

	cmd.AddCommand(newApplyCommand(flags))
	cmd.AddCommand(newPlanCommand(flags))
	cmd.AddCommand(newShowCommand(flags))
	return cmd
}

// app bundles the loaded config, the branding profile, and the console
// printer shared by every subcommand.
type app struct {
	cfg     *config.Config
	profile *branding.Profile
	out     *console.Printer
}

// newApp loads config and profile for a subcommand. seedProfile writes the
// default profile to a configured-but-missing path; only apply wants that,
// the read-only commands must not touch the disk.
func newApp(flags *rootFlags, seedProfile bool) (*app, error) {
	cfgPath := flags.configPath
	if cfgPath == "" {
		cfgPath = os.Getenv("REBRAND_CONFIG")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flags.profilePath != "" {
		cfg.Apply.ProfilePath = flags.profilePath
	}
	if flags.noColor {
		cfg.Console.NoColor = true
	}
	if flags.noPause {
		cfg.Console.NoPause = true
	}

	profile := branding.Default()
	if cfg.Apply.ProfilePath != "" {
		if seedProfile {
			if err := branding.EnsureExists(cfg.Apply.ProfilePath); err != nil {
				return nil, fmt.Errorf("seed profile: %w", err)
			}
		}
		profile, err = branding.Load(cfg.Apply.ProfilePath)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
	}

	color := !cfg.Console.NoColor && console.EnableColors(os.Stdout)
	return &app{
		cfg:     cfg,
		profile: profile,
		out:     console.NewPrinter(os.Stdout, color),
	}, nil
}

func newApplyCommand(flags *rootFlags) *cobra.Command {
	var elevate bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Write the branding profile to the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, true)
			if err != nil {
				return err
			}
			return runApply(cmd.Context(), a, elevate)
		},
	}
	cmd.Flags().BoolVar(&elevate, "elevate", false, "Relaunch through UAC when not already elevated")
	return cmd
}

func runApply(ctx context.Context, a *app, elevate bool) error {
	console.SetTitle(windowTitle)
	a.out.Banner(windowTitle,
		"Rebranding this system to "+a.profile.ProductName+".",
		"Target key: HKLM\\"+branding.RegistryPath,
	)

	if !a.cfg.Apply.AllowUnelevated && !elevation.IsElevated() {
		if elevate {
			if err := elevation.Relaunch(os.Args[1:]); err != nil {
				return fmt.Errorf("elevated relaunch: %w", err)
			}
			a.out.Warn("Continuing in an elevated console.")
			return nil
		}
		a.out.Error("Administrator rights are required. Nothing was changed.")
		a.pause()
		return elevation.ErrNotElevated
	}

	logger, closer, err := utils.NewLogger(a.cfg.Logging.File, a.cfg.Logging.MaxSizeMB, a.cfg.Logging.MaxBackups)
	if err != nil {
		// The console still reports the outcome; only the file record is lost.
		a.out.Warn(fmt.Sprintf("log file unavailable: %v", err))
		logger = log.New(io.Discard, "", 0)
	} else {
		defer closer.Close()
	}

	store, err := winreg.Open(branding.RegistryPath, true)
	if err != nil {
		return fmt.Errorf("open HKLM\\%s: %w", branding.RegistryPath, err)
	}
	defer store.Close()

	res, applyErr := apply.Apply(ctx, store, a.profile, logger, apply.Options{
		Preflight: func() error {
			if a.cfg.Apply.AllowUnelevated || elevation.IsElevated() {
				return nil
			}
			return elevation.ErrNotElevated
		},
	})
	for _, e := range res.Entries {
		if e.Err != nil {
			a.out.Fail(e.Name, e.Err)
		} else {
			a.out.OK(e.Name)
		}
	}

	if applyErr == nil {
		if err := apply.Verify(store, a.profile); err != nil {
			applyErr = fmt.Errorf("read-back verification: %w", err)
		}
	}

	if applyErr != nil {
		a.out.Error("Branding was not fully applied.")
	} else {
		a.out.Success("All branding values applied. Reopen winver to see the change.")
	}

	a.pause()
	return applyErr
}

func newPlanCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show what apply would change, without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, false)
			if err != nil {
				return err
			}

			store, err := winreg.Open(branding.RegistryPath, false)
			if err != nil {
				return fmt.Errorf("open HKLM\\%s: %w", branding.RegistryPath, err)
			}
			defer store.Close()

			changes, err := apply.Plan(store, a.profile)
			if err != nil {
				return err
			}

			needed := 0
			for _, c := range changes {
				switch {
				case !c.Exists:
					a.out.Infof("  %-16s <absent> -> %q", c.Name, c.New)
					needed++
				case c.Needed():
					a.out.Infof("  %-16s %q -> %q", c.Name, c.Old, c.New)
					needed++
				default:
					a.out.Infof("  %-16s unchanged", c.Name)
				}
			}
			if needed == 0 {
				a.out.Success("Branding already applied; nothing to do.")
			} else {
				a.out.Infof("%d value(s) would change.", needed)
			}
			return nil
		},
	}
}

func newShowCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Read the current branding values from the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, false)
			if err != nil {
				return err
			}

			store, err := winreg.Open(branding.RegistryPath, false)
			if err != nil {
				return fmt.Errorf("open HKLM\\%s: %w", branding.RegistryPath, err)
			}
			defer store.Close()

			for _, e := range a.profile.Entries() {
				v, err := store.GetString(e.Name)
				switch {
				case errors.Is(err, winreg.ErrNotExist):
					a.out.Entry(e.Name, "<absent>")
				case err != nil:
					return fmt.Errorf("read %s: %w", e.Name, err)
				default:
					a.out.Entry(e.Name, v)
				}
			}
			return nil
		},
	}
}

// pause keeps a double-clicked console window open; scripted runs and
// redirected stdin skip it.
func (a *app) pause() {
	if a.cfg.Console.NoPause || !console.IsTerminal(os.Stdin) {
		return
	}
	console.WaitForEnter(os.Stdin, os.Stdout)
}
