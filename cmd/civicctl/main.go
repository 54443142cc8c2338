package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	civic "github.com/emmayyque/community-issue-tracker-app"
)

var serviceURL string
var debug bool

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "civicctl",
		Short: "civicctl manages your civic issue reports from the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("CIVIC_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("CIVIC_SERVICE_URL", "https://server-community-issues-tracker.vercel.app")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the issue tracker service")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newSignupCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newUpdateProfileCmd())
	rootCmd.AddCommand(newReportAddCmd())
	rootCmd.AddCommand(newReportListCmd())
	rootCmd.AddCommand(newReportShowCmd())
	rootCmd.AddCommand(newReportEditCmd())
	rootCmd.AddCommand(newReportDeleteCmd())
	rootCmd.AddCommand(newNoticesCmd())
	rootCmd.AddCommand(newThemeCmd())

	return rootCmd
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newClient builds the SDK client for the configured service URL.
func newClient() (*civic.Client, error) {
	return civic.New(serviceURL)
}

// hydratedSession opens the client and restores the stored session.
// Commands that require authentication fail fast when hydration lands
// unauthenticated.
func hydratedSession(ctx context.Context, requireAuth bool) (*civic.Client, *civic.Session, error) {
	c, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	s := civic.NewSession(c)
	if err := s.Hydrate(ctx); err != nil {
		log.Debug().Err(err).Msg("hydration failed")
	}
	if requireAuth && !s.IsAuthenticated() {
		_ = c.Close()
		return nil, nil, fmt.Errorf("not logged in; run `civicctl login` first")
	}
	return c, s, nil
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			s := civic.NewSession(c)
			if err := s.Login(ctx, email, password); err != nil {
				log.Error().Err(err).Str("email", email).Msg("login failed")
				return err
			}

			user, _ := s.CurrentUser()
			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSignupCmd() *cobra.Command {
	var name, email, phone, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			s := civic.NewSession(c)
			err = s.Signup(ctx, civic.SignupRequest{Name: name, Email: email, Phone: phone, Password: password})
			if err != nil {
				log.Error().Err(err).Str("email", email).Msg("signup failed")
				return err
			}

			fmt.Printf("Account registered: %s <%s>\n", name, email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			s := civic.NewSession(c)
			s.Logout(ctx)
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, s, err := hydratedSession(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			user, _ := s.CurrentUser()
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
}

func newUpdateProfileCmd() *cobra.Command {
	var name, email, avatar string

	cmd := &cobra.Command{
		Use:   "update-profile",
		Short: "Update profile fields; omitted flags are left unchanged",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, s, err := hydratedSession(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			err = s.UpdateUser(ctx, civic.UserPatch{Name: name, Email: email, Avatar: avatar})
			if err != nil {
				log.Error().Err(err).Msg("profile update failed")
				return err
			}

			user, _ := s.CurrentUser()
			fmt.Printf("Profile updated: %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVar(&avatar, "avatar", "", "New avatar URL")

	return cmd
}

func newReportAddCmd() *cobra.Command {
	var title, description, category, subCategory, priority string

	cmd := &cobra.Command{
		Use:   "report-add",
		Short: "Submit a new issue report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, _, err := hydratedSession(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			reports := civic.NewReports(c)
			report, err := reports.Submit(ctx, civic.ReportDraft{
				Title:       title,
				Description: description,
				Category:    civic.Category(category),
				SubCategory: subCategory,
				Priority:    civic.Priority(priority),
			})
			if err != nil {
				if verrs, ok := civic.AsValidation(err); ok {
					for _, fe := range verrs {
						fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
					}
				}
				return err
			}

			fmt.Printf("Report submitted: %s - %s [%s]\n", report.ID, report.Title, report.CurrentStatus)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Report title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Problem description (required)")
	cmd.Flags().StringVar(&category, "category", "", "Category: WASA, IESCO, Municipality or Others (required)")
	cmd.Flags().StringVar(&subCategory, "subcategory", "", "Subcategory within the category (required)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: Low, Medium, High or Critical (default Medium)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("subcategory")

	return cmd
}

func newReportListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "report-list",
		Short: "List your reports, optionally filtered by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, _, err := hydratedSession(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			reports := civic.NewReports(c)
			list, err := reports.ListMine(ctx)
			if err != nil {
				return err
			}

			filtered := civic.FilterByStatus(list, civic.Status(status))
			if len(filtered) == 0 {
				fmt.Println("No reports found")
				return nil
			}
			for _, rep := range filtered {
				fmt.Printf("%s  %-12s %-8s %s\n", rep.ID, rep.CurrentStatus, rep.Priority, rep.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "All", "Filter: All, Pending, Forwarded, In-Progress or Resolved")

	return cmd
}

func newReportShowCmd() *cobra.Command {
	var reportID string

	cmd := &cobra.Command{
		Use:   "report-show",
		Short: "Show one report with its status history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, _, err := hydratedSession(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			reports := civic.NewReports(c)
			report, err := reports.Get(ctx, reportID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n%s\n", report.Title, report.Description)
			fmt.Printf("Category: %s / %s   Priority: %s   Status: %s\n",
				report.Category, report.SubCategory, report.Priority, report.CurrentStatus)
			if report.CurrentStatus == civic.StatusInProgress {
				fmt.Printf("Completed: %d%%\n", report.CompletedPercentage)
			}
			if report.AssignedTo != nil {
				fmt.Printf("Assigned to: %s\n", report.AssignedTo.Name)
			}
			for _, update := range report.Status {
				fmt.Printf("  %s  %-12s %s\n", update.CreatedAt.Format(time.RFC3339), update.StatusType, update.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportID, "report-id", "", "Report ID (required)")
	_ = cmd.MarkFlagRequired("report-id")

	return cmd
}

func newReportEditCmd() *cobra.Command {
	var reportID, title, description, subCategory, priority string

	cmd := &cobra.Command{
		Use:   "report-edit",
		Short: "Edit a pending, unassigned report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, _, err := hydratedSession(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			reports := civic.NewReports(c)
			report, err := reports.Get(ctx, reportID)
			if err != nil {
				return err
			}

			patch := civic.ReportPatch{
				Title:       report.Title,
				Description: report.Description,
				SubCategory: report.SubCategory,
				Priority:    report.Priority,
			}
			if title != "" {
				patch.Title = title
			}
			if description != "" {
				patch.Description = description
			}
			if subCategory != "" {
				patch.SubCategory = subCategory
			}
			if priority != "" {
				patch.Priority = civic.Priority(priority)
			}

			updated, err := reports.Edit(ctx, *report, patch)
			if err != nil {
				if verrs, ok := civic.AsValidation(err); ok {
					for _, fe := range verrs {
						fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
					}
				}
				return err
			}

			fmt.Printf("Report updated: %s - %s\n", updated.ID, updated.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&reportID, "report-id", "", "Report ID (required)")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&subCategory, "subcategory", "", "New subcategory")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority")
	_ = cmd.MarkFlagRequired("report-id")

	return cmd
}

func newReportDeleteCmd() *cobra.Command {
	var reportID string

	cmd := &cobra.Command{
		Use:   "report-delete",
		Short: "Withdraw a pending report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, _, err := hydratedSession(ctx, true)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			reports := civic.NewReports(c)
			report, err := reports.Get(ctx, reportID)
			if err != nil {
				return err
			}
			if err := reports.Delete(ctx, *report); err != nil {
				return err
			}

			fmt.Printf("Report withdrawn: %s\n", reportID)
			return nil
		},
	}

	cmd.Flags().StringVar(&reportID, "report-id", "", "Report ID (required)")
	_ = cmd.MarkFlagRequired("report-id")

	return cmd
}

func newNoticesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notices",
		Short: "List active announcements from the authorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, _, err := hydratedSession(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			notices, err := c.ActiveNotices(ctx)
			if err != nil {
				return err
			}
			if len(notices) == 0 {
				fmt.Println("No active notices")
				return nil
			}
			for _, n := range notices {
				fmt.Printf("%s  %s\n    %s\n", n.CreatedAt.Format("2006-01-02"), n.Title, n.Description)
			}
			return nil
		},
	}
}

func newThemeCmd() *cobra.Command {
	var dark, light bool

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or set the persisted theme preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			if dark || light {
				if err := c.SetDarkMode(ctx, dark); err != nil {
					return err
				}
			}
			isDark, err := c.DarkMode(ctx)
			if err != nil {
				return err
			}
			if isDark {
				fmt.Println("dark")
			} else {
				fmt.Println("light")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Switch to dark mode")
	cmd.Flags().BoolVar(&light, "light", false, "Switch to light mode")
	cmd.MarkFlagsMutuallyExclusive("dark", "light")

	return cmd
}
