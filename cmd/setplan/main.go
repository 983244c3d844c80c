package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store/drivers/sqlite"
)

// setplan assigns a subscription tier to an existing user. Billing is handled
// out of band, so operators run this after a payment clears.
func main() {
	var (
		idFlag    string
		emailFlag string
		tierFlag  string
	)

	flag.StringVar(&idFlag, "id", "", "user ID to update")
	flag.StringVar(&emailFlag, "email", "", "user email to update")
	flag.StringVar(&tierFlag, "tier", "pro", "tier to assign (free, pro, enterprise)")
	flag.Parse()

	userID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(strings.ToLower(emailFlag))

	if userID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}

	tier, err := domain.ParseTier(strings.TrimSpace(strings.ToLower(tierFlag)))
	if err != nil {
		exitWithError(err)
	}

	dbFile := strings.TrimSpace(os.Getenv("HUB_DATABASE_FILE"))
	if dbFile == "" {
		dbFile = "hub.db"
	}

	st, err := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dbFile))
	if err != nil {
		exitWithError(fmt.Errorf("failed to open database: %w", err))
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user domain.User
	if userID != "" {
		user, err = st.Users().GetUserByID(ctx, userID)
	} else {
		user, err = st.Users().GetUserByEmail(ctx, email)
	}
	if err != nil {
		exitWithError(fmt.Errorf("failed to load user: %w", err))
	}

	if err := st.Users().UpdateTier(ctx, user.ID, tier); err != nil {
		exitWithError(fmt.Errorf("failed to update tier: %w", err))
	}

	limits := tier.Limits()
	fmt.Printf("User %s (%s) updated from tier %s to %s\n", user.ID, user.Email, user.Tier, tier)
	fmt.Printf("max_clients=%s max_projects=%s max_storage_mb=%s\n",
		formatLimit(limits.MaxClients), formatLimit(limits.MaxProjects), formatLimit(limits.MaxStorageMB))
}

func formatLimit(v int) string {
	if v < 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", v)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
