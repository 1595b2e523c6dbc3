// createadmin creates an administrator account, or promotes an existing user, directly in the
// database. The HTTP API never lets a client grant itself admin rights, so the first admin has to
// come from here.
//
// Usage:
//
//	createadmin --username root --email root@example.com --password 's3cret'
//	createadmin --username alice --promote
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/xyz-asif/storefront/internal/config"
	"github.com/xyz-asif/storefront/internal/database"
	"github.com/xyz-asif/storefront/internal/features/auth"
	"github.com/xyz-asif/storefront/internal/features/users"
	"github.com/xyz-asif/storefront/internal/pkg/credential"
	"github.com/xyz-asif/storefront/internal/pkg/logger"
	apperrors "github.com/xyz-asif/storefront/pkg/errors"
)

type options struct {
	username string
	email    string
	password string
	promote  bool
}

// adminStore is the part of the user store the command touches.
type adminStore interface {
	Create(ctx context.Context, user *users.User) error
	FindByUsername(ctx context.Context, username string) (*users.User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*users.User, error)
}

type protector interface {
	Protect(secret string) (string, error)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer db.Disconnect(ctx)

	repo := users.NewRepository(db.Database)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return err
	}
	codec, err := credential.NewCodec(cfg.PassSecret, cfg.BcryptCost)
	if err != nil {
		return err
	}

	user, err := bootstrap(ctx, repo, codec, opts)
	if err != nil {
		return err
	}
	logger.Default().Named("createadmin").Info("user %s (%s) is now an admin", user.Username, user.ID.Hex())
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("createadmin", pflag.ContinueOnError)
	flags.StringVar(&opts.username, "username", "", "username of the admin")
	flags.StringVar(&opts.email, "email", "", "email of the new admin")
	flags.StringVar(&opts.password, "password", "", "password of the new admin")
	flags.BoolVar(&opts.promote, "promote", false, "promote an existing user instead of creating one")

	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	if rest := flags.Args(); len(rest) > 0 {
		return options{}, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	opts.username = strings.TrimSpace(opts.username)
	if opts.username == "" {
		return options{}, errors.New("--username is required")
	}
	return opts, nil
}

// bootstrap creates the admin described by opts, or flips isAdmin on an existing user when
// opts.promote is set.
func bootstrap(ctx context.Context, store adminStore, codec protector, opts options) (*users.User, error) {
	if opts.promote {
		existing, err := store.FindByUsername(ctx, opts.username)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("no user named %q", opts.username)
			}
			return nil, err
		}
		if existing.IsAdmin {
			return existing, nil
		}
		return store.Update(ctx, existing.ID.Hex(), map[string]interface{}{"isAdmin": true})
	}

	req := auth.RegisterRequest{Username: opts.username, Email: opts.email, Password: opts.password}
	if err := auth.ValidateRegister(&req); err != nil {
		return nil, err
	}
	protected, err := codec.Protect(req.Password)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Username: req.Username,
		Email:    req.Email,
		Password: protected,
		IsAdmin:  true,
	}
	if err := store.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("username or email already in use; use --promote for an existing user")
		}
		return nil, err
	}
	return user, nil
}
